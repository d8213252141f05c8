package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/models"
	"github.com/BruksfildServices01/reservation-api/internal/timezone"
)

type ListReservationsInput struct {
	Phone         string
	Date          string // YYYY-MM-DD in the service timezone
	MinGuestCount *int
	MenuName      string
}

type ListReservations struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListReservations(
	repo domain.Repository,
	loc *time.Location,
) *ListReservations {
	if loc == nil {
		loc = time.UTC
	}
	return &ListReservations{
		repo: repo,
		loc:  loc,
	}
}

// Execute lists the actor's own reservations: a customer sees what they
// booked, a restaurant sees what was booked with it.
func (uc *ListReservations) Execute(
	ctx context.Context,
	actor auth.Principal,
	in ListReservationsInput,
) ([]models.Reservation, error) {

	f := domain.Filter{
		Phone:         in.Phone,
		MinGuestCount: in.MinGuestCount,
		MenuName:      in.MenuName,
	}

	if in.Date != "" {
		start, end, err := timezone.DayBounds(in.Date, uc.loc)
		if err != nil {
			return nil, httperr.InvalidInput(err.Error())
		}
		f.Day = &domain.Window{Start: start, End: end}
	}

	return uc.repo.List(ctx, domain.ScopeFor(actor), f)
}
