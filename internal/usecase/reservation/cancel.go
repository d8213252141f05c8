package reservation

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/metrics"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes the reservation. Cancelling twice reports
// ErrReservationNotFound.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	actor auth.Principal,
	reservationID uint,
) error {

	if !actor.IsCustomer() {
		return httperr.ErrForbidden
	}

	res, err := uc.repo.Get(ctx, reservationID)
	if err != nil {
		return err
	}

	if res.CustomerID != actor.ID {
		return domain.ErrNotOwner
	}

	if err := uc.repo.SoftDelete(ctx, res.ID); err != nil {
		return err
	}

	metrics.IncReservationCancelled()

	uc.audit.Dispatch(audit.Event{
		RestaurantID: res.RestaurantID,
		ActorID:      &actor.ID,
		ActorRole:    string(actor.Role),
		Action:       audit.ActionReservationCancelled,
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return nil
}
