package reservation

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/metrics"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// UpdateReservationInput carries the mutable fields. Nil means unchanged.
// The time window cannot be changed after creation.
type UpdateReservationInput struct {
	GuestCount *int
	MenuIDs    []uint
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	actor auth.Principal,
	reservationID uint,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	if !actor.IsCustomer() {
		return nil, httperr.ErrForbidden
	}

	menuIDs := uniqueIDs(in.MenuIDs)

	var restaurantID uint

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		res, err := tx.GetDetail(ctx, reservationID)
		if err != nil {
			return err
		}

		if res.CustomerID != actor.ID {
			return domain.ErrNotOwner
		}

		if in.GuestCount != nil {
			res.GuestCount = *in.GuestCount
		}

		if menuIDs != nil {
			if err := resolveMenus(ctx, tx, res.RestaurantID, menuIDs); err != nil {
				return err
			}
		}

		restaurantID = res.RestaurantID
		return tx.Update(ctx, res, menuIDs)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncReservationUpdated()

	meta := map[string]any{}
	if in.GuestCount != nil {
		meta["guestCount"] = *in.GuestCount
	}
	if menuIDs != nil {
		meta["menuIds"] = menuIDs
	}
	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		ActorID:      &actor.ID,
		ActorRole:    string(actor.Role),
		Action:       audit.ActionReservationUpdated,
		Entity:       "reservation",
		EntityID:     &reservationID,
		Metadata:     meta,
	})

	return uc.repo.GetDetail(ctx, reservationID)
}
