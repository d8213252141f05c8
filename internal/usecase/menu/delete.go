package menu

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/menu"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
)

type DeleteMenu struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteMenu(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteMenu {
	return &DeleteMenu{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes a menu. Existing reservations keep their link to it.
func (uc *DeleteMenu) Execute(
	ctx context.Context,
	actor auth.Principal,
	menuID uint,
) error {

	if !actor.IsRestaurant() {
		return httperr.ErrForbidden
	}

	m, err := uc.repo.Get(ctx, menuID)
	if err != nil {
		return err
	}

	if m.RestaurantID != actor.ID {
		return domain.ErrNotOwner
	}

	if err := uc.repo.SoftDelete(ctx, m); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: m.RestaurantID,
		ActorID:      &actor.ID,
		ActorRole:    string(actor.Role),
		Action:       audit.ActionMenuDeleted,
		Entity:       "menu",
		EntityID:     &m.ID,
	})

	return nil
}
