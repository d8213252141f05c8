package menu

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/menu"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type ListMenus struct {
	repo domain.Repository
}

func NewListMenus(repo domain.Repository) *ListMenus {
	return &ListMenus{repo: repo}
}

// Execute lists the calling restaurant's live menus, newest first.
func (uc *ListMenus) Execute(
	ctx context.Context,
	actor auth.Principal,
	f domain.Filter,
) ([]models.Menu, error) {

	if !actor.IsRestaurant() {
		return nil, httperr.ErrForbidden
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return uc.repo.List(ctx, actor.ID, f)
}
