package menu

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/menu"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type CreateMenuInput struct {
	Name        string
	Price       int
	Category    domain.Category
	Description string
}

type CreateMenu struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateMenu(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateMenu {
	return &CreateMenu{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateMenu) Execute(
	ctx context.Context,
	actor auth.Principal,
	in CreateMenuInput,
) (*models.Menu, error) {

	if !actor.IsRestaurant() {
		return nil, httperr.ErrForbidden
	}
	if !in.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	if in.Price < 0 {
		return nil, httperr.InvalidInput("price must not be negative")
	}

	restaurant, err := uc.repo.GetRestaurant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	m := &models.Menu{
		Name:         in.Name,
		Price:        in.Price,
		Category:     string(in.Category),
		Description:  in.Description,
		RestaurantID: restaurant.ID,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	m.Restaurant = *restaurant

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurant.ID,
		ActorID:      &actor.ID,
		ActorRole:    string(actor.Role),
		Action:       audit.ActionMenuCreated,
		Entity:       "menu",
		EntityID:     &m.ID,
		Metadata: map[string]any{
			"name":  m.Name,
			"price": m.Price,
		},
	})

	return m, nil
}
