package menu

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type Repository interface {
	GetRestaurant(
		ctx context.Context,
		restaurantID uint,
	) (*models.Restaurant, error)

	List(
		ctx context.Context,
		restaurantID uint,
		f Filter,
	) ([]models.Menu, error)

	Get(
		ctx context.Context,
		menuID uint,
	) (*models.Menu, error)

	Create(
		ctx context.Context,
		m *models.Menu,
	) error

	SoftDelete(
		ctx context.Context,
		m *models.Menu,
	) error
}
