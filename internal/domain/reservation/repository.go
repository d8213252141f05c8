package reservation

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// Repository reads and writes reservations. Every lookup ignores
// soft-deleted rows.
type Repository interface {
	// Transaction runs fn against a repository bound to one store
	// transaction. fn's error rolls it back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- References --------
	GetCustomer(
		ctx context.Context,
		customerID uint,
	) (*models.Customer, error)

	// LockRestaurant loads the restaurant and holds its row lock until the
	// surrounding transaction ends.
	LockRestaurant(
		ctx context.Context,
		restaurantID uint,
	) (*models.Restaurant, error)

	// FindMenus returns the live menus among menuIDs that belong to the
	// restaurant.
	FindMenus(
		ctx context.Context,
		restaurantID uint,
		menuIDs []uint,
	) ([]models.Menu, error)

	// -------- Conflict --------
	HasTimeConflict(
		ctx context.Context,
		restaurantID uint,
		w Window,
	) (bool, error)

	// -------- Reservation --------
	Create(
		ctx context.Context,
		r *models.Reservation,
		menuIDs []uint,
	) error

	Get(
		ctx context.Context,
		reservationID uint,
	) (*models.Reservation, error)

	GetDetail(
		ctx context.Context,
		reservationID uint,
	) (*models.Reservation, error)

	// Update saves the guest count and, when menuIDs is non-nil, replaces
	// the menu links.
	Update(
		ctx context.Context,
		r *models.Reservation,
		menuIDs []uint,
	) error

	SoftDelete(
		ctx context.Context,
		reservationID uint,
	) error

	List(
		ctx context.Context,
		scope Scope,
		f Filter,
	) ([]models.Reservation, error)
}
