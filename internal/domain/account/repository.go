package account

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

var (
	ErrAccountNotFound    = httperr.New(httperr.KindNotFound, "account_not_found", "account not found")
	ErrInvalidCredentials = httperr.New(httperr.KindUnauthorized, "invalid_credentials", "invalid login id or password")
	ErrLoginIDTaken       = httperr.New(httperr.KindInvalidInput, "login_id_taken", "login id is already in use")
)

// Credentials is the part of either principal kind needed to log in.
type Credentials struct {
	ID           uint
	LoginID      string
	PasswordHash string
}

// Repository keeps customers and restaurants in separate login id
// namespaces.
type Repository interface {
	FindCredentials(
		ctx context.Context,
		role auth.Role,
		loginID string,
	) (*Credentials, error)

	CreateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	CreateRestaurant(
		ctx context.Context,
		r *models.Restaurant,
	) error
}
