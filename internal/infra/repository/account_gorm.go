package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/account"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

var _ domain.Repository = (*AccountGormRepository)(nil)

func (r *AccountGormRepository) FindCredentials(
	ctx context.Context,
	role auth.Role,
	loginID string,
) (*domain.Credentials, error) {

	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}

	var creds domain.Credentials
	result := r.db.WithContext(ctx).
		Table(table).
		Select("id", "login_id", "password_hash").
		Scopes(alive(table)).
		Where(table+".login_id = ?", loginID).
		Limit(1).
		Scan(&creds)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return &creds, nil
}

func (r *AccountGormRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return r.create(ctx, "customers", c.LoginID, c)
}

func (r *AccountGormRepository) CreateRestaurant(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	return r.create(ctx, "restaurants", rest.LoginID, rest)
}

// create rejects login ids already used in the namespace, soft-deleted
// accounts included, and maps a lost race on the unique index to the same
// error.
func (r *AccountGormRepository) create(ctx context.Context, table, loginID string, row any) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Table(table).Where("login_id = ?", loginID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrLoginIDTaken
	}

	if err := db.Create(row).Error; err != nil {
		if httperr.IsDuplicateKey(err) {
			return domain.ErrLoginIDTaken
		}
		return err
	}
	return nil
}

func tableFor(role auth.Role) (string, error) {
	switch role {
	case auth.RoleCustomer:
		return "customers", nil
	case auth.RoleRestaurant:
		return "restaurants", nil
	}
	return "", fmt.Errorf("unknown role %q", role)
}
