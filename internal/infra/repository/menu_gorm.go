package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/reservation-api/internal/domain/menu"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type MenuGormRepository struct {
	db *gorm.DB
}

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

var _ domain.Repository = (*MenuGormRepository)(nil)

func (r *MenuGormRepository) GetRestaurant(
	ctx context.Context,
	restaurantID uint,
) (*models.Restaurant, error) {

	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).
		Scopes(alive("restaurants")).
		First(&restaurant, restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *MenuGormRepository) List(
	ctx context.Context,
	restaurantID uint,
	f domain.Filter,
) ([]models.Menu, error) {

	q := r.db.WithContext(ctx).
		Scopes(alive("menus")).
		Preload("Restaurant").
		Where("menus.restaurant_id = ?", restaurantID)

	if f.Name != "" {
		q = q.Where("menus.name LIKE ? "+likeEscape, containsPattern(f.Name))
	}
	if f.MinPrice != nil {
		q = q.Where("menus.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("menus.price <= ?", *f.MaxPrice)
	}
	if f.Category != "" {
		q = q.Where("menus.category = ?", string(f.Category))
	}

	var menus []models.Menu
	if err := q.
		Order("menus.created_at DESC").
		Order("menus.id DESC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuGormRepository) Get(
	ctx context.Context,
	menuID uint,
) (*models.Menu, error) {

	var m models.Menu
	err := r.db.WithContext(ctx).
		Scopes(alive("menus")).
		Preload("Restaurant").
		First(&m, menuID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuGormRepository) Create(
	ctx context.Context,
	m *models.Menu,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *MenuGormRepository) SoftDelete(
	ctx context.Context,
	m *models.Menu,
) error {

	db := r.db.WithContext(ctx)

	result := db.Model(&models.Menu{}).
		Where("id = ? AND deleted_at IS NULL", m.ID).
		Update("deleted_at", db.NowFunc())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}
