package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

var _ domain.Repository = (*ReservationGormRepository)(nil)

func (r *ReservationGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	run := func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	}
	if opts := txOptionsFor(r.db.Dialector.Name()); opts != nil {
		return r.db.WithContext(ctx).Transaction(run, opts)
	}
	return r.db.WithContext(ctx).Transaction(run)
}

// txOptionsFor runs MySQL transactions at READ COMMITTED. Under InnoDB's
// default REPEATABLE READ the snapshot is fixed by the first plain read, so
// a conflict query issued after waiting on the restaurant lock would not
// see the reservation committed by the lock holder. Postgres already
// defaults to READ COMMITTED; SQLite serializes on its single connection.
func txOptionsFor(dialect string) *sql.TxOptions {
	if dialect == "mysql" {
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	return nil
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *ReservationGormRepository) GetCustomer(
	ctx context.Context,
	customerID uint,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Scopes(alive("customers")).
		First(&customer, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *ReservationGormRepository) LockRestaurant(
	ctx context.Context,
	restaurantID uint,
) (*models.Restaurant, error) {

	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
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

func (r *ReservationGormRepository) FindMenus(
	ctx context.Context,
	restaurantID uint,
	menuIDs []uint,
) ([]models.Menu, error) {

	var menus []models.Menu
	if err := r.db.WithContext(ctx).
		Scopes(alive("menus")).
		Where("menus.restaurant_id = ? AND menus.id IN ?", restaurantID, menuIDs).
		Order("menus.id").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// --------------------------------------------------
// Conflict
// --------------------------------------------------

func (r *ReservationGormRepository) HasTimeConflict(
	ctx context.Context,
	restaurantID uint,
	w domain.Window,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Scopes(alive("reservations")).
		Where(
			"reservations.restaurant_id = ? AND reservations.start_time < ? AND reservations.end_time > ?",
			restaurantID,
			w.End,
			w.Start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
	menuIDs []uint,
) error {

	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(res).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ErrTimeConflict
		}
		return err
	}

	return r.linkMenus(db, res.ID, menuIDs)
}

func (r *ReservationGormRepository) Get(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).
		Scopes(alive("reservations")).
		Preload("Customer").
		First(&res, reservationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) GetDetail(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := withRelations(r.db.WithContext(ctx)).
		Scopes(alive("reservations")).
		First(&res, reservationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) Update(
	ctx context.Context,
	res *models.Reservation,
	menuIDs []uint,
) error {

	db := r.db.WithContext(ctx)

	result := db.Model(&models.Reservation{}).
		Where("id = ? AND deleted_at IS NULL", res.ID).
		Updates(map[string]any{
			"guest_count": res.GuestCount,
			"updated_at":  db.NowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}

	if menuIDs == nil {
		return nil
	}

	if err := db.Where("reservation_id = ?", res.ID).
		Delete(&models.ReservationMenu{}).Error; err != nil {
		return err
	}
	return r.linkMenus(db, res.ID, menuIDs)
}

func (r *ReservationGormRepository) SoftDelete(
	ctx context.Context,
	reservationID uint,
) error {

	db := r.db.WithContext(ctx)

	result := db.Model(&models.Reservation{}).
		Where("id = ? AND deleted_at IS NULL", reservationID).
		Update("deleted_at", db.NowFunc())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationGormRepository) List(
	ctx context.Context,
	scope domain.Scope,
	f domain.Filter,
) ([]models.Reservation, error) {

	q := withRelations(r.db.WithContext(ctx)).
		Model(&models.Reservation{}).
		Scopes(alive("reservations"))

	// --------------------------------------------------
	// Ownership (always applied)
	// --------------------------------------------------
	switch scope.Role {
	case auth.RoleCustomer:
		q = q.Where("reservations.customer_id = ?", scope.ID)
	case auth.RoleRestaurant:
		q = q.Where("reservations.restaurant_id = ?", scope.ID)
	default:
		return nil, fmt.Errorf("unsupported scope role %q", scope.Role)
	}

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------
	if f.Phone != "" {
		q = q.Where("reservations.phone LIKE ? "+likeEscape, containsPattern(f.Phone))
	}

	if f.Day != nil {
		q = q.Where(
			"reservations.start_time >= ? AND reservations.start_time < ?",
			f.Day.Start,
			f.Day.End,
		)
	}

	if f.MinGuestCount != nil {
		q = q.Where("reservations.guest_count >= ?", *f.MinGuestCount)
	}

	if f.MenuName != "" {
		matching := r.db.
			Table("reservation_menus").
			Select("reservation_menus.reservation_id").
			Joins("JOIN menus ON menus.id = reservation_menus.menu_id").
			Where("menus.deleted_at IS NULL").
			Where("menus.name LIKE ? "+likeEscape, containsPattern(f.MenuName))

		q = q.Where("reservations.id IN (?)", matching)
	}

	var out []models.Reservation
	if err := q.
		Order("reservations.start_time DESC").
		Order("reservations.id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *ReservationGormRepository) linkMenus(db *gorm.DB, reservationID uint, menuIDs []uint) error {
	if len(menuIDs) == 0 {
		return nil
	}

	links := make([]models.ReservationMenu, 0, len(menuIDs))
	for _, id := range menuIDs {
		links = append(links, models.ReservationMenu{
			ReservationID: reservationID,
			MenuID:        id,
		})
	}
	return db.Create(&links).Error
}

// withRelations loads what a reservation response needs. Soft-deleted menus
// are left out.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Restaurant").
		Preload("Menus", func(db *gorm.DB) *gorm.DB {
			return db.Where("menus.deleted_at IS NULL").Order("menus.id")
		})
}
