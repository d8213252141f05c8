package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reservation-api/internal/models"
)

func day(hour, minute int) time.Time {
	return time.Date(2025, 7, 7, hour, minute, 0, 0, time.UTC)
}

func seedRestaurant(t *testing.T, db *gorm.DB, loginID string) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{Name: "Restaurant " + loginID, LoginID: loginID, PasswordHash: "x", Phone: "0212345678"}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedCustomer(t *testing.T, db *gorm.DB, loginID string) *models.Customer {
	t.Helper()
	c := &models.Customer{LoginID: loginID, PasswordHash: "x"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedMenu(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int, category string) *models.Menu {
	t.Helper()
	m := &models.Menu{
		Name:         name,
		Price:        price,
		Category:     category,
		Description:  name + " description",
		RestaurantID: restaurantID,
	}
	require.NoError(t, db.Omit("Restaurant").Create(m).Error)
	return m
}

func seedReservation(
	t *testing.T,
	db *gorm.DB,
	customerID, restaurantID uint,
	start, end time.Time,
	guests int,
	phone string,
	menuIDs ...uint,
) *models.Reservation {
	t.Helper()
	res := &models.Reservation{
		GuestCount:   guests,
		StartTime:    start,
		EndTime:      end,
		Phone:        phone,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
	}
	repo := NewReservationGormRepository(db)
	require.NoError(t, repo.Create(t.Context(), res, menuIDs))
	return res
}
