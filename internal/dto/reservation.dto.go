package dto

import (
	"time"

	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type ReservationRestaurantDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ReservationCustomerDTO struct {
	ID      uint   `json:"id"`
	LoginID string `json:"loginId"`
}

type ReservationMenuDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

type ReservationDTO struct {
	ID          uint                     `json:"id"`
	GuestCount  int                      `json:"guestCount"`
	StartTime   time.Time                `json:"startTime"`
	EndTime     time.Time                `json:"endTime"`
	Phone       string                   `json:"phone"`
	Restaurant  ReservationRestaurantDTO `json:"restaurant"`
	Customer    ReservationCustomerDTO   `json:"customer"`
	Menus       []ReservationMenuDTO     `json:"menus"`
	TotalAmount int                      `json:"totalAmount"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// NewReservationDTO expects Customer, Restaurant and live Menus preloaded.
// totalAmount is computed from the menus as loaded, never stored.
func NewReservationDTO(r *models.Reservation) ReservationDTO {
	menus := make([]ReservationMenuDTO, 0, len(r.Menus))
	for _, m := range r.Menus {
		menus = append(menus, ReservationMenuDTO{
			ID:       m.ID,
			Name:     m.Name,
			Price:    m.Price,
			Category: m.Category,
		})
	}

	return ReservationDTO{
		ID:         r.ID,
		GuestCount: r.GuestCount,
		StartTime:  r.StartTime.UTC(),
		EndTime:    r.EndTime.UTC(),
		Phone:      r.Phone,
		Restaurant: ReservationRestaurantDTO{
			ID:    r.Restaurant.ID,
			Name:  r.Restaurant.Name,
			Phone: r.Restaurant.Phone,
		},
		Customer: ReservationCustomerDTO{
			ID:      r.Customer.ID,
			LoginID: r.Customer.LoginID,
		},
		Menus:       menus,
		TotalAmount: domain.TotalAmount(r.Menus),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewReservationList(rs []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(rs))
	for i := range rs {
		out = append(out, NewReservationDTO(&rs[i]))
	}
	return out
}
