package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestCount int       `gorm:"not null" json:"guestCount"`
	StartTime  time.Time `gorm:"not null;index:idx_reservations_window,priority:2" json:"startTime"`
	EndTime    time.Time `gorm:"not null" json:"endTime"`
	Phone      string    `gorm:"size:20;not null" json:"phone"`

	CustomerID uint     `gorm:"not null;index" json:"customerId"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	RestaurantID uint       `gorm:"not null;index:idx_reservations_window,priority:1" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"restaurant"`

	Menus []Menu `gorm:"many2many:reservation_menus;" json:"menus"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

// ReservationMenu is the join row between a reservation and an ordered menu.
// Rows survive menu soft deletes.
type ReservationMenu struct {
	ReservationID uint `gorm:"primaryKey"`
	MenuID        uint `gorm:"primaryKey"`
}

func (ReservationMenu) TableName() string {
	return "reservation_menus"
}
