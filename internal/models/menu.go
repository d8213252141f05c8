package models

import "time"

type Menu struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:200;not null" json:"name"`
	Price       int    `gorm:"not null" json:"price"`
	Category    string `gorm:"size:20;not null" json:"category"`
	Description string `gorm:"type:text;not null" json:"description"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"restaurant"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}
