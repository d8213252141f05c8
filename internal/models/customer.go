package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LoginID      string `gorm:"size:50;not null;uniqueIndex" json:"loginId"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}
