package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RestaurantID uint   `gorm:"index" json:"restaurantId"`
	ActorID      *uint  `json:"actorId"`
	ActorRole    string `gorm:"size:20" json:"actorRole"`
	Action       string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entityId"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
