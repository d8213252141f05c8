package dto

import (
	"time"

	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type MenuDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Price          int       `json:"price"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	RestaurantName string    `json:"restaurantName"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewMenuDTO(m *models.Menu) MenuDTO {
	return MenuDTO{
		ID:             m.ID,
		Name:           m.Name,
		Price:          m.Price,
		Category:       m.Category,
		Description:    m.Description,
		RestaurantName: m.Restaurant.Name,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func NewMenuList(ms []models.Menu) []MenuDTO {
	out := make([]MenuDTO, 0, len(ms))
	for i := range ms {
		out = append(out, NewMenuDTO(&ms[i]))
	}
	return out
}
