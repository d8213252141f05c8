package reservation

import "github.com/BruksfildServices01/reservation-api/internal/models"

func TotalAmount(menus []models.Menu) int {
	total := 0
	for _, m := range menus {
		total += m.Price
	}
	return total
}
