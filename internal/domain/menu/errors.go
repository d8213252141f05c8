package menu

import "github.com/BruksfildServices01/reservation-api/internal/httperr"

var (
	ErrMenuNotFound       = httperr.New(httperr.KindNotFound, "menu_not_found", "menu not found")
	ErrRestaurantNotFound = httperr.New(httperr.KindNotFound, "restaurant_not_found", "restaurant not found")
	ErrNotOwner           = httperr.New(httperr.KindForbidden, "forbidden", "menu belongs to another restaurant")
	ErrInvalidPriceRange  = httperr.New(httperr.KindInvalidInput, "invalid_price_range", "minPrice must not exceed maxPrice")
	ErrInvalidCategory    = httperr.New(httperr.KindInvalidInput, "invalid_category", "category must be one of western, japanese, chinese")
)
