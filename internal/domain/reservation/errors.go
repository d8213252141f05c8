package reservation

import "github.com/BruksfildServices01/reservation-api/internal/httperr"

var (
	ErrInvalidTimeRange = httperr.New(httperr.KindInvalidInput, "invalid_time_range", "end time must be after start time")
	ErrStartInPast      = httperr.New(httperr.KindInvalidInput, "reservation_in_past", "reservation must start in the future")
	ErrTooShort         = httperr.New(httperr.KindInvalidInput, "reservation_too_short", "reservation is shorter than the minimum duration")
	ErrTooLong          = httperr.New(httperr.KindInvalidInput, "reservation_too_long", "reservation is longer than the maximum duration")

	ErrCustomerNotFound    = httperr.New(httperr.KindNotFound, "customer_not_found", "customer not found")
	ErrRestaurantNotFound  = httperr.New(httperr.KindNotFound, "restaurant_not_found", "restaurant not found")
	ErrMenuNotFound        = httperr.New(httperr.KindNotFound, "menu_not_found", "one or more menus were not found for this restaurant")
	ErrReservationNotFound = httperr.New(httperr.KindNotFound, "reservation_not_found", "reservation not found")

	ErrTimeConflict = httperr.New(httperr.KindConflict, "time_conflict", "the restaurant already has a reservation in this time window")
	ErrNotOwner     = httperr.New(httperr.KindForbidden, "forbidden", "reservation belongs to another customer")
)
