package reservation

import "github.com/BruksfildServices01/reservation-api/internal/auth"

// Scope restricts a listing to the reservations of one customer or one
// restaurant, depending on who asks.
type Scope struct {
	Role auth.Role
	ID   uint
}

func ScopeFor(p auth.Principal) Scope {
	return Scope{Role: p.Role, ID: p.ID}
}

// Filter fields are optional and AND-combined.
type Filter struct {
	Phone         string
	Day           *Window
	MinGuestCount *int
	MenuName      string
}
