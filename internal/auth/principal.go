package auth

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleRestaurant
}

// Principal is the authenticated caller. Its ID lives in the namespace of
// its role: a customer id or a restaurant id.
type Principal struct {
	ID      uint
	LoginID string
	Role    Role
}

func (p Principal) IsCustomer() bool {
	return p.Role == RoleCustomer
}

func (p Principal) IsRestaurant() bool {
	return p.Role == RoleRestaurant
}
