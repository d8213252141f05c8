package menu

// Filter narrows a restaurant's menu list. Nil or empty fields are ignored;
// set fields are AND-combined.
type Filter struct {
	Name     string
	MinPrice *int
	MaxPrice *int
	Category Category
}

func (f Filter) Validate() error {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return ErrInvalidPriceRange
	}
	if f.Category != "" && !f.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}
