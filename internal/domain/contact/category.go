package contact

// Category labels the kind of phone number. The set is open; the constants
// below are the labels offered by the presentation layers.
type Category string

const (
	CategoryMobile Category = "Mobile"
	CategoryHome   Category = "Home"
	CategoryWork   Category = "Work"
	CategoryOther  Category = "Other"
)

// Categories returns the offered labels in display order.
func Categories() []Category {
	return []Category{CategoryMobile, CategoryHome, CategoryWork, CategoryOther}
}

// IsKnown returns true if the category is one of the offered labels.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryMobile, CategoryHome, CategoryWork, CategoryOther:
		return true
	default:
		return false
	}
}

// Next returns the offered label after c, wrapping around. Unknown labels
// map to the first offered label.
func (c Category) Next() Category {
	all := Categories()
	for i, cat := range all {
		if cat == c {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
