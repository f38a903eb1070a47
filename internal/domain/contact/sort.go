package contact

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/phonebook/internal/domain"
)

// SortField selects the contact field used for ordering.
type SortField string

const (
	SortByName  SortField = "name"
	SortByPhone SortField = "phone"
)

// ParseSortField converts user input to a SortField, ignoring case.
// Category is not a sort key.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByName, SortByPhone:
		return f, nil
	default:
		return "", &domain.ValidationError{
			Fields: map[string]string{"sort": fmt.Sprintf("must be one of: name, phone; got %q", s)},
		}
	}
}

// IsValid returns true if the field is a supported sort key.
func (f SortField) IsValid() bool {
	return f == SortByName || f == SortByPhone
}

// String implements fmt.Stringer.
func (f SortField) String() string {
	return string(f)
}

// Compare orders a and b by the field using byte-wise string comparison,
// so upper-case letters sort before lower-case ones.
func (f SortField) Compare(a, b *Contact) int {
	if f == SortByPhone {
		return strings.Compare(a.Phone, b.Phone)
	}
	return strings.Compare(a.Name, b.Name)
}

// Sort orders contacts in place by the field. Equal keys keep their
// relative order.
func Sort(contacts []*Contact, f SortField) {
	slices.SortStableFunc(contacts, f.Compare)
}
