// Package contact defines the Contact entity and the pure functions used to
// search and order collections of contacts.
package contact

import (
	"strings"

	"github.com/jsamuelsen11/phonebook/internal/domain"
)

// Contact is one directory entry. Two contacts are the same entry only when
// they are the same pointer; equal fields do not make them interchangeable.
type Contact struct {
	Name     string
	Phone    string
	Category Category
}

// New returns a contact with the given fields.
func New(name, phone string, category Category) *Contact {
	return &Contact{Name: name, Phone: phone, Category: category}
}

// String renders the contact as "name - phone (category)".
func (c *Contact) String() string {
	return c.Name + " - " + c.Phone + " (" + string(c.Category) + ")"
}

// Validate checks that the required fields are present.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Category is not checked: the set of labels is open.
func (c *Contact) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		fields["phone"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
