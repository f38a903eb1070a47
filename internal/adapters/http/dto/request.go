package dto

import (
	"strings"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

// CreateContactRequest represents the JSON body for adding a contact.
type CreateContactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Category string `json:"category,omitempty"`
}

// Validate checks that name and phone are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateContactRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Phone) == "" {
		fields["phone"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToContact builds the contact to add. An omitted category becomes
// contact.CategoryOther; any other label is kept as given.
func (r *CreateContactRequest) ToContact() *contact.Contact {
	category := contact.Category(strings.TrimSpace(r.Category))
	if category == "" {
		category = contact.CategoryOther
	}
	return contact.New(r.Name, r.Phone, category)
}

// SortRequest represents the JSON body for reordering the directory.
type SortRequest struct {
	Field string `json:"field"`
}

// Validate checks that Field names a supported sort key.
func (r *SortRequest) Validate() error {
	if _, err := contact.ParseSortField(r.Field); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"field": "must be name or phone"}}
	}
	return nil
}

// SortField returns the parsed field. Call Validate first.
func (r *SortRequest) SortField() contact.SortField {
	f, _ := contact.ParseSortField(r.Field)
	return f
}
