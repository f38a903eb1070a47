package ports

import (
	"context"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

// ContactRepository defines the persistence port for the contact directory.
// Implemented by the storage adapter; called by the application layer.
// The whole sequence is written and read as one unit.
type ContactRepository interface {
	// Save replaces the persisted sequence with contacts, in order.
	Save(ctx context.Context, contacts []*contact.Contact) error

	// Load returns the persisted sequence in order. Returns (nil, nil) when
	// nothing has been persisted yet.
	Load(ctx context.Context) ([]*contact.Contact, error)

	// Location describes where the sequence is persisted (e.g. a file path)
	// for logs and error messages.
	Location() string
}
