package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

// ContactStore defines the service port for the in-memory contact directory.
// Implemented by the application layer; called by the presentation adapters.
// The store owns the ordered sequence of contacts: callers observe it through
// Contacts and Subscribe and route every mutation through the methods below.
type ContactStore interface {
	// Add appends c to the end of the sequence. It only fails when the store
	// runs in strict mode and c is nil or misses a required field, in which
	// case domain.ErrValidation is returned and nothing is added.
	Add(ctx context.Context, c *contact.Contact) error

	// Remove deletes the first element that is the same pointer as c.
	// Returns false and leaves the sequence untouched when c is not stored.
	Remove(ctx context.Context, c *contact.Contact) bool

	// Search returns a reusable predicate for query. It does not read the
	// sequence.
	Search(query string) contact.Predicate

	// Sort reorders the sequence in place by field, keeping equal keys in
	// their previous relative order.
	Sort(ctx context.Context, field contact.SortField)

	// Save writes the whole sequence to the persisted location.
	// Returns a *domain.PersistenceError wrapping domain.ErrPersistenceWrite
	// on failure; the in-memory sequence is unaffected.
	Save(ctx context.Context) error

	// Load appends the persisted contacts to the sequence. A missing
	// persisted location is not an error. Returns a *domain.PersistenceError
	// wrapping domain.ErrPersistenceRead on failure, leaving the sequence as
	// it was before the call.
	Load(ctx context.Context) error

	// Contacts returns a snapshot of the sequence. The elements are the
	// stored pointers, so they can be passed back to Remove.
	Contacts() []*contact.Contact

	// Len returns the number of stored contacts.
	Len() int

	// Subscribe registers an observer that is called after every change.
	// The returned function removes the observer.
	Subscribe(o Observer) (unsubscribe func())

	// Handle returns the runtime handle of a stored contact. Handles are
	// assigned when a contact enters the store and are never persisted.
	Handle(c *contact.Contact) (uuid.UUID, bool)

	// Lookup resolves a runtime handle to the stored contact.
	// Returns domain.ErrNotFound if no stored contact has that handle.
	Lookup(handle uuid.UUID) (*contact.Contact, error)
}

// ChangeKind identifies the operation that changed the store.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeSorted  ChangeKind = "sorted"
	ChangeLoaded  ChangeKind = "loaded"
)

// Change is delivered to observers after a mutation. Contact is set for
// ChangeAdded and ChangeRemoved; Field is set for ChangeSorted; Count is the
// number of contacts appended for ChangeLoaded.
type Change struct {
	Kind    ChangeKind
	Contact *contact.Contact
	Field   contact.SortField
	Count   int
}

// Observer receives store changes. It is called without the store lock held
// and may read the store.
type Observer func(Change)
