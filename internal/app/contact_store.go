// Package app provides the application services that own the in-memory
// contact directory and coordinate it with persistence through port
// interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
	"github.com/jsamuelsen11/phonebook/internal/platform/telemetry"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

// Compile-time check that ContactStore implements ports.ContactStore.
var _ ports.ContactStore = (*ContactStore)(nil)

// Operation names used in logs and metrics.
const (
	opAdd    = "add"
	opRemove = "remove"
	opSort   = "sort"
	opSave   = "save"
	opLoad   = "load"
)

// StoreOption configures a ContactStore.
type StoreOption func(*ContactStore)

// WithStrict makes Add reject nil contacts and contacts with an empty name or
// phone. By default the store accepts whatever it is given.
func WithStrict(strict bool) StoreOption {
	return func(s *ContactStore) {
		s.strict = strict
	}
}

// WithMetrics records mutation counts and persistence durations.
func WithMetrics(m *telemetry.Metrics) StoreOption {
	return func(s *ContactStore) {
		s.metrics = m
	}
}

// ContactStore implements ports.ContactStore. It owns the ordered sequence of
// contacts; every operation on the sequence happens under one mutex, so the
// store can be shared by the HTTP handlers and the autosaver.
type ContactStore struct {
	repo    ports.ContactRepository
	logger  *slog.Logger
	metrics *telemetry.Metrics
	strict  bool

	mu       sync.Mutex
	contacts []*contact.Contact
	handles  map[*contact.Contact]uuid.UUID
	byHandle map[uuid.UUID]*contact.Contact
	revision uint64
	saved    uint64

	// ioMu serializes Save and Load so that snapshots reach the repository
	// in the order they were taken.
	ioMu sync.Mutex

	obsMu     sync.Mutex
	observers []observerEntry
	nextObs   int
}

type observerEntry struct {
	id int
	fn ports.Observer
}

// NewContactStore creates an empty ContactStore backed by repo.
// A nil logger is replaced with a no-op logger.
func NewContactStore(repo ports.ContactRepository, logger *slog.Logger, opts ...StoreOption) *ContactStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ContactStore{
		repo:     repo,
		logger:   logger,
		handles:  make(map[*contact.Contact]uuid.UUID),
		byHandle: make(map[uuid.UUID]*contact.Contact),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends c to the end of the sequence and logs it.
func (s *ContactStore) Add(ctx context.Context, c *contact.Contact) error {
	if c == nil {
		if s.strict {
			return &domain.ValidationError{Fields: map[string]string{"contact": domain.MsgRequired}}
		}
		s.logger.WarnContext(ctx, "ignoring nil contact", slog.String("operation", "Add"))
		return nil
	}
	if s.strict {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.contacts = append(s.contacts, c)
	s.track(c)
	s.revision++
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "contact added", contactAttrs(c)...)
	s.metrics.RecordMutation(ctx, opAdd)
	s.notify(ports.Change{Kind: ports.ChangeAdded, Contact: c})
	return nil
}

// Remove deletes the first element that is the same pointer as c.
func (s *ContactStore) Remove(ctx context.Context, c *contact.Contact) bool {
	if c == nil {
		return false
	}

	s.mu.Lock()
	i := slices.Index(s.contacts, c)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	if !slices.Contains(s.contacts, c) {
		s.untrack(c)
	}
	s.revision++
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "contact removed", contactAttrs(c)...)
	s.metrics.RecordMutation(ctx, opRemove)
	s.notify(ports.Change{Kind: ports.ChangeRemoved, Contact: c})
	return true
}

// Search returns the case-insensitive name-or-phone predicate for query.
func (s *ContactStore) Search(query string) contact.Predicate {
	return contact.Search(query)
}

// Sort reorders the sequence in place by field with a stable sort.
func (s *ContactStore) Sort(ctx context.Context, field contact.SortField) {
	if !field.IsValid() {
		s.logger.WarnContext(ctx, "ignoring unsupported sort field",
			slog.String("operation", "Sort"),
			slog.String("field", field.String()),
		)
		return
	}

	s.mu.Lock()
	contact.Sort(s.contacts, field)
	s.revision++
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "contacts sorted", slog.String("field", field.String()))
	s.metrics.RecordMutation(ctx, opSort)
	s.notify(ports.Change{Kind: ports.ChangeSorted, Field: field})
}

// Save writes a snapshot of the sequence through the repository.
func (s *ContactStore) Save(ctx context.Context) error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	s.mu.Lock()
	snapshot := slices.Clone(s.contacts)
	rev := s.revision
	s.mu.Unlock()

	start := time.Now()
	err := s.repo.Save(ctx, snapshot)
	s.metrics.RecordPersistence(ctx, opSave, start, err)
	if err != nil {
		err = asPersistenceError(err, s.repo.Location(), domain.NewWriteError)
		s.logger.ErrorContext(ctx, "failed to save contacts",
			slog.String("operation", "Save"),
			slog.String("path", s.repo.Location()),
			slog.Any("error", err),
		)
		return err
	}

	s.mu.Lock()
	s.saved = max(s.saved, rev)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "contacts saved",
		slog.String("path", s.repo.Location()),
		slog.Int("count", len(snapshot)),
	)
	return nil
}

// Load appends the persisted contacts to the sequence. Nothing is appended
// unless the whole file was read successfully.
func (s *ContactStore) Load(ctx context.Context) error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	start := time.Now()
	loaded, err := s.repo.Load(ctx)
	s.metrics.RecordPersistence(ctx, opLoad, start, err)
	if err != nil {
		err = asPersistenceError(err, s.repo.Location(), domain.NewReadError)
		s.logger.ErrorContext(ctx, "failed to load contacts",
			slog.String("operation", "Load"),
			slog.String("path", s.repo.Location()),
			slog.Any("error", err),
		)
		return err
	}
	if len(loaded) == 0 {
		s.logger.DebugContext(ctx, "no persisted contacts", slog.String("path", s.repo.Location()))
		return nil
	}

	s.mu.Lock()
	clean := s.revision == s.saved
	for _, c := range loaded {
		s.track(c)
	}
	s.contacts = append(s.contacts, loaded...)
	s.revision++
	if clean {
		s.saved = s.revision
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "contacts loaded",
		slog.String("path", s.repo.Location()),
		slog.Int("count", len(loaded)),
	)
	s.notify(ports.Change{Kind: ports.ChangeLoaded, Count: len(loaded)})
	return nil
}

// Contacts returns a snapshot of the sequence holding the stored pointers.
func (s *ContactStore) Contacts() []*contact.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts)
}

// Len returns the number of stored contacts.
func (s *ContactStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// Dirty reports whether the sequence changed since the last successful save
// or the initial load.
func (s *ContactStore) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision != s.saved
}

// Subscribe registers o to be called after every change, in subscription
// order.
func (s *ContactStore) Subscribe(o ports.Observer) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, observerEntry{id: id, fn: o})

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(e observerEntry) bool { return e.id == id })
	}
}

// Handle returns the runtime handle of a stored contact.
func (s *ContactStore) Handle(c *contact.Contact) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handles[c]
	return h, ok
}

// Lookup resolves a runtime handle to the stored contact.
func (s *ContactStore) Lookup(handle uuid.UUID) (*contact.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byHandle[handle]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// track assigns a handle to c if it has none. Must be called with s.mu held.
func (s *ContactStore) track(c *contact.Contact) {
	if _, ok := s.handles[c]; ok {
		return
	}
	h := uuid.New()
	s.handles[c] = h
	s.byHandle[h] = c
}

// untrack drops the handle of c. Must be called with s.mu held.
func (s *ContactStore) untrack(c *contact.Contact) {
	if h, ok := s.handles[c]; ok {
		delete(s.byHandle, h)
		delete(s.handles, c)
	}
}

func (s *ContactStore) notify(ch ports.Change) {
	s.obsMu.Lock()
	observers := make([]ports.Observer, len(s.observers))
	for i, e := range s.observers {
		observers[i] = e.fn
	}
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn(ch)
	}
}

// contactAttrs returns the audit attributes of c.
func contactAttrs(c *contact.Contact) []any {
	return []any{
		slog.String("name", c.Name),
		slog.String("phone", c.Phone),
		slog.String("category", c.Category.String()),
	}
}

// asPersistenceError keeps an existing *domain.PersistenceError and wraps
// anything else with wrap.
func asPersistenceError(err error, location string, wrap func(string, error) *domain.PersistenceError) error {
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		return err
	}
	return wrap(location, err)
}
