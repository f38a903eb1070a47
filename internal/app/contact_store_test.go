package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
	"github.com/jsamuelsen11/phonebook/internal/ports"
	"github.com/jsamuelsen11/phonebook/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// memRepository keeps the saved sequence in memory, copying on both ends so
// the store under test never shares pointers with what was "persisted".
type memRepository struct {
	mu    sync.Mutex
	saved []contact.Contact
	ok    bool
}

func (r *memRepository) Save(_ context.Context, contacts []*contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = r.saved[:0]
	for _, c := range contacts {
		r.saved = append(r.saved, *c)
	}
	r.ok = true
	return nil
}

func (r *memRepository) Load(_ context.Context) ([]*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ok {
		return nil, nil
	}
	out := make([]*contact.Contact, len(r.saved))
	for i := range r.saved {
		c := r.saved[i]
		out[i] = &c
	}
	return out, nil
}

func (r *memRepository) Location() string { return "memory" }

func triples(contacts []*contact.Contact) []contact.Contact {
	out := make([]contact.Contact, len(contacts))
	for i, c := range contacts {
		out[i] = *c
	}
	return out
}

func newMockRepo(t *testing.T) *mocks.MockContactRepository {
	t.Helper()
	repo := mocks.NewMockContactRepository(t)
	repo.EXPECT().Location().Return("contacts.json").Maybe()
	return repo
}

// --- NewContactStore ---

func TestNewContactStore_NilLogger(t *testing.T) {
	t.Parallel()

	s := NewContactStore(&memRepository{}, nil)
	if s.logger == nil {
		t.Fatal("NewContactStore(nil logger) should create a no-op logger, got nil")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

// --- Add ---

func TestContactStore_Add(t *testing.T) {
	t.Parallel()

	t.Run("appends and grows by one", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		a := contact.New("Alice", "111", contact.CategoryHome)
		b := contact.New("Bob", "222", contact.CategoryWork)

		for i, c := range []*contact.Contact{a, b} {
			if err := s.Add(context.Background(), c); err != nil {
				t.Fatalf("Add() error = %v, want nil", err)
			}
			if s.Len() != i+1 {
				t.Errorf("Len() = %d, want %d", s.Len(), i+1)
			}
		}
		got := s.Contacts()
		if got[0] != a || got[1] != b {
			t.Errorf("Contacts() = %v, want [%v %v]", got, a, b)
		}
	})

	t.Run("same pointer twice is stored twice", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		c := contact.New("Alice", "111", contact.CategoryHome)

		_ = s.Add(context.Background(), c)
		_ = s.Add(context.Background(), c)
		if s.Len() != 2 {
			t.Errorf("Len() = %d, want 2", s.Len())
		}
	})

	t.Run("accepts empty fields by default", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())

		if err := s.Add(context.Background(), contact.New("", "", "")); err != nil {
			t.Errorf("Add() error = %v, want nil", err)
		}
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("ignores nil by default", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())

		if err := s.Add(context.Background(), nil); err != nil {
			t.Errorf("Add(nil) error = %v, want nil", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
	})

	t.Run("strict mode rejects empty fields", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger(), WithStrict(true))

		err := s.Add(context.Background(), contact.New(" ", "111", contact.CategoryHome))
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Add() error = %v, want ErrValidation", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
	})

	t.Run("strict mode rejects nil", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger(), WithStrict(true))

		if err := s.Add(context.Background(), nil); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Add(nil) error = %v, want ErrValidation", err)
		}
	})
}

// --- Remove ---

func TestContactStore_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes by identity", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		a := contact.New("Alice", "111", contact.CategoryHome)
		b := contact.New("Bob", "222", contact.CategoryWork)
		_ = s.Add(context.Background(), a)
		_ = s.Add(context.Background(), b)

		if !s.Remove(context.Background(), a) {
			t.Fatal("Remove() = false, want true")
		}
		got := s.Contacts()
		if len(got) != 1 || got[0] != b {
			t.Errorf("Contacts() = %v, want [%v]", got, b)
		}
	})

	t.Run("equal fields but different pointer is not removed", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		a := contact.New("Alice", "111", contact.CategoryHome)
		_ = s.Add(context.Background(), a)

		twin := contact.New("Alice", "111", contact.CategoryHome)
		if s.Remove(context.Background(), twin) {
			t.Error("Remove(twin) = true, want false")
		}
		if got := s.Contacts(); len(got) != 1 || got[0] != a {
			t.Errorf("Contacts() = %v, want [%v]", got, a)
		}
	})

	t.Run("absent and nil are no-ops", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		_ = s.Add(context.Background(), contact.New("Alice", "111", contact.CategoryHome))

		if s.Remove(context.Background(), contact.New("Zed", "9", "")) {
			t.Error("Remove(absent) = true, want false")
		}
		if s.Remove(context.Background(), nil) {
			t.Error("Remove(nil) = true, want false")
		}
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("duplicate pointer removes first occurrence only", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		a := contact.New("Alice", "111", contact.CategoryHome)
		_ = s.Add(context.Background(), a)
		_ = s.Add(context.Background(), a)

		s.Remove(context.Background(), a)
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
		if _, ok := s.Handle(a); !ok {
			t.Error("Handle() ok = false after removing one of two occurrences, want true")
		}
	})
}

// --- Search ---

func TestContactStore_Search(t *testing.T) {
	t.Parallel()

	s := NewContactStore(&memRepository{}, discardLogger())
	john := contact.New("John Doe", "1234567890", contact.CategoryMobile)
	_ = s.Add(context.Background(), john)

	tests := []struct {
		query string
		want  bool
	}{
		{"john", true},
		{"456", true},
		{"mobile", false},
		{"", true},
		{"zzz", false},
	}
	for _, tt := range tests {
		if got := s.Search(tt.query)(john); got != tt.want {
			t.Errorf("Search(%q)(john) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

// --- Sort ---

func TestContactStore_Sort(t *testing.T) {
	t.Parallel()

	t.Run("name is stable and case-sensitive", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		bob2 := contact.New("Bob", "2", "")
		alice := contact.New("alice", "1", "")
		bob3 := contact.New("Bob", "3", "")
		for _, c := range []*contact.Contact{bob2, alice, bob3} {
			_ = s.Add(context.Background(), c)
		}

		s.Sort(context.Background(), contact.SortByName)

		want := []*contact.Contact{bob2, bob3, alice}
		if got := s.Contacts(); !slices.Equal(got, want) {
			t.Errorf("Contacts() = %v, want %v", got, want)
		}
	})

	t.Run("unsupported field is a no-op", func(t *testing.T) {
		t.Parallel()
		s := NewContactStore(&memRepository{}, discardLogger())
		b := contact.New("B", "1", "")
		a := contact.New("A", "2", "")
		_ = s.Add(context.Background(), b)
		_ = s.Add(context.Background(), a)

		var events int
		s.Subscribe(func(ports.Change) { events++ })
		s.Sort(context.Background(), contact.SortField("category"))

		if got := s.Contacts(); got[0] != b || got[1] != a {
			t.Errorf("Contacts() = %v, want unchanged", got)
		}
		if events != 0 {
			t.Errorf("observer called %d times, want 0", events)
		}
	})
}

// --- Save / Load ---

func TestContactStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	repo := &memRepository{}
	s := NewContactStore(repo, discardLogger())
	for _, c := range []*contact.Contact{
		contact.New("Alice", "111", contact.CategoryHome),
		contact.New("Bob", "222", contact.CategoryWork),
		contact.New("Alice", "111", contact.CategoryHome),
		contact.New("", "", ""),
	} {
		_ = s.Add(context.Background(), c)
	}

	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	fresh := NewContactStore(repo, discardLogger())
	if err := fresh.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if got, want := triples(fresh.Contacts()), triples(s.Contacts()); !slices.Equal(got, want) {
		t.Errorf("loaded = %v, want %v", got, want)
	}
}

func TestContactStore_LoadAppends(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(t)
	persisted := []*contact.Contact{contact.New("Bob", "222", contact.CategoryWork)}
	repo.EXPECT().Load(mock.Anything).Return(persisted, nil)

	s := NewContactStore(repo, discardLogger())
	existing := contact.New("Alice", "111", contact.CategoryHome)
	_ = s.Add(context.Background(), existing)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	got := s.Contacts()
	if len(got) != 2 || got[0] != existing || got[1] != persisted[0] {
		t.Errorf("Contacts() = %v, want [existing persisted]", got)
	}
	if _, ok := s.Handle(persisted[0]); !ok {
		t.Error("Handle(loaded) ok = false, want true")
	}
}

func TestContactStore_LoadMissingIsNoop(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(t)
	repo.EXPECT().Load(mock.Anything).Return(nil, nil)

	s := NewContactStore(repo, discardLogger())
	a := contact.New("Alice", "111", contact.CategoryHome)
	_ = s.Add(context.Background(), a)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if got := s.Contacts(); len(got) != 1 || got[0] != a {
		t.Errorf("Contacts() = %v, want [%v]", got, a)
	}
}

func TestContactStore_LoadFailureLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(t)
	repo.EXPECT().Load(mock.Anything).Return(nil, errors.New("unexpected EOF"))

	s := NewContactStore(repo, discardLogger())
	a := contact.New("Alice", "111", contact.CategoryHome)
	_ = s.Add(context.Background(), a)

	err := s.Load(context.Background())
	if !errors.Is(err, domain.ErrPersistenceRead) {
		t.Fatalf("Load() error = %v, want ErrPersistenceRead", err)
	}
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) || perr.Path != "contacts.json" {
		t.Errorf("Load() error = %#v, want *PersistenceError with path contacts.json", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestContactStore_SaveFailure(t *testing.T) {
	t.Parallel()

	t.Run("wraps plain errors as write errors", func(t *testing.T) {
		t.Parallel()
		repo := newMockRepo(t)
		repo.EXPECT().Save(mock.Anything, mock.Anything).Return(fs.ErrPermission)

		s := NewContactStore(repo, discardLogger())
		_ = s.Add(context.Background(), contact.New("Alice", "111", contact.CategoryHome))

		err := s.Save(context.Background())
		if !errors.Is(err, domain.ErrPersistenceWrite) {
			t.Errorf("Save() error = %v, want ErrPersistenceWrite", err)
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("Save() error = %v, want it to wrap fs.ErrPermission", err)
		}
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
		if !s.Dirty() {
			t.Error("Dirty() = false after failed save, want true")
		}
	})

	t.Run("keeps repository persistence errors", func(t *testing.T) {
		t.Parallel()
		repo := newMockRepo(t)
		original := domain.NewWriteError("/nope/contacts.json", fs.ErrNotExist)
		repo.EXPECT().Save(mock.Anything, mock.Anything).Return(original)

		s := NewContactStore(repo, discardLogger())
		err := s.Save(context.Background())

		var perr *domain.PersistenceError
		if !errors.As(err, &perr) || perr != original {
			t.Errorf("Save() error = %v, want the repository's error unchanged", err)
		}
	})
}

func TestContactStore_SaveSnapshotsSequence(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(t)
	s := NewContactStore(repo, discardLogger())
	a := contact.New("Alice", "111", contact.CategoryHome)
	_ = s.Add(context.Background(), a)

	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, contacts []*contact.Contact) {
			if len(contacts) != 1 || contacts[0] != a {
				t.Errorf("Save() received %v, want [%v]", contacts, a)
			}
		}).
		Return(nil)

	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}
	if s.Dirty() {
		t.Error("Dirty() = true after successful save, want false")
	}
}

// --- Dirty ---

func TestContactStore_Dirty(t *testing.T) {
	t.Parallel()

	repo := &memRepository{}
	_ = repo.Save(context.Background(), []*contact.Contact{contact.New("Bob", "222", "")})

	s := NewContactStore(repo, discardLogger())
	if s.Dirty() {
		t.Error("Dirty() = true for new store, want false")
	}
	_ = s.Load(context.Background())
	if s.Dirty() {
		t.Error("Dirty() = true after initial load, want false")
	}
	_ = s.Add(context.Background(), contact.New("Alice", "111", ""))
	if !s.Dirty() {
		t.Error("Dirty() = false after add, want true")
	}
	_ = s.Save(context.Background())
	if s.Dirty() {
		t.Error("Dirty() = true after save, want false")
	}
}

// --- Handles ---

func TestContactStore_Handles(t *testing.T) {
	t.Parallel()

	s := NewContactStore(&memRepository{}, discardLogger())
	a := contact.New("Alice", "111", contact.CategoryHome)
	b := contact.New("Alice", "111", contact.CategoryHome)
	_ = s.Add(context.Background(), a)
	_ = s.Add(context.Background(), b)

	ha, ok := s.Handle(a)
	if !ok {
		t.Fatal("Handle(a) ok = false, want true")
	}
	hb, _ := s.Handle(b)
	if ha == hb {
		t.Error("equal contacts share a handle, want distinct handles")
	}

	got, err := s.Lookup(ha)
	if err != nil || got != a {
		t.Errorf("Lookup() = %v, %v, want %v, nil", got, err, a)
	}

	s.Remove(context.Background(), a)
	if _, err := s.Lookup(ha); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Lookup(removed) error = %v, want ErrNotFound", err)
	}
}

// --- Subscribe ---

func TestContactStore_Subscribe(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(t)
	loaded := []*contact.Contact{contact.New("Carol", "333", "")}
	repo.EXPECT().Load(mock.Anything).Return(loaded, nil)

	s := NewContactStore(repo, discardLogger())
	var got []ports.Change
	unsubscribe := s.Subscribe(func(ch ports.Change) {
		// Observers run without the lock and may read the store.
		_ = s.Len()
		got = append(got, ch)
	})

	a := contact.New("Alice", "111", "")
	_ = s.Add(context.Background(), a)
	s.Sort(context.Background(), contact.SortByPhone)
	s.Remove(context.Background(), a)
	_ = s.Load(context.Background())

	want := []ports.Change{
		{Kind: ports.ChangeAdded, Contact: a},
		{Kind: ports.ChangeSorted, Field: contact.SortByPhone},
		{Kind: ports.ChangeRemoved, Contact: a},
		{Kind: ports.ChangeLoaded, Count: 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("changes = %v, want %v", got, want)
	}

	unsubscribe()
	_ = s.Add(context.Background(), a)
	if len(got) != len(want) {
		t.Errorf("observer called after unsubscribe, got %d changes, want %d", len(got), len(want))
	}
}

// --- End to end ---

func TestContactStore_EndToEnd(t *testing.T) {
	t.Parallel()

	repo := &memRepository{}
	ctx := context.Background()
	s := NewContactStore(repo, discardLogger())

	alice := contact.New("Alice", "111", contact.CategoryHome)
	bob := contact.New("Bob", "222", contact.CategoryWork)
	_ = s.Add(ctx, alice)
	_ = s.Add(ctx, bob)

	matches := contact.Filter(s.Contacts(), s.Search("22"))
	if len(matches) != 1 || matches[0] != bob {
		t.Fatalf("Search(\"22\") = %v, want [%v]", matches, bob)
	}

	s.Sort(ctx, contact.SortByPhone)
	if got := s.Contacts(); got[0] != alice || got[1] != bob {
		t.Fatalf("after sort = %v, want [Alice Bob]", got)
	}

	s.Remove(ctx, alice)
	if err := s.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	fresh := NewContactStore(repo, discardLogger())
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []contact.Contact{{Name: "Bob", Phone: "222", Category: contact.CategoryWork}}
	if got := triples(fresh.Contacts()); !slices.Equal(got, want) {
		t.Errorf("loaded = %v, want %v", got, want)
	}
}

// --- Concurrency ---

func TestContactStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewContactStore(&memRepository{}, discardLogger())
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			c := contact.New("n", string(rune('0'+i)), "")
			_ = s.Add(context.Background(), c)
			_ = s.Contacts()
			s.Sort(context.Background(), contact.SortByPhone)
			_ = s.Save(context.Background())
		})
	}
	wg.Wait()

	if s.Len() != 8 {
		t.Errorf("Len() = %d, want 8", s.Len())
	}
}
