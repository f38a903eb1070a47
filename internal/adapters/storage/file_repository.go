package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ContactRepository = (*FileRepository)(nil)
	_ ports.HealthChecker     = (*FileRepository)(nil)
)

// DefaultFileMode is the permission of written contact files.
const DefaultFileMode os.FileMode = 0o600

// healthName identifies the repository in readiness reports.
const healthName = "contacts-file"

// Option configures a FileRepository.
type Option func(*FileRepository)

// WithFormat selects FormatJSON or FormatYAML. The default is FormatJSON.
func WithFormat(format string) Option {
	return func(r *FileRepository) {
		r.format = format
	}
}

// WithPassphrase seals written files and opens sealed files with passphrase.
// An empty passphrase leaves files in plain text.
func WithPassphrase(passphrase string) Option {
	return func(r *FileRepository) {
		r.passphrase = passphrase
	}
}

// WithFileMode sets the permission of written files.
func WithFileMode(mode os.FileMode) Option {
	return func(r *FileRepository) {
		r.mode = mode
	}
}

// FileRepository persists the contact sequence as a single file.
type FileRepository struct {
	path       string
	format     string
	passphrase string
	mode       os.FileMode
	kdf        kdfParams
	codec      codec

	mu sync.Mutex
	// held is set when an unreadable file could not be moved aside; Save
	// refuses to overwrite it.
	held error
}

var errFileHeld = errors.New("unreadable data file could not be moved aside; refusing to overwrite it")

// NewFileRepository creates a repository for the file at path. The file and
// its directory are not touched until the first Save or Load.
func NewFileRepository(path string, opts ...Option) (*FileRepository, error) {
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	r := &FileRepository{
		path:   path,
		format: FormatJSON,
		mode:   DefaultFileMode,
		kdf:    defaultKDFParams(),
	}
	for _, opt := range opts {
		opt(r)
	}

	c, err := newCodec(r.format)
	if err != nil {
		return nil, err
	}
	r.codec = c
	return r, nil
}

// Location returns the file path.
func (r *FileRepository) Location() string {
	return r.path
}

// Sealed reports whether written files are encrypted.
func (r *FileRepository) Sealed() bool {
	return r.passphrase != ""
}

// Save replaces the file with contacts. Any failure is returned as a
// *domain.PersistenceError wrapping domain.ErrPersistenceWrite; the previous
// file is left in place.
func (r *FileRepository) Save(ctx context.Context, contacts []*contact.Contact) error {
	if err := ctx.Err(); err != nil {
		return domain.NewWriteError(r.path, err)
	}

	b, err := r.codec.encode(toDocument(contacts))
	if err != nil {
		return domain.NewWriteError(r.path, err)
	}
	if r.Sealed() {
		if b, err = seal(r.passphrase, b, r.kdf); err != nil {
			return domain.NewWriteError(r.path, fmt.Errorf("sealing: %w", err))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.held != nil {
		return domain.NewWriteError(r.path, r.held)
	}
	if err := writeFile(r.path, b, r.mode); err != nil {
		return domain.NewWriteError(r.path, err)
	}
	return nil
}

// Load reads the file. A missing file returns (nil, nil). Any other failure
// is returned as a *domain.PersistenceError wrapping
// domain.ErrPersistenceRead.
func (r *FileRepository) Load(ctx context.Context) ([]*contact.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewReadError(r.path, err)
	}

	r.mu.Lock()
	b, err := readFile(r.path)
	r.mu.Unlock()
	if err != nil {
		return nil, domain.NewReadError(r.path, err)
	}
	if b == nil {
		return nil, nil
	}

	if isSealed(b) {
		if b, err = unseal(r.passphrase, b); err != nil {
			return nil, domain.NewReadError(r.path, err)
		}
	}

	doc, err := r.codec.decode(b)
	if err != nil {
		return nil, domain.NewReadError(r.path, err)
	}
	contacts, err := fromDocument(doc)
	if err != nil {
		return nil, domain.NewReadError(r.path, err)
	}
	return contacts, nil
}

// SetAside renames the file to <path>.corrupt-<UTC timestamp> and returns
// the new name, so a directory that failed to load can keep running without
// its next Save destroying the original. A missing file returns "". When the
// rename fails every later Save is refused.
func (r *FileRepository) SetAside(now time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Lstat(r.path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	aside := r.path + ".corrupt-" + now.UTC().Format("20060102T150405Z")
	if err := os.Rename(r.path, aside); err != nil {
		r.held = fmt.Errorf("%w: %w", errFileHeld, err)
		return "", r.held
	}
	return aside, nil
}

// Name implements ports.HealthChecker.
func (r *FileRepository) Name() string {
	return healthName
}

// HealthCheck verifies that the target directory exists and accepts new
// files.
func (r *FileRepository) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	held := r.held
	r.mu.Unlock()
	if held != nil {
		return held
	}
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("storage directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage directory %s is not a directory", dir)
	}
	if err := probeWritable(dir); err != nil {
		return fmt.Errorf("storage directory not writable: %w", err)
	}
	return nil
}
