// Package file implements contact.Repository on top of a single JSON file.
//
// The file holds an array of records:
//
//	[
//	  {"name": "John", "phones": ["1234567890"], "birthday": "01.01.2000"},
//	  {"name": "Jane", "phones": []}
//	]
//
// "birthday" is omitted when unset. Writes go to a temp file in the same
// directory which is then renamed over the target.
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

var (
	// ErrCorruptFile is returned when the data file is not valid JSON or
	// holds records that fail validation.
	ErrCorruptFile = errors.New("address book file is corrupt")

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// recordDTO is the on-disk form of a contact.
type recordDTO struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Config configures the repository.
type Config struct {
	Path     string
	FileMode os.FileMode
	Logger   *slog.Logger
}

// AddressBookRepository stores the address book as JSON on disk.
type AddressBookRepository struct {
	path   string
	mode   os.FileMode
	logger *slog.Logger
}

var _ contact.Repository = (*AddressBookRepository)(nil)

// NewAddressBookRepository creates a repository for the given file.
func NewAddressBookRepository(cfg Config) (*AddressBookRepository, error) {
	if cfg.Path == "" {
		return nil, errors.New("file repository: path is required")
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0o644
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &AddressBookRepository{
		path:   cfg.Path,
		mode:   cfg.FileMode,
		logger: cfg.Logger.With(logger.Component("file_repository"), logger.Path(cfg.Path)),
	}, nil
}

// Path returns the data file location.
func (r *AddressBookRepository) Path() string {
	return r.path
}

// Load reads the data file and merges its records into book. A missing
// file leaves the book untouched.
func (r *AddressBookRepository) Load(ctx context.Context, book *contact.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("address book file not found, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("file repository: read: %w", err)
	}

	loaded, err := decode(data)
	if err != nil {
		return err
	}
	book.Merge(loaded)

	r.logger.Info("address book loaded", logger.Count("contacts", loaded.Len()))
	return nil
}

// Save writes every record of book, replacing the previous file.
func (r *AddressBookRepository) Save(ctx context.Context, book *contact.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(book)
	if err != nil {
		return fmt.Errorf("file repository: encode: %w", err)
	}
	if err := writeFileAtomic(r.path, data, r.mode); err != nil {
		return fmt.Errorf("file repository: write: %w", err)
	}

	r.logger.Info("address book saved", logger.Count("contacts", book.Len()))
	return nil
}

func encode(book *contact.AddressBook) ([]byte, error) {
	records := book.Records()
	dtos := make([]recordDTO, 0, len(records))
	for _, rec := range records {
		s := rec.Snapshot()
		dtos = append(dtos, recordDTO{Name: s.Name, Phones: s.Phones, Birthday: s.Birthday})
	}
	data, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decode(data []byte) (*contact.AddressBook, error) {
	book := contact.NewAddressBook()
	if len(bytes.TrimSpace(data)) == 0 {
		return book, nil
	}
	if !json.Valid(data) {
		return nil, ErrCorruptFile
	}

	var dtos []recordDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	for i, dto := range dtos {
		rec, err := contact.RestoreRecord(contact.RecordSnapshot{
			Name:     dto.Name,
			Phones:   dto.Phones,
			Birthday: dto.Birthday,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrCorruptFile, i, err)
		}
		book.AddRecord(rec)
	}
	return book, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
