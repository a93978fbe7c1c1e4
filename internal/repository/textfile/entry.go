package textfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"translator/internal/domain"
)

// Extension is appended to every entry file name.
const Extension = ".txt"

// EntryRepo implements repository.EntryRepository on a directory
type EntryRepo struct {
	dir string
}

// NewEntryRepo creates a repository rooted at dir
func NewEntryRepo(dir string) *EntryRepo {
	return &EntryRepo{dir: dir}
}

// Path returns the file used for name
func (r *EntryRepo) Path(name string) string {
	name = domain.Truncate(strings.TrimSpace(name), domain.MaxFileNameLength)
	return filepath.Join(r.dir, name+Extension)
}

// Save creates or overwrites the file for name
func (r *EntryRepo) Save(name string, entries []domain.Entry) (string, error) {
	path := r.Path(name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}

	if err := Encode(f, entries); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %s: %w", domain.ErrWriteFailed, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrWriteFailed, path, err)
	}

	return path, nil
}

// Load reads the whole file for name before decoding it
func (r *EntryRepo) Load(name string) ([]domain.Entry, error) {
	path := r.Path(name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReadFailed, err)
	}

	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrReadFailed, path, err)
	}

	return entries, nil
}
