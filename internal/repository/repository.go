package repository

import (
	"translator/internal/domain"
)

// EntryRepository defines entry file operations
type EntryRepository interface {
	// Save writes entries under name and returns the path written.
	Save(name string, entries []domain.Entry) (string, error)
	// Load reads the entries stored under name.
	Load(name string) ([]domain.Entry, error)
}
