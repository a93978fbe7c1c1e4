package testutil

import (
	"translator/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock for EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Save(name string, entries []domain.Entry) (string, error) {
	args := m.Called(name, entries)
	return args.String(0), args.Error(1)
}

func (m *MockEntryRepository) Load(name string) ([]domain.Entry, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
