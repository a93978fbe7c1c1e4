package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store, the service and the repository.
var (
	// ErrFull is returned when the store or an entry reached its capacity.
	ErrFull = errors.New("capacity reached")

	// ErrIndexInvalid is returned when an entry or translation index is out of range.
	ErrIndexInvalid = errors.New("index out of range")

	// ErrNoEntries is returned when an operation needs at least one entry.
	ErrNoEntries = errors.New("no entries are present")

	// ErrNoMatch is returned when a lookup matched no entry.
	ErrNoMatch = errors.New("no matching entry")

	// ErrWriteFailed is returned when an entry file cannot be created or overwritten.
	ErrWriteFailed = errors.New("could not create or overwrite the file")

	// ErrReadFailed is returned when an entry file cannot be opened and read.
	ErrReadFailed = errors.New("could not open and read the file")
)

// CapacityError describes which limit was reached
type CapacityError struct {
	What  string
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %s limit is %d", ErrFull, e.What, e.Limit)
}

func (e *CapacityError) Unwrap() error { return ErrFull }

// IndexError describes a rejected index
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s %d not in [0, %d)", ErrIndexInvalid, e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexInvalid }
