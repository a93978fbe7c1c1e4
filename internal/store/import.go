package store

import (
	"translator/internal/domain"
)

// ConfirmFunc decides whether a parsed entry joins a non-empty store
type ConfirmFunc func(entry domain.Entry) bool

// ImportResult reports what an import did with the parsed entries
type ImportResult struct {
	// Added is the number of entries appended to the store.
	Added int
	// Declined is the number of entries refused by the confirm function.
	Declined int
	// Skipped is the number of entries left out because the store was full.
	Skipped int
	// Dropped is the number of translations cut from over-long entries.
	Dropped int
}

// Import appends parsed entries. Into an empty store every entry is added;
// otherwise each one goes through confirm. Entries and translations are
// sorted once at the end. Reaching the entry limit stops the import and
// returns the partial result with an ErrFull error. A nil confirm accepts
// every entry.
func (s *EntryStore) Import(parsed []domain.Entry, confirm ConfirmFunc) (ImportResult, error) {
	var (
		result   ImportResult
		err      error
		wasEmpty = s.IsEmpty()
	)

	for i, entry := range parsed {
		if entry.Len() == 0 {
			continue
		}
		if len(s.entries) >= s.limits.MaxEntries {
			result.Skipped = countNonEmpty(parsed[i:])
			err = &domain.CapacityError{What: "entries", Limit: s.limits.MaxEntries}
			break
		}

		entry = entry.Clone()
		if entry.Len() > s.limits.MaxTranslations {
			result.Dropped += entry.Len() - s.limits.MaxTranslations
			entry.Translations = entry.Translations[:s.limits.MaxTranslations]
		}
		sortTranslations(&entry)

		if !wasEmpty && confirm != nil && !confirm(entry) {
			result.Declined++
			continue
		}
		s.entries = append(s.entries, entry)
		result.Added++
	}

	s.SortEntries()
	s.sortAllTranslations()
	return result, err
}

func countNonEmpty(entries []domain.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Len() > 0 {
			n++
		}
	}
	return n
}
