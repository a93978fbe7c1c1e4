// Package store holds the bounded, sorted collection of dictionary entries
// together with the lookup and mutation operations over it.
package store

import (
	"translator/internal/domain"
)

// NotFound is returned by MatchIndexAt when there is no n-th match.
const NotFound = -1

// EntryStore is the in-memory dictionary.
// Entries stay sorted by their English word after every mutation.
type EntryStore struct {
	entries []domain.Entry
	limits  domain.Limits
}

// New creates an empty store bounded by limits
func New(limits domain.Limits) *EntryStore {
	limits = limits.Normalize()
	return &EntryStore{
		entries: make([]domain.Entry, 0, limits.MaxEntries),
		limits:  limits,
	}
}

// Limits returns the capacities of the store
func (s *EntryStore) Limits() domain.Limits {
	return s.limits
}

// Len returns the number of entries
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the store holds no entry
func (s *EntryStore) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entry returns a copy of the entry at index
func (s *EntryStore) Entry(index int) (domain.Entry, error) {
	if err := s.checkEntryIndex(index); err != nil {
		return domain.Entry{}, err
	}
	return s.entries[index].Clone(), nil
}

// Entries returns copies of all entries in store order
func (s *EntryStore) Entries() []domain.Entry {
	entries := make([]domain.Entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = e.Clone()
	}
	return entries
}

// Clear discards every entry
func (s *EntryStore) Clear() {
	s.entries = s.entries[:0]
}

// MatchCount returns how many entries hold at least one translation matching q
func (s *EntryStore) MatchCount(q domain.Translation) int {
	count := 0
	for _, e := range s.entries {
		if e.Contains(q) {
			count++
		}
	}
	return count
}

// MatchIndexAt returns the index of the entry holding the n-th match of q,
// counting from 1 in store order, or NotFound.
func (s *EntryStore) MatchIndexAt(q domain.Translation, n int) int {
	if n < 1 {
		return NotFound
	}
	count := 0
	for i, e := range s.entries {
		if !e.Contains(q) {
			continue
		}
		count++
		if count == n {
			return i
		}
	}
	return NotFound
}

// AddEntry appends a new entry holding only first and re-sorts the store.
// Duplicates are not rejected; callers check MatchCount first.
func (s *EntryStore) AddEntry(first domain.Translation) error {
	if len(s.entries) >= s.limits.MaxEntries {
		return &domain.CapacityError{What: "entries", Limit: s.limits.MaxEntries}
	}
	s.entries = append(s.entries, domain.NewEntry(first))
	s.SortEntries()
	return nil
}

// AddTranslation appends t to the entry at entryIndex and returns the
// entry's index after re-sorting.
func (s *EntryStore) AddTranslation(entryIndex int, t domain.Translation) (int, error) {
	if err := s.checkEntryIndex(entryIndex); err != nil {
		return NotFound, err
	}
	entry := &s.entries[entryIndex]
	if entry.Len() >= s.limits.MaxTranslations {
		return NotFound, &domain.CapacityError{What: "translations", Limit: s.limits.MaxTranslations}
	}

	before, hadEnglish := entry.English()
	entry.Translations = append(entry.Translations, t)
	sortTranslations(entry)

	after, hasEnglish := entry.English()
	if hadEnglish != hasEnglish || before != after {
		return s.sortEntriesTracking(entryIndex), nil
	}
	return entryIndex, nil
}

// DeleteEntry removes the entry at index by moving the last entry into its
// slot, then re-sorts.
func (s *EntryStore) DeleteEntry(index int) error {
	if err := s.checkEntryIndex(index); err != nil {
		return err
	}
	s.removeEntry(index)
	return nil
}

// DeleteTranslation removes one translation and returns the entry's index
// after re-sorting. Removing the only translation removes the whole entry,
// reported as NotFound.
func (s *EntryStore) DeleteTranslation(entryIndex, translationIndex int) (int, error) {
	if err := s.checkEntryIndex(entryIndex); err != nil {
		return NotFound, err
	}
	entry := &s.entries[entryIndex]
	if translationIndex < 0 || translationIndex >= entry.Len() {
		return NotFound, &domain.IndexError{What: "translation", Index: translationIndex, Len: entry.Len()}
	}

	if entry.Len() == 1 {
		s.removeEntry(entryIndex)
		return NotFound, nil
	}

	last := entry.Len() - 1
	entry.Translations[translationIndex] = entry.Translations[last]
	entry.Translations = entry.Translations[:last]
	sortTranslations(entry)
	// the removed translation may have been the English one
	return s.sortEntriesTracking(entryIndex), nil
}

// Translate collects the target-language words of every entry matching
// source, in store order and without repetition.
func (s *EntryStore) Translate(source domain.Translation, target string) []string {
	var words []string
	seen := make(map[string]struct{})
	for _, e := range s.entries {
		if !e.Contains(source) {
			continue
		}
		for _, w := range e.WordsIn(target) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}

// Summary counts entries, translations and translations per language
func (s *EntryStore) Summary() domain.Summary {
	summary := domain.Summary{
		Entries:   len(s.entries),
		Languages: make(map[string]int),
	}
	for _, e := range s.entries {
		summary.Translations += e.Len()
		for _, t := range e.Translations {
			summary.Languages[t.Language]++
		}
	}
	return summary
}

func (s *EntryStore) removeEntry(index int) {
	last := len(s.entries) - 1
	s.entries[index] = s.entries[last]
	s.entries[last] = domain.Entry{}
	s.entries = s.entries[:last]
	s.SortEntries()
}

func (s *EntryStore) checkEntryIndex(index int) error {
	if index < 0 || index >= len(s.entries) {
		return &domain.IndexError{What: "entry", Index: index, Len: len(s.entries)}
	}
	return nil
}
