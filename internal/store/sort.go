package store

import (
	"translator/internal/domain"
)

// SortEntries orders the entries by English word in byte order; entries
// without an English translation go last.
func (s *EntryStore) SortEntries() {
	s.sortEntriesTracking(NotFound)
}

// SortTranslations orders the translations of the entry at index by language
func (s *EntryStore) SortTranslations(index int) error {
	if err := s.checkEntryIndex(index); err != nil {
		return err
	}
	sortTranslations(&s.entries[index])
	return nil
}

func (s *EntryStore) sortAllTranslations() {
	for i := range s.entries {
		sortTranslations(&s.entries[i])
	}
}

// sortEntriesTracking exchange-sorts the entries and returns where the entry
// previously at tracked ended up.
func (s *EntryStore) sortEntriesTracking(tracked int) int {
	for i := 0; i < len(s.entries)-1; i++ {
		for j := i + 1; j < len(s.entries); j++ {
			if !entryAfter(s.entries[i], s.entries[j]) {
				continue
			}
			s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
			switch tracked {
			case i:
				tracked = j
			case j:
				tracked = i
			}
		}
	}
	return tracked
}

// entryAfter reports whether a must be placed after b
func entryAfter(a, b domain.Entry) bool {
	aWord, aOK := a.English()
	bWord, bOK := b.English()
	switch {
	case aOK && bOK:
		return aWord > bWord
	case !aOK && bOK:
		return true
	default:
		return false
	}
}

func sortTranslations(e *domain.Entry) {
	t := e.Translations
	for i := 0; i < len(t)-1; i++ {
		for j := i + 1; j < len(t); j++ {
			if t[i].Language > t[j].Language {
				t[i], t[j] = t[j], t[i]
			}
		}
	}
}
