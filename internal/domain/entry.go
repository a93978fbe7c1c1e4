package domain

// Entry groups the translations of one concept
type Entry struct {
	Translations []Translation
}

// NewEntry creates an entry holding only first
func NewEntry(first Translation) Entry {
	return Entry{Translations: []Translation{first}}
}

// Len returns the number of translations
func (e Entry) Len() int {
	return len(e.Translations)
}

// EnglishIndex returns the position of the first English translation, or -1
func (e Entry) EnglishIndex() int {
	for i, t := range e.Translations {
		if t.Language == EnglishLanguage {
			return i
		}
	}
	return -1
}

// English returns the English word of the entry
func (e Entry) English() (string, bool) {
	i := e.EnglishIndex()
	if i < 0 {
		return "", false
	}
	return e.Translations[i].Word, true
}

// Contains reports whether any translation satisfies the query q
func (e Entry) Contains(q Translation) bool {
	for _, t := range e.Translations {
		if q.Matches(t) {
			return true
		}
	}
	return false
}

// WordsIn returns the words written in language, in entry order
func (e Entry) WordsIn(language string) []string {
	var words []string
	for _, t := range e.Translations {
		if t.Language == language {
			words = append(words, t.Word)
		}
	}
	return words
}

// Clone returns a copy that shares no memory with e
func (e Entry) Clone() Entry {
	translations := make([]Translation, len(e.Translations))
	copy(translations, e.Translations)
	return Entry{Translations: translations}
}
