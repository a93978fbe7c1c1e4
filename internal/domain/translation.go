package domain

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxTokenLength is the longest language or word a translation holds.
	MaxTokenLength = 20
	// MaxFileNameLength is the longest base name accepted for an entry file.
	MaxFileNameLength = 30
	// EnglishLanguage is the language whose word orders the entries.
	EnglishLanguage = "English"
)

// Translation is a word in a language
type Translation struct {
	Language string
	Word     string
}

// IsWordOnly reports whether the translation, used as a query, ignores the language
func (t Translation) IsWordOnly() bool {
	return t.Language == ""
}

// Matches reports whether other satisfies t used as a query.
// A word-only query compares words, anything else compares both fields.
func (t Translation) Matches(other Translation) bool {
	if t.IsWordOnly() {
		return other.Word == t.Word
	}
	return other.Language == t.Language && other.Word == t.Word
}

// String returns the translation in the "<language>: <word>" form used by entry files
func (t Translation) String() string {
	return fmt.Sprintf("%s: %s", t.Language, t.Word)
}

// Truncate cuts s to at most n characters
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
