package testutil

import (
	"translator/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestTranslation creates a test translation
func NewTestTranslation(language, word string) domain.Translation {
	return domain.Translation{Language: language, Word: word}
}

// NewTestEntry creates an entry from alternating language and word arguments
func NewTestEntry(pairs ...string) domain.Entry {
	var e domain.Entry
	for i := 0; i+1 < len(pairs); i += 2 {
		e.Translations = append(e.Translations, NewTestTranslation(pairs[i], pairs[i+1]))
	}
	return e
}
