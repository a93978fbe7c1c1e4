package store

import (
	"errors"
	"fmt"
	"testing"

	"translator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tr(language, word string) domain.Translation {
	return domain.Translation{Language: language, Word: word}
}

func entry(translations ...domain.Translation) domain.Entry {
	return domain.Entry{Translations: translations}
}

// newFilledStore builds a store from entries without going through AddEntry
func newFilledStore(t *testing.T, entries ...domain.Entry) *EntryStore {
	t.Helper()
	s := New(domain.DefaultLimits())
	_, err := s.Import(entries, nil)
	require.NoError(t, err)
	return s
}

func englishWords(s *EntryStore) []string {
	words := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		w, _ := e.English()
		words = append(words, w)
	}
	return words
}

func assertInvariants(t *testing.T, s *EntryStore) {
	t.Helper()
	assert.LessOrEqual(t, s.Len(), s.Limits().MaxEntries)
	for _, e := range s.Entries() {
		assert.GreaterOrEqual(t, e.Len(), 1)
		assert.LessOrEqual(t, e.Len(), s.Limits().MaxTranslations)
	}
}

func TestEntryStore_MatchCount(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "cat"), tr("French", "chat")),
		entry(tr("English", "chat"), tr("French", "bavarder")),
		entry(tr("English", "dog"), tr("French", "chien")),
		entry(tr("French", "chat"), tr("Spanish", "gato"), tr("Italian", "gatto")),
	)

	tests := []struct {
		name     string
		query    domain.Translation
		expected int
	}{
		{name: "word-only across languages", query: tr("", "chat"), expected: 3},
		{name: "full match", query: tr("French", "chat"), expected: 2},
		{name: "full match other language", query: tr("English", "chat"), expected: 1},
		{name: "no match", query: tr("German", "Katze"), expected: 0},
		{name: "case-sensitive", query: tr("", "Cat"), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.MatchCount(tt.query))
		})
	}
}

func TestEntryStore_MatchCount_CountsEntryOnce(t *testing.T) {
	s := newFilledStore(t, entry(tr("English", "bat"), tr("Tagalog", "bat")))

	assert.Equal(t, 1, s.MatchCount(tr("", "bat")))
}

func TestEntryStore_MatchIndexAt(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "ant")),
		entry(tr("English", "bee"), tr("French", "x")),
		entry(tr("English", "cow")),
		entry(tr("English", "doe"), tr("French", "x")),
	)

	q := tr("", "x")
	assert.Equal(t, 1, s.MatchIndexAt(q, 1))
	assert.Equal(t, 3, s.MatchIndexAt(q, 2))
	assert.Equal(t, NotFound, s.MatchIndexAt(q, 3))
	assert.Equal(t, NotFound, s.MatchIndexAt(q, 0))
	assert.Equal(t, NotFound, s.MatchIndexAt(q, -1))
	assert.Equal(t, NotFound, s.MatchIndexAt(tr("", "zzz"), 1))
}

func TestEntryStore_MatchConsistency(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "one"), tr("Tag", "a")),
		entry(tr("English", "two"), tr("Tag", "a")),
		entry(tr("French", "trois"), tr("Tag", "a")),
		entry(tr("English", "four")),
		entry(tr("Tag", "a")),
	)

	for _, q := range []domain.Translation{tr("", "a"), tr("Tag", "a"), tr("English", "four"), tr("", "none")} {
		k := s.MatchCount(q)
		seen := make(map[int]bool)
		for n := 1; n <= k; n++ {
			index := s.MatchIndexAt(q, n)
			require.NotEqual(t, NotFound, index, "query %v n=%d", q, n)
			e, err := s.Entry(index)
			require.NoError(t, err)
			assert.True(t, e.Contains(q))
			assert.False(t, seen[index], "index returned twice")
			seen[index] = true
		}
		assert.Equal(t, NotFound, s.MatchIndexAt(q, k+1))
		assert.Equal(t, NotFound, s.MatchIndexAt(q, 0))
	}
}

func TestEntryStore_AddEntry(t *testing.T) {
	s := New(domain.DefaultLimits())

	require.NoError(t, s.AddEntry(tr("English", "cat")))
	assert.Equal(t, 1, s.Len())

	// a French-only entry is a new entry, sorted after the English one
	require.NoError(t, s.AddEntry(tr("French", "chat")))
	assert.Equal(t, 2, s.Len())

	first, err := s.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Translation{tr("English", "cat")}, first.Translations)

	second, err := s.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Translation{tr("French", "chat")}, second.Translations)
}

func TestEntryStore_AddEntry_Sorted(t *testing.T) {
	s := New(domain.DefaultLimits())
	for _, w := range []string{"pear", "apple", "Zebra", "banana"} {
		require.NoError(t, s.AddEntry(tr("English", w)))
	}

	// byte order puts upper case first
	assert.Equal(t, []string{"Zebra", "apple", "banana", "pear"}, englishWords(s))
}

func TestEntryStore_AddEntry_Full(t *testing.T) {
	s := New(domain.Limits{MaxEntries: 2, MaxTranslations: 10})
	require.NoError(t, s.AddEntry(tr("English", "a")))
	require.NoError(t, s.AddEntry(tr("English", "b")))

	err := s.AddEntry(tr("English", "c"))
	assert.True(t, errors.Is(err, domain.ErrFull))
	assert.Equal(t, 2, s.Len())
}

func TestEntryStore_AddEntry_DefaultCapacity(t *testing.T) {
	s := New(domain.DefaultLimits())
	for i := 0; i < domain.DefaultMaxEntries; i++ {
		require.NoError(t, s.AddEntry(tr("English", fmt.Sprintf("w%03d", i))))
	}

	err := s.AddEntry(tr("English", "overflow"))
	assert.ErrorIs(t, err, domain.ErrFull)
	assert.Equal(t, domain.DefaultMaxEntries, s.Len())
	assertInvariants(t, s)
}

func TestEntryStore_AddTranslation(t *testing.T) {
	s := newFilledStore(t, entry(tr("English", "cat")))

	index, err := s.AddTranslation(0, tr("Danish", "kat"))
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	e, err := s.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Translation{tr("Danish", "kat"), tr("English", "cat")}, e.Translations)
}

func TestEntryStore_AddTranslation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected error
	}{
		{name: "negative index", index: -1, expected: domain.ErrIndexInvalid},
		{name: "index past end", index: 1, expected: domain.ErrIndexInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFilledStore(t, entry(tr("English", "cat")))
			_, err := s.AddTranslation(tt.index, tr("French", "chat"))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestEntryStore_AddTranslation_Full(t *testing.T) {
	s := New(domain.DefaultLimits())
	require.NoError(t, s.AddEntry(tr("English", "cat")))
	for i := 1; i < domain.DefaultMaxTranslations; i++ {
		_, err := s.AddTranslation(0, tr(fmt.Sprintf("Lang%02d", i), "x"))
		require.NoError(t, err)
	}

	_, err := s.AddTranslation(0, tr("Lang99", "y"))
	assert.ErrorIs(t, err, domain.ErrFull)

	e, err := s.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxTranslations, e.Len())
}

func TestEntryStore_AddTranslation_EnglishResorts(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "dog")),
		entry(tr("French", "chat")),
	)
	require.Equal(t, []string{"dog", ""}, englishWords(s))

	index, err := s.AddTranslation(1, tr("English", "cat"))
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, []string{"cat", "dog"}, englishWords(s))

	e, err := s.Entry(index)
	require.NoError(t, err)
	assert.Equal(t, []domain.Translation{tr("English", "cat"), tr("French", "chat")}, e.Translations)
}

func TestEntryStore_DeleteEntry(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "ant")),
		entry(tr("English", "bee")),
		entry(tr("English", "cow")),
		entry(tr("English", "doe")),
	)

	require.NoError(t, s.DeleteEntry(1))
	assert.Equal(t, []string{"ant", "cow", "doe"}, englishWords(s))

	err := s.DeleteEntry(3)
	assert.ErrorIs(t, err, domain.ErrIndexInvalid)
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.DeleteEntry(2))
	require.NoError(t, s.DeleteEntry(0))
	require.NoError(t, s.DeleteEntry(0))
	assert.True(t, s.IsEmpty())
	assert.ErrorIs(t, s.DeleteEntry(0), domain.ErrIndexInvalid)
}

func TestEntryStore_DeleteTranslation(t *testing.T) {
	t.Run("sole translation removes the entry", func(t *testing.T) {
		s := newFilledStore(t, entry(tr("English", "dog")))

		index, err := s.DeleteTranslation(0, 0)
		require.NoError(t, err)
		assert.Equal(t, NotFound, index)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("one of several keeps the entry", func(t *testing.T) {
		s := newFilledStore(t,
			entry(tr("English", "cat"), tr("French", "chat"), tr("German", "Katze")),
			entry(tr("English", "dog")),
		)

		index, err := s.DeleteTranslation(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())

		// the entry lost its English word and moved last
		assert.Equal(t, 1, index)
		e, err := s.Entry(index)
		require.NoError(t, err)
		assert.Equal(t, []domain.Translation{tr("French", "chat"), tr("German", "Katze")}, e.Translations)
	})

	t.Run("invalid indexes", func(t *testing.T) {
		s := newFilledStore(t, entry(tr("English", "cat"), tr("French", "chat")))

		_, err := s.DeleteTranslation(1, 0)
		assert.ErrorIs(t, err, domain.ErrIndexInvalid)
		_, err = s.DeleteTranslation(0, 2)
		assert.ErrorIs(t, err, domain.ErrIndexInvalid)
		_, err = s.DeleteTranslation(0, -1)
		assert.ErrorIs(t, err, domain.ErrIndexInvalid)

		e, err := s.Entry(0)
		require.NoError(t, err)
		assert.Equal(t, 2, e.Len())
	})
}

func TestEntryStore_EntryReturnsCopy(t *testing.T) {
	s := newFilledStore(t, entry(tr("English", "cat")))

	e, err := s.Entry(0)
	require.NoError(t, err)
	e.Translations[0].Word = "dog"

	again, err := s.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "cat", again.Translations[0].Word)

	_, err = s.Entry(1)
	assert.ErrorIs(t, err, domain.ErrIndexInvalid)
}

func TestEntryStore_Clear(t *testing.T) {
	s := newFilledStore(t, entry(tr("English", "cat")), entry(tr("English", "dog")))
	s.Clear()

	assert.True(t, s.IsEmpty())
	require.NoError(t, s.AddEntry(tr("English", "eel")))
	assert.Equal(t, 1, s.Len())
}

func TestEntryStore_Translate(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "cat"), tr("French", "chat"), tr("Spanish", "gato")),
		entry(tr("English", "tomcat"), tr("French", "matou"), tr("Spanish", "gato")),
		entry(tr("English", "dog"), tr("Spanish", "perro")),
	)

	tests := []struct {
		name     string
		source   domain.Translation
		target   string
		expected []string
	}{
		{name: "full match", source: tr("English", "cat"), target: "French", expected: []string{"chat"}},
		{name: "several entries without repetition", source: tr("Spanish", "gato"), target: "English", expected: []string{"cat", "tomcat"}},
		{name: "word-only source", source: tr("", "perro"), target: "English", expected: []string{"dog"}},
		{name: "missing target language", source: tr("English", "dog"), target: "French", expected: nil},
		{name: "unknown source", source: tr("English", "cow"), target: "French", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Translate(tt.source, tt.target))
		})
	}
}

func TestEntryStore_Summary(t *testing.T) {
	s := newFilledStore(t,
		entry(tr("English", "cat"), tr("French", "chat")),
		entry(tr("English", "dog")),
	)

	summary := s.Summary()
	assert.Equal(t, 2, summary.Entries)
	assert.Equal(t, 3, summary.Translations)
	assert.Equal(t, map[string]int{"English": 2, "French": 1}, summary.Languages)
}
