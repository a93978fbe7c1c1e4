package store

import (
	"testing"

	"translator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryStore_Import_EmptyStoreAddsAll(t *testing.T) {
	s := New(domain.DefaultLimits())
	called := false

	result, err := s.Import([]domain.Entry{
		entry(tr("French", "chien"), tr("English", "dog")),
		entry(tr("English", "cat"), tr("French", "chat")),
	}, func(domain.Entry) bool {
		called = true
		return false
	})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, ImportResult{Added: 2}, result)
	assert.Equal(t, []string{"cat", "dog"}, englishWords(s))

	dog, err := s.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Translation{tr("English", "dog"), tr("French", "chien")}, dog.Translations)
}

func TestEntryStore_Import_ConfirmsIntoNonEmptyStore(t *testing.T) {
	s := newFilledStore(t, entry(tr("English", "cat")))
	var offered []domain.Entry

	result, err := s.Import([]domain.Entry{
		entry(tr("English", "cat")),
		entry(tr("English", "dog")),
	}, func(e domain.Entry) bool {
		offered = append(offered, e)
		word, _ := e.English()
		return word != "cat"
	})

	require.NoError(t, err)
	assert.Len(t, offered, 2)
	assert.Equal(t, ImportResult{Added: 1, Declined: 1}, result)
	assert.Equal(t, []string{"cat", "dog"}, englishWords(s))
}

func TestEntryStore_Import_SkipsEmptyEntries(t *testing.T) {
	s := New(domain.DefaultLimits())

	result, err := s.Import([]domain.Entry{{}, entry(tr("English", "cat")), {}}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, s.Len())
}

func TestEntryStore_Import_StopsWhenFull(t *testing.T) {
	s := New(domain.Limits{MaxEntries: 2, MaxTranslations: 10})

	result, err := s.Import([]domain.Entry{
		entry(tr("English", "c")),
		entry(tr("English", "b")),
		entry(tr("English", "a")),
		{},
		entry(tr("English", "d")),
	}, nil)

	assert.ErrorIs(t, err, domain.ErrFull)
	assert.Equal(t, ImportResult{Added: 2, Skipped: 2}, result)
	assert.Equal(t, []string{"b", "c"}, englishWords(s))
}

func TestEntryStore_Import_DropsExtraTranslations(t *testing.T) {
	s := New(domain.Limits{MaxEntries: 10, MaxTranslations: 2})

	result, err := s.Import([]domain.Entry{
		entry(tr("English", "cat"), tr("French", "chat"), tr("German", "Katze")),
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Dropped)
	e, err := s.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Len())
	assertInvariants(t, s)
}

func TestEntryStore_Import_DoesNotAliasInput(t *testing.T) {
	parsed := []domain.Entry{entry(tr("French", "chat"), tr("English", "cat"))}
	s := New(domain.DefaultLimits())

	_, err := s.Import(parsed, nil)
	require.NoError(t, err)

	assert.Equal(t, "French", parsed[0].Translations[0].Language)
}
