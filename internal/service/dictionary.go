package service

import (
	"fmt"

	"translator/internal/domain"
	"translator/internal/repository"
	"translator/internal/store"

	"go.uber.org/zap"
)

// DictionaryService handles entry-related business logic
type DictionaryService struct {
	store     *store.EntryStore
	entryRepo repository.EntryRepository
	logger    *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(s *store.EntryStore, entryRepo repository.EntryRepository, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{
		store:     s,
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// Len returns the number of stored entries
func (s *DictionaryService) Len() int {
	return s.store.Len()
}

// Limits returns the store capacities
func (s *DictionaryService) Limits() domain.Limits {
	return s.store.Limits()
}

// Entry returns a copy of the entry at index
func (s *DictionaryService) Entry(index int) (domain.Entry, error) {
	return s.store.Entry(index)
}

// Duplicates returns how many entries already hold first
func (s *DictionaryService) Duplicates(first domain.Translation) int {
	return s.store.MatchCount(first)
}

// AddEntry stores a new entry made of first
func (s *DictionaryService) AddEntry(first domain.Translation) error {
	if err := s.store.AddEntry(first); err != nil {
		s.logger.Warn("Failed to add entry", zap.String("translation", first.String()), zap.Error(err))
		return fmt.Errorf("add entry: %w", err)
	}

	s.logger.Info("Entry added",
		zap.String("language", first.Language),
		zap.String("word", first.Word),
		zap.Int("entries", s.store.Len()),
	)
	return nil
}

// AddTranslation adds t to the entry at index and returns the entry's new index
func (s *DictionaryService) AddTranslation(index int, t domain.Translation) (int, error) {
	newIndex, err := s.store.AddTranslation(index, t)
	if err != nil {
		s.logger.Warn("Failed to add translation",
			zap.Int("entry_index", index),
			zap.String("translation", t.String()),
			zap.Error(err),
		)
		return store.NotFound, fmt.Errorf("add translation: %w", err)
	}

	s.logger.Info("Translation added",
		zap.Int("entry_index", newIndex),
		zap.String("language", t.Language),
		zap.String("word", t.Word),
	)
	return newIndex, nil
}

// DeleteEntry removes the entry at index
func (s *DictionaryService) DeleteEntry(index int) error {
	if s.store.IsEmpty() {
		return domain.ErrNoEntries
	}
	if err := s.store.DeleteEntry(index); err != nil {
		s.logger.Warn("Failed to delete entry", zap.Int("entry_index", index), zap.Error(err))
		return fmt.Errorf("delete entry: %w", err)
	}

	s.logger.Info("Entry deleted", zap.Int("entry_index", index), zap.Int("entries", s.store.Len()))
	return nil
}

// DeleteTranslation removes one translation and returns the entry's new
// index, or store.NotFound when the whole entry went with it.
func (s *DictionaryService) DeleteTranslation(entryIndex, translationIndex int) (int, error) {
	if s.store.IsEmpty() {
		return store.NotFound, domain.ErrNoEntries
	}
	newIndex, err := s.store.DeleteTranslation(entryIndex, translationIndex)
	if err != nil {
		s.logger.Warn("Failed to delete translation",
			zap.Int("entry_index", entryIndex),
			zap.Int("translation_index", translationIndex),
			zap.Error(err),
		)
		return store.NotFound, fmt.Errorf("delete translation: %w", err)
	}

	s.logger.Info("Translation deleted",
		zap.Int("entry_index", entryIndex),
		zap.Int("translation_index", translationIndex),
		zap.Bool("entry_removed", newIndex == store.NotFound),
	)
	return newIndex, nil
}

// Search returns how many entries match q
func (s *DictionaryService) Search(q domain.Translation) (int, error) {
	if s.store.IsEmpty() {
		return 0, domain.ErrNoEntries
	}

	count := s.store.MatchCount(q)
	s.logger.Debug("Search",
		zap.String("language", q.Language),
		zap.String("word", q.Word),
		zap.Int("matches", count),
	)
	if count == 0 {
		return 0, domain.ErrNoMatch
	}
	return count, nil
}

// MatchAt returns the n-th entry matching q, counting from 1
func (s *DictionaryService) MatchAt(q domain.Translation, n int) (int, domain.Entry, error) {
	index := s.store.MatchIndexAt(q, n)
	if index == store.NotFound {
		return store.NotFound, domain.Entry{}, domain.ErrNoMatch
	}

	entry, err := s.store.Entry(index)
	if err != nil {
		return store.NotFound, domain.Entry{}, err
	}
	return index, entry, nil
}

// Export writes every entry to the file named name
func (s *DictionaryService) Export(name string) (string, error) {
	if s.store.IsEmpty() {
		return "", domain.ErrNoEntries
	}

	path, err := s.entryRepo.Save(name, s.store.Entries())
	if err != nil {
		s.logger.Error("Failed to export entries", zap.String("name", name), zap.Error(err))
		return "", fmt.Errorf("export entries: %w", err)
	}

	s.logger.Info("Entries exported", zap.String("path", path), zap.Int("entries", s.store.Len()))
	return path, nil
}

// Import reads the file named name and adds its entries, asking confirm
// about each one when the store already holds entries.
func (s *DictionaryService) Import(name string, confirm store.ConfirmFunc) (store.ImportResult, error) {
	parsed, err := s.entryRepo.Load(name)
	if err != nil {
		s.logger.Error("Failed to import entries", zap.String("name", name), zap.Error(err))
		return store.ImportResult{}, fmt.Errorf("import entries: %w", err)
	}

	result, err := s.store.Import(parsed, confirm)
	fields := []zap.Field{
		zap.String("name", name),
		zap.Int("parsed", len(parsed)),
		zap.Int("added", result.Added),
		zap.Int("declined", result.Declined),
		zap.Int("skipped", result.Skipped),
		zap.Int("dropped_translations", result.Dropped),
	}
	if err != nil {
		s.logger.Warn("Import stopped early", append(fields, zap.Error(err))...)
		return result, fmt.Errorf("import entries: %w", err)
	}

	s.logger.Info("Entries imported", fields...)
	return result, nil
}

// Translate returns the words in target for the entries matching source
func (s *DictionaryService) Translate(source domain.Translation, target string) ([]string, error) {
	if s.store.IsEmpty() {
		return nil, domain.ErrNoEntries
	}

	words := s.store.Translate(source, target)
	if len(words) == 0 {
		return nil, domain.ErrNoMatch
	}
	return words, nil
}

// Reset discards every entry
func (s *DictionaryService) Reset() {
	s.store.Clear()
	s.logger.Info("Entries cleared")
}
