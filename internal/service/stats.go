package service

import (
	"sort"

	"translator/internal/domain"
	"translator/internal/store"

	"go.uber.org/zap"
)

// StatsService reports what the dictionary holds
type StatsService struct {
	store  *store.EntryStore
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(s *store.EntryStore, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  s,
		logger: logger,
	}
}

// Summary counts entries, translations and translations per language
func (s *StatsService) Summary() domain.Summary {
	summary := s.store.Summary()

	s.logger.Debug("Summary computed",
		zap.Int("entries", summary.Entries),
		zap.Int("translations", summary.Translations),
		zap.Int("languages", len(summary.Languages)),
	)
	return summary
}

// Languages returns the languages counted in summary, in byte order
func (s *StatsService) Languages(summary domain.Summary) []string {
	languages := make([]string, 0, len(summary.Languages))
	for l := range summary.Languages {
		languages = append(languages, l)
	}
	sort.Strings(languages)
	return languages
}
