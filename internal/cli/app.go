package cli

import (
	"fmt"

	"translator/internal/config"
	"translator/internal/repository/textfile"
	"translator/internal/service"
	"translator/internal/store"

	"github.com/gookit/color"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// App holds the services built from the loaded configuration
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Dictionary *service.DictionaryService
	Stats      *service.StatsService
}

// NewApp loads configuration and wires the store, repository and services
func NewApp(flags *Flags, v *viper.Viper) (*App, error) {
	if err := InitConfig(flags.CfgFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	color.Enable = !cfg.NoColor

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	entries := store.New(cfg.Limits)
	repo := textfile.NewEntryRepo(cfg.DataDir)

	logger.Debug("Configuration loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("max_entries", cfg.Limits.MaxEntries),
		zap.Int("max_translations", cfg.Limits.MaxTranslations),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Dictionary: service.NewDictionaryService(entries, repo, logger),
		Stats:      service.NewStatsService(entries, logger),
	}, nil
}

// Close flushes the logger
func (a *App) Close() {
	_ = a.Logger.Sync()
}
