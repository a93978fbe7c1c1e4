package config

import (
	"fmt"
	"strings"

	"translator/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TRANSLATOR"

// Configuration keys, shared with the command-line flag bindings.
const (
	KeyDataDir         = "data_dir"
	KeyLogLevel        = "log_level"
	KeyLogFile         = "log_file"
	KeyNoColor         = "no_color"
	KeyMaxEntries      = "max_entries"
	KeyMaxTranslations = "max_translations"
)

// Config holds all application configuration
type Config struct {
	DataDir string
	NoColor bool
	Log     LogConfig
	Limits  domain.Limits
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	File  string
}

// LoadEnvFiles loads .env style files into the process environment.
// Without arguments it tries ./.env and ignores a missing file.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load %s: %w", strings.Join(files, ", "), err)
	}
	return nil
}

// SetDefaults registers defaults and environment lookup on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, ".")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "stderr")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyMaxEntries, domain.DefaultMaxEntries)
	v.SetDefault(KeyMaxTranslations, domain.DefaultMaxTranslations)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

// Load reads configuration from v (flags, environment, defaults)
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		DataDir: v.GetString(KeyDataDir),
		NoColor: v.GetBool(KeyNoColor),
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		Limits: domain.Limits{
			MaxEntries:      v.GetInt(KeyMaxEntries),
			MaxTranslations: v.GetInt(KeyMaxTranslations),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: %s is required", KeyDataDir)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	if c.Log.File == "" {
		return fmt.Errorf("config: %s is required", KeyLogFile)
	}
	if c.Limits.MaxEntries <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", KeyMaxEntries, c.Limits.MaxEntries)
	}
	if c.Limits.MaxTranslations <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", KeyMaxTranslations, c.Limits.MaxTranslations)
	}
	return nil
}
