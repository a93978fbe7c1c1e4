package cli

import (
	"translator/internal/domain"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DataDir  string
	NoColor  bool
	LogLevel string
	LogFile  string

	// Limits
	MaxEntries      int
	MaxTranslations int

	// search flags
	Language string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DataDir:         ".",
		LogLevel:        "warn",
		LogFile:         "stderr",
		MaxEntries:      domain.DefaultMaxEntries,
		MaxTranslations: domain.DefaultMaxTranslations,
	}
}
