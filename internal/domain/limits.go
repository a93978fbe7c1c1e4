package domain

const (
	// DefaultMaxEntries is the default capacity of the entry store.
	DefaultMaxEntries = 150
	// DefaultMaxTranslations is the default capacity of one entry.
	DefaultMaxTranslations = 10
)

// Limits bounds the size of the entry store and of every entry
type Limits struct {
	MaxEntries      int
	MaxTranslations int
}

// DefaultLimits returns the classic 150 entries of 10 translations
func DefaultLimits() Limits {
	return Limits{
		MaxEntries:      DefaultMaxEntries,
		MaxTranslations: DefaultMaxTranslations,
	}
}

// Normalize replaces non-positive limits with the defaults
func (l Limits) Normalize() Limits {
	if l.MaxEntries <= 0 {
		l.MaxEntries = DefaultMaxEntries
	}
	if l.MaxTranslations <= 0 {
		l.MaxTranslations = DefaultMaxTranslations
	}
	return l
}

// Summary counts what the store holds
type Summary struct {
	Entries      int
	Translations int
	Languages    map[string]int
}
