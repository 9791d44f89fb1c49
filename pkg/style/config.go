package style

import (
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Config carries the locale inputs the style builders depend on.
type Config struct {
	// Locale drives number rendering (grouping, decimal marks, currency)
	// and the names and layouts of date styles.
	Locale language.Tag
	// Location is applied to dates before formatting. Nil keeps the value's
	// own location.
	Location *time.Location
	// Currency overrides the currency derived from Locale.
	Currency currency.Unit
	// DateAliases maps qualifier names to LDML patterns, for patterns the
	// placeholder grammar cannot spell (digits, '-', ':' and spaces end a tag).
	DateAliases map[string]string
}

// Option mutates a Config during construction.
type Option func(*Config)

// DefaultConfig returns en-US numbers with dates rendered in UTC.
func DefaultConfig() Config {
	return Config{
		Locale:   language.AmericanEnglish,
		Location: time.UTC,
	}
}

// WithLocale sets the locale used by number and date styles.
func WithLocale(tag language.Tag) Option {
	return func(cfg *Config) {
		cfg.Locale = tag
	}
}

// WithLocation sets the location dates are converted to before formatting.
func WithLocation(loc *time.Location) Option {
	return func(cfg *Config) {
		cfg.Location = loc
	}
}

// WithCurrency pins the currency used by the currency styles.
func WithCurrency(unit currency.Unit) Option {
	return func(cfg *Config) {
		cfg.Currency = unit
	}
}

// WithDateAlias registers a named date pattern.
func WithDateAlias(name, pattern string) Option {
	return func(cfg *Config) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if cfg.DateAliases == nil {
			cfg.DateAliases = make(map[string]string)
		}
		cfg.DateAliases[name] = pattern
	}
}

// WithDateAliases registers several named date patterns at once.
func WithDateAliases(aliases map[string]string) Option {
	return func(cfg *Config) {
		for name, pattern := range aliases {
			WithDateAlias(name, pattern)(cfg)
		}
	}
}

func (c Config) clone() Config {
	out := c
	if len(c.DateAliases) > 0 {
		out.DateAliases = make(map[string]string, len(c.DateAliases))
		for k, v := range c.DateAliases {
			out.DateAliases[k] = v
		}
	}
	return out
}

func (c Config) currencyUnit() currency.Unit {
	if c.Currency != (currency.Unit{}) {
		return c.Currency
	}
	unit, conf := currency.FromTag(c.Locale)
	if conf == language.No {
		return currency.USD
	}
	return unit
}
