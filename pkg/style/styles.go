package style

import "sync"

// Styles owns the two formatter caches, one for dates and one for numbers,
// bound to a single Config. A Styles value is safe for concurrent use.
type Styles struct {
	cfg     Config
	dates   *Cache[DateFormatter]
	numbers *Cache[NumberFormatter]
}

// New builds a Styles instance with fresh, empty caches.
func New(options ...Option) *Styles {
	cfg := DefaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	cfg = cfg.clone()

	s := &Styles{cfg: cfg}
	s.dates = NewCache("date", func(q Qualifier) DateFormatter {
		return BuildDateFormatter(s.cfg, q)
	})
	s.numbers = NewCache("number", func(q Qualifier) NumberFormatter {
		return BuildNumberFormatter(s.cfg, q)
	})
	return s
}

var (
	defaultOnce   sync.Once
	defaultStyles *Styles
)

// Default returns the process-wide Styles used when no instance is injected.
func Default() *Styles {
	defaultOnce.Do(func() {
		defaultStyles = New()
	})
	return defaultStyles
}

// Date returns the cached date formatter for q.
func (s *Styles) Date(q Qualifier) DateFormatter {
	return s.dates.Get(q)
}

// Number returns the cached number formatter for q.
func (s *Styles) Number(q Qualifier) NumberFormatter {
	return s.numbers.Get(q)
}

// FormatNumber renders n with the formatter for q, falling back to the
// default textual representation when the formatter declines.
func (s *Styles) FormatNumber(q Qualifier, n Number) string {
	if out, ok := s.Number(q).FormatNumber(n); ok {
		return out
	}
	return n.String()
}

// Config returns a copy of the configuration.
func (s *Styles) Config() Config {
	return s.cfg.clone()
}

// DateCache exposes the date formatter cache.
func (s *Styles) DateCache() *Cache[DateFormatter] {
	return s.dates
}

// NumberCache exposes the number formatter cache.
func (s *Styles) NumberCache() *Cache[NumberFormatter] {
	return s.numbers
}
