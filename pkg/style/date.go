package style

import (
	"time"

	"github.com/go-playground/locales"

	"github.com/goliatone/go-fieldfmt/pkg/style/ldml"
)

// DefaultDatePattern renders dates when a placeholder has no qualifier.
const DefaultDatePattern = "yyyy-MM-dd'T'HH:mm:ss.SSSS'Z'"

// QualifierISO8601 selects the strict ISO-8601 formatter.
const QualifierISO8601 = "iso8601"

// DateFormatter renders a date. Implementations are immutable.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// DateTimeSeparator joins the date and time halves of a named style.
const DateTimeSeparator = ", "

type dateStyle struct {
	date func(locales.Translator, time.Time) string
	time func(locales.Translator, time.Time) string
}

var dateStyles = map[string]dateStyle{
	"short":  {locales.Translator.FmtDateShort, locales.Translator.FmtTimeShort},
	"medium": {locales.Translator.FmtDateMedium, locales.Translator.FmtTimeMedium},
	"long":   {locales.Translator.FmtDateLong, locales.Translator.FmtTimeLong},
	"full":   {locales.Translator.FmtDateFull, locales.Translator.FmtTimeFull},
}

// BuildDateFormatter maps a qualifier to a date formatter:
//
//   - absent: DefaultDatePattern
//   - "iso8601": RFC 3339 in UTC
//   - "short", "medium", "long", "full": the locale's date and time styles
//   - a registered alias: the aliased pattern
//   - anything else: the qualifier itself, read as an LDML pattern
//
// Styles and pattern month/weekday names follow cfg.Locale.
func BuildDateFormatter(cfg Config, q Qualifier) DateFormatter {
	name, ok := q.Value()
	if !ok {
		return newPatternDateFormatter(DefaultDatePattern, cfg.Location, nil)
	}
	if name == QualifierISO8601 {
		return &isoDateFormatter{layout: time.RFC3339}
	}

	tr := translatorFor(cfg.Locale)
	if style, ok := dateStyles[name]; ok {
		return &styleDateFormatter{style: style, tr: tr, loc: cfg.Location}
	}
	if pattern, ok := cfg.DateAliases[name]; ok {
		return newPatternDateFormatter(pattern, cfg.Location, tr)
	}
	return newPatternDateFormatter(name, cfg.Location, tr)
}

type styleDateFormatter struct {
	style dateStyle
	tr    locales.Translator
	loc   *time.Location
}

func (f *styleDateFormatter) FormatDate(t time.Time) string {
	if f.loc != nil {
		t = t.In(f.loc)
	}
	return f.style.date(f.tr, t) + DateTimeSeparator + f.style.time(f.tr, t)
}

type patternDateFormatter struct {
	pattern *ldml.Pattern
	loc     *time.Location
}

func newPatternDateFormatter(pattern string, loc *time.Location, names ldml.Names) *patternDateFormatter {
	return &patternDateFormatter{
		pattern: ldml.Compile(pattern).Localize(names),
		loc:     loc,
	}
}

func (f *patternDateFormatter) FormatDate(t time.Time) string {
	if f.loc != nil {
		t = t.In(f.loc)
	}
	return f.pattern.Format(t)
}

// Pattern returns the LDML pattern backing the formatter.
func (f *patternDateFormatter) Pattern() string {
	return f.pattern.Source()
}

type isoDateFormatter struct {
	layout string
}

func (f *isoDateFormatter) FormatDate(t time.Time) string {
	return t.UTC().Format(f.layout)
}
