package style

import (
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberStyle enumerates the number presentation styles.
type NumberStyle int

const (
	StyleNone NumberStyle = iota
	StyleDecimal
	StyleCurrency
	StylePercent
	StyleScientific
	StyleSpellOut
	StyleOrdinal
	StyleCurrencyISOCode
	StyleCurrencyPlural
	StyleCurrencyAccounting
)

var numberStyleCodes = map[string]NumberStyle{
	"d":    StyleDecimal,
	"c":    StyleCurrency,
	"pct":  StylePercent,
	"sci":  StyleScientific,
	"so":   StyleSpellOut,
	"ord":  StyleOrdinal,
	"ciso": StyleCurrencyISOCode,
	"cpl":  StyleCurrencyPlural,
	"cac":  StyleCurrencyAccounting,
}

// ParseNumberStyle resolves a qualifier code such as "pct" to its style.
func ParseNumberStyle(code string) (NumberStyle, bool) {
	s, ok := numberStyleCodes[code]
	return s, ok
}

func (s NumberStyle) String() string {
	switch s {
	case StyleDecimal:
		return "decimal"
	case StyleCurrency:
		return "currency"
	case StylePercent:
		return "percent"
	case StyleScientific:
		return "scientific"
	case StyleSpellOut:
		return "spell-out"
	case StyleOrdinal:
		return "ordinal"
	case StyleCurrencyISOCode:
		return "currency-iso-code"
	case StyleCurrencyPlural:
		return "currency-plural"
	case StyleCurrencyAccounting:
		return "currency-accounting"
	default:
		return "none"
	}
}

// NumberFormatter renders a number. The boolean result is false when the
// formatter cannot render the value; callers then fall back to n.String().
type NumberFormatter interface {
	FormatNumber(n Number) (string, bool)
}

// BuildNumberFormatter maps a qualifier to a number formatter. Unknown codes
// and the absent qualifier produce the unstyled formatter.
func BuildNumberFormatter(cfg Config, q Qualifier) NumberFormatter {
	style := StyleNone
	if name, ok := q.Value(); ok {
		if parsed, ok := ParseNumberStyle(name); ok {
			style = parsed
		}
	}
	return &numberFormatter{
		style:   style,
		tag:     cfg.Locale,
		printer: message.NewPrinter(cfg.Locale),
		unit:    cfg.currencyUnit(),
	}
}

type numberFormatter struct {
	style   NumberStyle
	tag     language.Tag
	printer *message.Printer
	unit    currency.Unit
}

// Style returns the configured style.
func (f *numberFormatter) Style() NumberStyle {
	return f.style
}

func (f *numberFormatter) FormatNumber(n Number) (string, bool) {
	if f.style == StyleNone {
		return n.String(), true
	}
	if !n.IsFinite() {
		return "", false
	}

	switch f.style {
	case StyleDecimal:
		return f.printer.Sprint(number.Decimal(n.Value())), true
	case StylePercent:
		return f.printer.Sprint(number.Percent(n.Value())), true
	case StyleScientific:
		return f.printer.Sprint(number.Scientific(n.Value())), true
	case StyleSpellOut:
		return spellOut(f.tag, n)
	case StyleOrdinal:
		return ordinal(n)
	default:
		return f.formatCurrency(n), true
	}
}

func (f *numberFormatter) formatCurrency(n Number) string {
	v := n.Float()
	kind := currency.Standard
	if f.style == StyleCurrencyAccounting {
		kind = currency.Accounting
	}
	scale, _ := kind.Rounding(f.unit)
	amount := f.printer.Sprint(number.Decimal(math.Abs(v),
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale)))

	var out string
	switch f.style {
	case StyleCurrencyISOCode:
		out = f.unit.String() + " " + amount
	case StyleCurrencyPlural:
		out = amount + " " + currencyDisplayName(f.unit, math.Abs(v) == 1)
	default:
		out = f.printer.Sprint(currency.Symbol(f.unit)) + amount
	}

	if v >= 0 {
		return out
	}
	if f.style == StyleCurrencyAccounting {
		return "(" + out + ")"
	}
	return "-" + out
}

func ordinal(n Number) (string, bool) {
	i, ok := n.Int64()
	if !ok {
		rounded := math.Round(n.Float())
		if rounded < math.MinInt64 || rounded >= math.MaxInt64 {
			return "", false
		}
		i = int64(rounded)
	}
	if i > math.MaxInt || i < math.MinInt {
		return "", false
	}
	return humanize.Ordinal(int(i)), true
}
