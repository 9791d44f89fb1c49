package ldml

import (
	"time"

	"github.com/go-playground/locales/en"
)

// Names supplies month and weekday names. Every locales.Translator from
// github.com/go-playground/locales satisfies it.
type Names interface {
	MonthAbbreviated(month time.Month) string
	MonthNarrow(month time.Month) string
	MonthWide(month time.Month) string
	WeekdayAbbreviated(weekday time.Weekday) string
	WeekdayNarrow(weekday time.Weekday) string
	WeekdayShort(weekday time.Weekday) string
	WeekdayWide(weekday time.Weekday) string
}

var english Names = en.New()

var quarterNames = [...]string{
	"1st quarter", "2nd quarter", "3rd quarter", "4th quarter",
}
