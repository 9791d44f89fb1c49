// Package ldml formats time.Time values with Unicode LDML date patterns such
// as `yyyy-MM-dd'T'HH:mm:ss.SSSS'Z'` or `EEEE, MMMM d, y`.
//
// Patterns are never rejected. Letters without a field meaning are written
// verbatim and an unterminated quote runs to the end of the pattern, so a bad
// pattern degrades to literal output instead of an error. Month and weekday
// names come from a Names provider (English unless Localize is used); era,
// quarter and day period names are English.
package ldml

import (
	"strings"
	"time"
)

// Pattern is a compiled LDML date pattern. It is immutable and safe for
// concurrent use.
type Pattern struct {
	source string
	parts  []part
	names  Names
}

// part is either a literal run (letter == 0) or a repeated pattern letter.
type part struct {
	letter rune
	count  int
	text   string
}

// Compile splits pattern into literal runs and field runs.
func Compile(pattern string) *Pattern {
	p := &Pattern{source: pattern, names: english}
	runes := []rune(pattern)

	var lit strings.Builder
	flush := func() {
		if lit.Len() == 0 {
			return
		}
		p.parts = append(p.parts, part{text: lit.String()})
		lit.Reset()
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			i++
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						lit.WriteRune('\'')
						i += 2
						continue
					}
					i++
					break
				}
				lit.WriteRune(runes[i])
				i++
			}
		case isPatternLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			flush()
			p.parts = append(p.parts, part{letter: r, count: j - i})
			i = j
		default:
			lit.WriteRune(r)
			i++
		}
	}
	flush()

	return p
}

// Source returns the pattern text the Pattern was compiled from.
func (p *Pattern) Source() string {
	if p == nil {
		return ""
	}
	return p.source
}

// Localize returns a copy of p that takes month and weekday names from names.
// A nil names keeps English.
func (p *Pattern) Localize(names Names) *Pattern {
	if p == nil {
		return nil
	}
	if names == nil {
		names = english
	}
	out := *p
	out.names = names
	return &out
}

// Format renders t.
func (p *Pattern) Format(t time.Time) string {
	return string(p.Append(nil, t))
}

// Append renders t and appends the result to dst.
func (p *Pattern) Append(dst []byte, t time.Time) []byte {
	if p == nil {
		return dst
	}
	for _, pt := range p.parts {
		if pt.letter == 0 {
			dst = append(dst, pt.text...)
			continue
		}
		dst = appendField(dst, p.names, pt.letter, pt.count, t)
	}
	return dst
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func appendField(dst []byte, names Names, letter rune, count int, t time.Time) []byte {
	switch letter {
	case 'G':
		return appendEra(dst, count, t.Year())
	case 'y':
		return appendYear(dst, count, eraYear(t.Year()))
	case 'Y':
		year, _ := t.ISOWeek()
		return appendYear(dst, count, eraYear(year))
	case 'u':
		return appendInt(dst, t.Year(), count)
	case 'Q', 'q':
		return appendQuarter(dst, count, (int(t.Month())-1)/3+1)
	case 'M', 'L':
		return appendMonth(dst, names, count, t.Month())
	case 'w':
		_, week := t.ISOWeek()
		return appendInt(dst, week, min(count, 2))
	case 'W':
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return appendInt(dst, (t.Day()+int(first.Weekday())-1)/7+1, 1)
	case 'd':
		return appendInt(dst, t.Day(), min(count, 2))
	case 'D':
		return appendInt(dst, t.YearDay(), count)
	case 'F':
		return appendInt(dst, (t.Day()-1)/7+1, 1)
	case 'E':
		return appendWeekday(dst, names, count, t.Weekday())
	case 'e', 'c':
		if count <= 2 {
			return appendInt(dst, int(t.Weekday())+1, count)
		}
		return appendWeekday(dst, names, count, t.Weekday())
	case 'a', 'b', 'B':
		if t.Hour() < 12 {
			return append(dst, "AM"...)
		}
		return append(dst, "PM"...)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return appendInt(dst, hour, min(count, 2))
	case 'H':
		return appendInt(dst, t.Hour(), min(count, 2))
	case 'K':
		return appendInt(dst, t.Hour()%12, min(count, 2))
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return appendInt(dst, hour, min(count, 2))
	case 'm':
		return appendInt(dst, t.Minute(), min(count, 2))
	case 's':
		return appendInt(dst, t.Second(), min(count, 2))
	case 'S':
		return appendFraction(dst, count, t.Nanosecond())
	case 'A':
		ms := ((t.Hour()*60+t.Minute())*60+t.Second())*1000 + t.Nanosecond()/int(time.Millisecond)
		return appendInt(dst, ms, count)
	case 'z':
		if count < 4 {
			return append(dst, shortZone(t)...)
		}
		return append(dst, longZone(t)...)
	case 'v':
		if count < 4 {
			return append(dst, shortZone(t)...)
		}
		return append(dst, longZone(t)...)
	case 'V':
		if count >= 2 {
			return append(dst, t.Location().String()...)
		}
		return append(dst, shortZone(t)...)
	case 'Z':
		_, offset := t.Zone()
		switch {
		case count <= 3:
			return appendOffset(dst, offset, false, true, false)
		case count == 4:
			return append(dst, gmtOffset(offset, true)...)
		default:
			return appendOffset(dst, offset, true, true, true)
		}
	case 'O':
		_, offset := t.Zone()
		return append(dst, gmtOffset(offset, count >= 4)...)
	case 'X', 'x':
		_, offset := t.Zone()
		zulu := letter == 'X'
		switch count {
		case 1:
			return appendShortOffset(dst, offset, zulu)
		case 2, 4:
			return appendOffset(dst, offset, false, true, zulu)
		default:
			return appendOffset(dst, offset, true, true, zulu)
		}
	}

	for i := 0; i < count; i++ {
		dst = append(dst, string(letter)...)
	}
	return dst
}

func eraYear(year int) int {
	if year <= 0 {
		return 1 - year
	}
	return year
}

func appendEra(dst []byte, count, year int) []byte {
	ad := year > 0
	switch {
	case count == 4 && ad:
		return append(dst, "Anno Domini"...)
	case count == 4:
		return append(dst, "Before Christ"...)
	case count == 5 && ad:
		return append(dst, 'A')
	case count == 5:
		return append(dst, 'B')
	case ad:
		return append(dst, "AD"...)
	default:
		return append(dst, "BC"...)
	}
}

func appendYear(dst []byte, count, year int) []byte {
	if count == 2 {
		return appendInt(dst, year%100, 2)
	}
	return appendInt(dst, year, count)
}

func appendQuarter(dst []byte, count, quarter int) []byte {
	switch count {
	case 3:
		dst = append(dst, 'Q')
		return appendInt(dst, quarter, 1)
	case 4:
		return append(dst, quarterNames[quarter-1]...)
	case 5:
		return appendInt(dst, quarter, 1)
	default:
		return appendInt(dst, quarter, count)
	}
}

func appendMonth(dst []byte, names Names, count int, month time.Month) []byte {
	switch count {
	case 1, 2:
		return appendInt(dst, int(month), count)
	case 3:
		return append(dst, names.MonthAbbreviated(month)...)
	case 4:
		return append(dst, names.MonthWide(month)...)
	default:
		return append(dst, names.MonthNarrow(month)...)
	}
}

func appendWeekday(dst []byte, names Names, count int, day time.Weekday) []byte {
	switch count {
	case 4:
		return append(dst, names.WeekdayWide(day)...)
	case 5:
		return append(dst, names.WeekdayNarrow(day)...)
	case 6:
		return append(dst, names.WeekdayShort(day)...)
	default:
		return append(dst, names.WeekdayAbbreviated(day)...)
	}
}

func appendFraction(dst []byte, count, nanos int) []byte {
	var digits [9]byte
	for i := 8; i >= 0; i-- {
		digits[i] = byte('0' + nanos%10)
		nanos /= 10
	}
	if count <= 9 {
		return append(dst, digits[:count]...)
	}
	dst = append(dst, digits[:]...)
	for i := 9; i < count; i++ {
		dst = append(dst, '0')
	}
	return dst
}

// appendInt writes v left-padded with zeros to at least width digits.
func appendInt(dst []byte, v, width int) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	for pad := width - (len(buf) - i); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, buf[i:]...)
}
