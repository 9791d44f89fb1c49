package style

import (
	"math"
	"strings"

	"golang.org/x/text/language"
)

var (
	smallNumbers = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensNames = [...]string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scaleNames = [...]string{
		"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	}
)

// spellOut renders English cardinal words. Other languages report false so
// the caller falls back to digits.
func spellOut(tag language.Tag, n Number) (string, bool) {
	if base, _ := tag.Base(); base.String() != "en" {
		return "", false
	}
	if i, ok := n.Int64(); ok {
		return spellInt(i), true
	}

	v := n.Float()
	if math.Abs(v) >= 1e18 {
		return "", false
	}
	text := strings.TrimPrefix(n.String(), "-")
	whole, frac, _ := strings.Cut(text, ".")

	var b strings.Builder
	if v < 0 {
		b.WriteString("minus ")
	}
	b.WriteString(spellUint(parseDigits(whole)))
	if frac != "" {
		b.WriteString(" point")
		for _, d := range frac {
			b.WriteByte(' ')
			b.WriteString(smallNumbers[d-'0'])
		}
	}
	return b.String(), true
}

func spellInt(v int64) string {
	if v < 0 {
		return "minus " + spellUint(uint64(-(v+1))+1)
	}
	return spellUint(uint64(v))
}

func spellUint(v uint64) string {
	if v == 0 {
		return smallNumbers[0]
	}

	var groups []string
	for scale := 0; v > 0; scale++ {
		chunk := int(v % 1000)
		v /= 1000
		if chunk == 0 {
			continue
		}
		words := spellHundreds(chunk)
		if scaleNames[scale] != "" {
			words += " " + scaleNames[scale]
		}
		groups = append(groups, words)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, " ")
}

func spellHundreds(v int) string {
	var parts []string
	if v >= 100 {
		parts = append(parts, smallNumbers[v/100]+" hundred")
		v %= 100
	}
	switch {
	case v == 0:
	case v < 20:
		parts = append(parts, smallNumbers[v])
	case v%10 == 0:
		parts = append(parts, tensNames[v/10])
	default:
		parts = append(parts, tensNames[v/10]+"-"+smallNumbers[v%10])
	}
	return strings.Join(parts, " ")
}

func parseDigits(s string) uint64 {
	var v uint64
	for _, r := range s {
		v = v*10 + uint64(r-'0')
	}
	return v
}
