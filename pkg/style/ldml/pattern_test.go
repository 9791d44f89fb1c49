package ldml_test

import (
	"testing"
	"time"

	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/fr"

	"github.com/goliatone/go-fieldfmt/pkg/style/ldml"
)

func TestPatternFormat(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, time.March, 5, 14, 7, 9, 123456789, time.UTC)

	cases := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd'T'HH:mm:ss.SSSS'Z'", "2024-03-05T14:07:09.1234Z"},
		{"y", "2024"},
		{"yy", "24"},
		{"yyyyy", "02024"},
		{"MMM d, y", "Mar 5, 2024"},
		{"EEEE, MMMM d", "Tuesday, March 5"},
		{"EEEEE MMMMM", "T M"},
		{"h:mm a", "2:07 PM"},
		{"K k H", "2 14 14"},
		{"''yy''", "'24'"},
		{"'o''clock' H", "o'clock 14"},
		{"D", "65"},
		{"Q QQQ QQQQ", "1 Q1 1st quarter"},
		{"G GGGG", "AD Anno Domini"},
		{"z zzzz", "UTC Coordinated Universal Time"},
		{"Z ZZZZ ZZZZZ", "+0000 GMT Z"},
		{"xxx XXX", "+00:00 Z"},
		{"SSSSSSSSSSS", "12345678900"},
		{"'unterminated", "unterminated"},
		{"J", "J"},
		{"", ""},
	}

	for _, tc := range cases {
		got := ldml.Compile(tc.pattern).Format(stamp)
		if got != tc.want {
			t.Errorf("Compile(%q).Format = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestPatternEarlyYears(t *testing.T) {
	t.Parallel()

	first := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := ldml.Compile("y").Format(first); got != "1" {
		t.Fatalf("year one = %q, want 1", got)
	}

	zero := time.Date(0, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := ldml.Compile("y G").Format(zero); got != "1 BC" {
		t.Fatalf("year zero = %q, want 1 BC", got)
	}
}

func TestPatternMidnightHours(t *testing.T) {
	t.Parallel()

	midnight := time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC)
	if got := ldml.Compile("h k K a").Format(midnight); got != "12 24 0 AM" {
		t.Fatalf("midnight hours = %q", got)
	}
}

func TestPatternFixedOffset(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("", -8*3600)
	stamp := time.Date(2024, time.March, 5, 6, 0, 0, 0, loc)

	cases := map[string]string{
		"Z":     "-0800",
		"ZZZZZ": "-08:00",
		"O":     "GMT-8",
		"OOOO":  "GMT-08:00",
		"z":     "GMT-8",
		"X":     "-08",
		"XX":    "-0800",
	}
	for pattern, want := range cases {
		if got := ldml.Compile(pattern).Format(stamp); got != want {
			t.Errorf("Compile(%q).Format = %q, want %q", pattern, got, want)
		}
	}
}

func TestPatternSource(t *testing.T) {
	t.Parallel()

	p := ldml.Compile("MMM d")
	if p.Source() != "MMM d" {
		t.Fatalf("source = %q", p.Source())
	}
}

func TestPatternLocalize(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	p := ldml.Compile("EEEE d. MMMM y, EEE MMM")

	if got := p.Localize(de.New()).Format(stamp); got != "Dienstag 5. März 2024, Di. März" {
		t.Fatalf("german = %q", got)
	}
	if got := p.Localize(fr.New()).Format(stamp); got != "mardi 5. mars 2024, mar. mars" {
		t.Fatalf("french = %q", got)
	}
	if got := p.Localize(nil).Format(stamp); got != "Tuesday 5. March 2024, Tue Mar" {
		t.Fatalf("nil names should keep English, got %q", got)
	}
	if got := p.Format(stamp); got != "Tuesday 5. March 2024, Tue Mar" {
		t.Fatalf("Localize must not mutate the receiver, got %q", got)
	}
	if p.Localize(de.New()).Source() != p.Source() {
		t.Fatalf("Localize must keep the source pattern")
	}
}
