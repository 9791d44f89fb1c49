package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldfmt/pkg/field"
)

// Info is the record type shared by the package tests.
type Info struct {
	Title string
	Count int
	Ratio float32
	Score float64
	Date  time.Time
}

// DistantPast is the first instant of year one, UTC.
var DistantPast = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// SampleInfo returns the canonical fixture: title "hello", count 5 and a
// date in year one.
func SampleInfo() Info {
	return Info{
		Title: "hello",
		Count: 5,
		Ratio: 0.5,
		Score: 1234.5,
		Date:  DistantPast,
	}
}

// InfoSchema declares the Info fields. "title.count" is the length of the
// title, exposed as a string.
func InfoSchema() field.Fields[Info] {
	return field.Fields[Info]{
		Strings: map[string]func(Info) string{
			"title":       func(i Info) string { return i.Title },
			"title.count": func(i Info) string { return strconv.Itoa(len(i.Title)) },
		},
		Ints: map[string]func(Info) int{
			"count": func(i Info) int { return i.Count },
		},
		Floats: map[string]func(Info) float32{
			"ratio": func(i Info) float32 { return i.Ratio },
		},
		Doubles: map[string]func(Info) float64{
			"score": func(i Info) float64 { return i.Score },
		},
		Dates: map[string]func(Info) time.Time{
			"date": func(i Info) time.Time { return i.Date },
		},
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureOutput runs a render function that writes to an io.Writer and
// returns what it wrote.
func CaptureOutput(t *testing.T, render func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}
