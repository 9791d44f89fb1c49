package fieldfmt_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	fieldfmt "github.com/goliatone/go-fieldfmt"
	"github.com/goliatone/go-fieldfmt/pkg/field"
)

type post struct {
	Title  string
	Views  int
	Posted time.Time
}

func postSchema() field.Fields[post] {
	return field.Fields[post]{
		Strings: map[string]func(post) string{"title": func(p post) string { return p.Title }},
		Ints:    map[string]func(post) int{"views": func(p post) int { return p.Views }},
		Dates:   map[string]func(post) time.Time{"posted": func(p post) time.Time { return p.Posted }},
	}
}

func TestCompileFacade(t *testing.T) {
	t.Parallel()

	tmpl, err := fieldfmt.Compile[post](postSchema(), "$title ($views|d views, $posted|yyyy)")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := tmpl.Render(post{Title: "Launch", Views: 12000, Posted: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)})
	if got != "Launch (12,000 views, 2023)" {
		t.Fatalf("render = %q", got)
	}
}

func TestFacadeErrors(t *testing.T) {
	t.Parallel()

	_, err := fieldfmt.Compile[post](postSchema(), "$author")
	if !errors.Is(err, fieldfmt.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	var unknown *fieldfmt.UnknownFieldError
	if !errors.As(err, &unknown) || unknown.Field != "author" {
		t.Fatalf("expected author, got %v", err)
	}

	if _, err := fieldfmt.Compile[post](postSchema(), "$|d"); !errors.Is(err, fieldfmt.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestFacadeSanitizer(t *testing.T) {
	t.Parallel()

	tmpl := fieldfmt.MustCompile[post](postSchema(), "<h1>$title</h1>", fieldfmt.WithHTMLSanitizer())
	if got := tmpl.Render(post{Title: "<i>x</i>"}); got != "<h1>x</h1>" {
		t.Fatalf("render = %q", got)
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fieldfmt.SetLogger(zap.New(core))
	t.Cleanup(func() { fieldfmt.SetLogger(nil) })

	fieldfmt.MustCompile[post](postSchema(), "$title")
	if logs.FilterMessage("template compiled").Len() != 1 {
		t.Fatalf("expected compile log, got %v", logs.All())
	}
}
