package template

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldfmt/internal/logging"
	"github.com/goliatone/go-fieldfmt/pkg/field"
)

// Template is a compiled template for record type R. It is immutable and
// safe for concurrent use.
type Template[R any] struct {
	source string
	steps  []Step[R]
}

// Compile parses text against schema. Every placeholder is resolved here, so
// a returned template renders without errors.
func Compile[R any](schema field.Schema[R], text string, options ...Option) (*Template[R], error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	logger := logging.Named("template")

	if !needsParse(text) {
		tmpl := &Template[R]{source: text}
		if text != "" {
			tmpl.steps = []Step[R]{Literal[R](text)}
		}
		return tmpl, nil
	}

	resolver := field.NewResolver(schema, cfg.styles, field.WithTransform(cfg.transform()))
	steps, err := newParser(resolver).parse(text)
	if err != nil {
		logger.Debug("template compile failed", zap.String("source", text), zap.Error(err))
		return nil, err
	}

	tmpl := &Template[R]{source: text, steps: steps}
	logger.Debug("template compiled",
		zap.String("source", text),
		zap.Int("steps", len(steps)),
		zap.Strings("fields", tmpl.Fields()),
	)
	return tmpl, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile[R any](schema field.Schema[R], text string, options ...Option) *Template[R] {
	tmpl, err := Compile(schema, text, options...)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Render produces the output for rec.
func (t *Template[R]) Render(rec R) string {
	switch len(t.steps) {
	case 0:
		return ""
	case 1:
		return t.steps[0].Render(rec)
	}
	var b strings.Builder
	for _, step := range t.steps {
		b.WriteString(step.Render(rec))
	}
	return b.String()
}

// Execute writes the output for rec to w.
func (t *Template[R]) Execute(w io.Writer, rec R) error {
	_, err := io.WriteString(w, t.Render(rec))
	return err
}

// Func returns Render as a plain function value.
func (t *Template[R]) Func() func(R) string {
	return t.Render
}

// Steps returns a copy of the compiled steps.
func (t *Template[R]) Steps() []Step[R] {
	return append([]Step[R](nil), t.steps...)
}

// Source returns the text the template was compiled from.
func (t *Template[R]) Source() string {
	return t.source
}

// Fields lists the placeholder references in order of appearance.
func (t *Template[R]) Fields() []string {
	var refs []string
	for _, step := range t.steps {
		if step.kind == StepExtract {
			refs = append(refs, step.ref)
		}
	}
	return refs
}
