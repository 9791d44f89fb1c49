package catalog

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-fieldfmt/pkg/field"
	"github.com/goliatone/go-fieldfmt/pkg/style"
	"github.com/goliatone/go-fieldfmt/pkg/template"
)

// ErrUnknownTemplate is returned when a Set has no template by that name.
var ErrUnknownTemplate = errors.New("catalog: unknown template")

// Set holds compiled catalog templates for record type R. It is safe for
// concurrent use.
type Set[R any] struct {
	styles    *style.Styles
	templates map[string]*template.Template[R]
	names     []string
}

// Compile compiles every template in store against schema. The store's
// style settings apply first; options may override them.
func Compile[R any](store *Store, schema field.Schema[R], options ...template.Option) (*Set[R], error) {
	styles, err := store.Styles()
	if err != nil {
		return nil, err
	}

	opts := append([]template.Option{template.WithStyles(styles)}, options...)
	set := &Set[R]{
		styles:    styles,
		templates: make(map[string]*template.Template[R]),
		names:     store.Names(),
	}
	for _, name := range set.names {
		entry, _ := store.Template(name)
		tmpl, err := template.Compile(schema, entry.Text, opts...)
		if err != nil {
			return nil, fmt.Errorf("catalog: template %q (file %s): %w", name, entry.Source, err)
		}
		set.templates[name] = tmpl
	}
	return set, nil
}

// Template returns the compiled template registered under name.
func (s *Set[R]) Template(name string) (*template.Template[R], bool) {
	tmpl, ok := s.templates[name]
	return tmpl, ok
}

// Render renders the named template for rec.
func (s *Set[R]) Render(name string, rec R) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}
	return tmpl.Render(rec), nil
}

// Names lists the compiled template names in sorted order.
func (s *Set[R]) Names() []string {
	return append([]string(nil), s.names...)
}

// Styles returns the Styles instance built from the catalog settings.
func (s *Set[R]) Styles() *style.Styles {
	return s.styles
}
