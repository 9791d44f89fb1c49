package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	styles     *style.Styles
	templates  fs.FS
	globalData map[string]any
}

// WithStyles binds the engine's number and date functions to styles.
func WithStyles(styles *style.Styles) Option {
	return func(cfg *config) {
		cfg.styles = styles
	}
}

// WithFS loads named templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders pongo2 templates with the formatting helpers installed.
type Engine struct {
	mu sync.RWMutex

	styles      *style.Styles
	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

// New constructs an Engine. Without WithStyles it uses style.Default().
func New(options ...Option) *Engine {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.styles == nil {
		cfg.styles = style.Default()
	}
	files := cfg.templates
	if files == nil {
		files = emptyFS{}
	}

	RegisterFilters()

	engine := &Engine{
		styles:      cfg.styles,
		templateSet: pongo2.NewSet("fieldfmt", pongo2.NewFSLoader(files)),
		templates:   make(map[string]*pongo2.Template),
	}
	globals := make(pongo2.Context, len(cfg.globalData)+2)
	for key, value := range cfg.globalData {
		if key == "" {
			continue
		}
		globals[key] = value
	}
	globals["number"] = engine.formatNumber
	globals["date"] = engine.formatDate
	engine.templateSet.Globals = globals
	return engine
}

// RenderString parses and renders content.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.templateSet.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}
	return e.execute(tmpl, data, "template string")
}

// RenderTemplate renders a template loaded from the engine's filesystem.
// Parsed templates are cached by name.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.getTemplate(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data, fmt.Sprintf("template %q", name))
}

func (e *Engine) execute(tmpl *pongo2.Template, data map[string]any, what string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", what, err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.templateSet.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

func (e *Engine) formatNumber(value any, qualifier string) (string, error) {
	n, err := toNumber(value)
	if err != nil {
		return "", err
	}
	return e.styles.FormatNumber(style.Q(qualifier), n), nil
}

func (e *Engine) formatDate(value any, qualifier string) (string, error) {
	t, err := toTime(value)
	if err != nil {
		return "", err
	}
	return e.styles.Date(style.Q(qualifier)).FormatDate(t), nil
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
