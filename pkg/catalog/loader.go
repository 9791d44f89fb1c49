package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

// LoadFS walks the provided filesystem and parses JSON/YAML catalog files.
// When fsys is nil or no catalog files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		return store.merge(doc, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse reads a single catalog document. source names it in errors.
func Parse(data []byte, source string) (*Store, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	store := newStore()
	if err := store.merge(doc, source); err != nil {
		return nil, err
	}
	return store, nil
}

func newStore() *Store {
	return &Store{templates: make(map[string]Entry)}
}

// Template returns the entry registered under name.
func (s *Store) Template(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.templates[name]
	return entry, ok
}

// Names lists template names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any templates.
func (s *Store) Empty() bool {
	return s == nil || len(s.templates) == 0
}

// Settings returns a copy of the merged style settings.
func (s *Store) Settings() Settings {
	if s == nil {
		return Settings{}
	}
	out := s.settings
	out.DateAliases = cloneAliases(s.settings.DateAliases)
	return out
}

// StyleOptions converts the settings to style options.
func (s *Store) StyleOptions() ([]style.Option, error) {
	settings := s.Settings()
	var opts []style.Option

	if settings.Locale != "" {
		tag, err := language.Parse(settings.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog: locale %q: %w", settings.Locale, err)
		}
		opts = append(opts, style.WithLocale(tag))
	}
	if settings.Timezone != "" {
		loc, err := time.LoadLocation(settings.Timezone)
		if err != nil {
			return nil, fmt.Errorf("catalog: timezone %q: %w", settings.Timezone, err)
		}
		opts = append(opts, style.WithLocation(loc))
	}
	if settings.Currency != "" {
		unit, err := currency.ParseISO(settings.Currency)
		if err != nil {
			return nil, fmt.Errorf("catalog: currency %q: %w", settings.Currency, err)
		}
		opts = append(opts, style.WithCurrency(unit))
	}
	if len(settings.DateAliases) > 0 {
		opts = append(opts, style.WithDateAliases(settings.DateAliases))
	}
	return opts, nil
}

// Styles builds a Styles instance from the settings.
func (s *Store) Styles() (*style.Styles, error) {
	opts, err := s.StyleOptions()
	if err != nil {
		return nil, err
	}
	return style.New(opts...), nil
}

func (s *Store) merge(doc documentFile, source string) error {
	if err := mergeSetting(&s.settings.Locale, doc.Styles.Locale, "locale", source); err != nil {
		return err
	}
	if err := mergeSetting(&s.settings.Timezone, doc.Styles.Timezone, "timezone", source); err != nil {
		return err
	}
	if err := mergeSetting(&s.settings.Currency, doc.Styles.Currency, "currency", source); err != nil {
		return err
	}

	for name, pattern := range doc.Styles.DateAliases {
		alias := strings.TrimSpace(name)
		if alias == "" {
			return fmt.Errorf("catalog: file %s defines a date alias with an empty name", source)
		}
		if existing, ok := s.settings.DateAliases[alias]; ok && existing != pattern {
			return fmt.Errorf("catalog: file %s redefines date alias %q", source, alias)
		}
		if s.settings.DateAliases == nil {
			s.settings.DateAliases = make(map[string]string)
		}
		s.settings.DateAliases[alias] = pattern
	}

	for rawName, text := range doc.Templates {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("catalog: file %s defines a template with an empty name", source)
		}
		if existing, exists := s.templates[name]; exists {
			return fmt.Errorf("catalog: duplicate template %q (files %s and %s)", name, existing.Source, source)
		}
		s.templates[name] = Entry{Name: name, Text: text, Source: source}
	}
	return nil
}

func mergeSetting(dst *string, value, key, source string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if *dst != "" && *dst != value {
		return fmt.Errorf("catalog: file %s sets %s %q, conflicting with %q", source, key, value, *dst)
	}
	*dst = value
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func cloneAliases(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
