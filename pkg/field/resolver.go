package field

import (
	"strings"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

// RefSeparator splits a field reference into name and qualifier.
const RefSeparator = "|"

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

type resolverConfig struct {
	transform func(string) string
}

// WithTransform post-processes every string a resolved extractor produces.
func WithTransform(fn func(string) string) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.transform = fn
	}
}

// Resolver turns field references into string extractors for record type R.
// Resolution happens once per reference; the returned closures are cheap to
// call repeatedly and safe for concurrent use.
type Resolver[R any] struct {
	schema    Schema[R]
	styles    *style.Styles
	transform func(string) string
}

// NewResolver binds a schema to a Styles instance. A nil styles uses
// style.Default().
func NewResolver[R any](schema Schema[R], styles *style.Styles, options ...ResolverOption) *Resolver[R] {
	cfg := resolverConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if styles == nil {
		styles = style.Default()
	}
	return &Resolver[R]{
		schema:    schema,
		styles:    styles,
		transform: cfg.transform,
	}
}

// SplitRef splits a reference on the first '|'. Everything after it,
// including further '|' characters, is the qualifier.
func SplitRef(ref string) (string, style.Qualifier) {
	name, qualifier, found := strings.Cut(ref, RefSeparator)
	if !found {
		return ref, style.NoQualifier
	}
	return name, style.Q(qualifier)
}

// ResolveRef resolves a `name` or `name|qualifier` reference.
func (r *Resolver[R]) ResolveRef(ref string) (func(R) string, error) {
	name, q := SplitRef(ref)
	return r.Resolve(name, q)
}

// Resolve returns the string extractor for name. String fields ignore the
// qualifier; numbers and dates use it to pick a cached formatter at render
// time.
func (r *Resolver[R]) Resolve(name string, q style.Qualifier) (func(R) string, error) {
	fn, err := r.resolve(name, q)
	if err != nil {
		return nil, err
	}
	if r.transform == nil {
		return fn, nil
	}
	transform := r.transform
	return func(rec R) string {
		return transform(fn(rec))
	}, nil
}

// Kind reports which value kind name resolves to.
func (r *Resolver[R]) Kind(name string) Kind {
	if r.schema == nil {
		return KindNone
	}
	return r.schema.Extractor(name).Kind()
}

func (r *Resolver[R]) resolve(name string, q style.Qualifier) (func(R) string, error) {
	if r.schema == nil {
		return nil, &UnknownFieldError{Field: name}
	}
	styles := r.styles
	ext := r.schema.Extractor(name)

	switch ext.Kind() {
	case KindString:
		fn, _ := ext.StringFunc()
		return fn, nil
	case KindInt:
		fn, _ := ext.IntFunc()
		return func(rec R) string {
			return styles.FormatNumber(q, style.Int(fn(rec)))
		}, nil
	case KindFloat:
		fn, _ := ext.FloatFunc()
		return func(rec R) string {
			return styles.FormatNumber(q, style.Float32(fn(rec)))
		}, nil
	case KindDouble:
		fn, _ := ext.DoubleFunc()
		return func(rec R) string {
			return styles.FormatNumber(q, style.Float64(fn(rec)))
		}, nil
	case KindDate:
		fn, _ := ext.DateFunc()
		return func(rec R) string {
			return styles.Date(q).FormatDate(fn(rec))
		}, nil
	default:
		return nil, &UnknownFieldError{Field: name}
	}
}
