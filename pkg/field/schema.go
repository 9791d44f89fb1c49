package field

import "time"

// Schema is the capability a record type R offers to templates: given a
// field name it returns the extractor for that field, or the absent
// extractor. Implementations must be immutable once templates compile
// against them.
type Schema[R any] interface {
	Extractor(name string) Extractor[R]
}

// SchemaFunc adapts a function into a Schema.
type SchemaFunc[R any] func(name string) Extractor[R]

// Extractor delegates to the underlying function.
func (fn SchemaFunc[R]) Extractor(name string) Extractor[R] {
	return fn(name)
}

// Fields declares extractors as one map per value kind. Lookups probe the
// maps in priority order, so a name present in several maps resolves to the
// first kind.
type Fields[R any] struct {
	Strings map[string]func(R) string
	Ints    map[string]func(R) int
	Floats  map[string]func(R) float32
	Doubles map[string]func(R) float64
	Dates   map[string]func(R) time.Time
}

// Extractor implements Schema.
func (f Fields[R]) Extractor(name string) Extractor[R] {
	if fn, ok := f.Strings[name]; ok && fn != nil {
		return String(fn)
	}
	if fn, ok := f.Ints[name]; ok && fn != nil {
		return Int(fn)
	}
	if fn, ok := f.Floats[name]; ok && fn != nil {
		return Float(fn)
	}
	if fn, ok := f.Doubles[name]; ok && fn != nil {
		return Double(fn)
	}
	if fn, ok := f.Dates[name]; ok && fn != nil {
		return Date(fn)
	}
	return None[R]()
}

// Names returns every declared field name with the kind it resolves to.
func (f Fields[R]) Names() map[string]Kind {
	out := make(map[string]Kind)
	collect := func(name string) {
		if _, seen := out[name]; seen {
			return
		}
		if kind := f.Extractor(name).Kind(); kind != KindNone {
			out[name] = kind
		}
	}
	for name := range f.Strings {
		collect(name)
	}
	for name := range f.Ints {
		collect(name)
	}
	for name := range f.Floats {
		collect(name)
	}
	for name := range f.Doubles {
		collect(name)
	}
	for name := range f.Dates {
		collect(name)
	}
	return out
}

// Lookups declares extractors as one lookup function per value kind. A nil
// lookup, or a lookup returning nil, means the kind is not offered for that
// name.
type Lookups[R any] struct {
	String func(name string) func(R) string
	Int    func(name string) func(R) int
	Float  func(name string) func(R) float32
	Double func(name string) func(R) float64
	Date   func(name string) func(R) time.Time
}

// Extractor implements Schema, probing the lookups in priority order.
func (l Lookups[R]) Extractor(name string) Extractor[R] {
	if l.String != nil {
		if fn := l.String(name); fn != nil {
			return String(fn)
		}
	}
	if l.Int != nil {
		if fn := l.Int(name); fn != nil {
			return Int(fn)
		}
	}
	if l.Float != nil {
		if fn := l.Float(name); fn != nil {
			return Float(fn)
		}
	}
	if l.Double != nil {
		if fn := l.Double(name); fn != nil {
			return Double(fn)
		}
	}
	if l.Date != nil {
		if fn := l.Date(name); fn != nil {
			return Date(fn)
		}
	}
	return None[R]()
}
