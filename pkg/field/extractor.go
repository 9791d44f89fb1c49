package field

import "time"

// Kind identifies the value kind an extractor produces.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindInt
	KindFloat
	KindDouble
	KindDate
)

// Kinds lists the value kinds in resolution priority order.
var Kinds = []Kind{KindString, KindInt, KindFloat, KindDouble, KindDate}

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindDate:
		return "date"
	default:
		return "none"
	}
}

// Extractor is a tagged union over the typed extractors a record type can
// offer for one field. The zero value means the field is not available.
type Extractor[R any] struct {
	kind   Kind
	str    func(R) string
	int    func(R) int
	float  func(R) float32
	double func(R) float64
	date   func(R) time.Time
}

// String wraps a string extractor.
func String[R any](fn func(R) string) Extractor[R] {
	if fn == nil {
		return Extractor[R]{}
	}
	return Extractor[R]{kind: KindString, str: fn}
}

// Int wraps an integer extractor.
func Int[R any](fn func(R) int) Extractor[R] {
	if fn == nil {
		return Extractor[R]{}
	}
	return Extractor[R]{kind: KindInt, int: fn}
}

// Float wraps a single precision extractor.
func Float[R any](fn func(R) float32) Extractor[R] {
	if fn == nil {
		return Extractor[R]{}
	}
	return Extractor[R]{kind: KindFloat, float: fn}
}

// Double wraps a double precision extractor.
func Double[R any](fn func(R) float64) Extractor[R] {
	if fn == nil {
		return Extractor[R]{}
	}
	return Extractor[R]{kind: KindDouble, double: fn}
}

// Date wraps a date extractor.
func Date[R any](fn func(R) time.Time) Extractor[R] {
	if fn == nil {
		return Extractor[R]{}
	}
	return Extractor[R]{kind: KindDate, date: fn}
}

// None returns the absent extractor.
func None[R any]() Extractor[R] {
	return Extractor[R]{}
}

// Kind reports which variant the extractor holds.
func (e Extractor[R]) Kind() Kind {
	return e.kind
}

// Found reports whether the extractor holds a variant.
func (e Extractor[R]) Found() bool {
	return e.kind != KindNone
}

// StringFunc returns the string variant, if held.
func (e Extractor[R]) StringFunc() (func(R) string, bool) {
	return e.str, e.kind == KindString
}

// IntFunc returns the integer variant, if held.
func (e Extractor[R]) IntFunc() (func(R) int, bool) {
	return e.int, e.kind == KindInt
}

// FloatFunc returns the single precision variant, if held.
func (e Extractor[R]) FloatFunc() (func(R) float32, bool) {
	return e.float, e.kind == KindFloat
}

// DoubleFunc returns the double precision variant, if held.
func (e Extractor[R]) DoubleFunc() (func(R) float64, bool) {
	return e.double, e.kind == KindDouble
}

// DateFunc returns the date variant, if held.
func (e Extractor[R]) DateFunc() (func(R) time.Time, bool) {
	return e.date, e.kind == KindDate
}
