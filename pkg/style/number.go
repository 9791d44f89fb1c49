package style

import (
	"math"
	"strconv"
)

// Number is the generic numeric value handed to a NumberFormatter. It keeps
// integers exact and remembers the bit size of floating point values so the
// default textual representation matches the source type.
type Number struct {
	integer bool
	i       int64
	f       float64
	bits    int
}

// Int wraps an integer value.
func Int(v int) Number {
	return Number{integer: true, i: int64(v)}
}

// Int64 wraps an int64 value.
func Int64(v int64) Number {
	return Number{integer: true, i: v}
}

// Float32 wraps a single precision value.
func Float32(v float32) Number {
	return Number{f: float64(v), bits: 32}
}

// Float64 wraps a double precision value.
func Float64(v float64) Number {
	return Number{f: v, bits: 64}
}

// IsInt reports whether the value was built from an integer.
func (n Number) IsInt() bool {
	return n.integer
}

// Float returns the value as float64.
func (n Number) Float() float64 {
	if n.integer {
		return float64(n.i)
	}
	return n.f
}

// Int64 returns the integer value and whether the number is integral and fits
// in an int64.
func (n Number) Int64() (int64, bool) {
	if n.integer {
		return n.i, true
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) || n.f != math.Trunc(n.f) {
		return 0, false
	}
	if n.f < math.MinInt64 || n.f >= math.MaxInt64 {
		return 0, false
	}
	return int64(n.f), true
}

// IsFinite reports whether the value is neither NaN nor infinite.
func (n Number) IsFinite() bool {
	if n.integer {
		return true
	}
	return !math.IsNaN(n.f) && !math.IsInf(n.f, 0)
}

// Value returns the underlying value as int64, float32 or float64.
func (n Number) Value() any {
	switch {
	case n.integer:
		return n.i
	case n.bits == 32:
		return float32(n.f)
	default:
		return n.f
	}
}

// String is the default textual representation, used when a formatter
// cannot render the value.
func (n Number) String() string {
	if n.integer {
		return strconv.FormatInt(n.i, 10)
	}
	bits := n.bits
	if bits == 0 {
		bits = 64
	}
	return strconv.FormatFloat(n.f, 'f', -1, bits)
}
