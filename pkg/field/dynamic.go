package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MapSchema serves map[string]any records, such as decoded YAML or JSON.
// Kinds are inferred once from a sample record; nested maps are flattened
// into dotted names ("author.name").
type MapSchema struct {
	kinds map[string]Kind
}

var _ Schema[map[string]any] = MapSchema{}

// Dynamic infers a MapSchema from sample.
func Dynamic(sample map[string]any) MapSchema {
	kinds := make(map[string]Kind)
	inferKinds(sample, "", kinds)
	return MapSchema{kinds: kinds}
}

// Kinds returns a copy of the inferred field kinds.
func (s MapSchema) Kinds() map[string]Kind {
	out := make(map[string]Kind, len(s.kinds))
	for name, kind := range s.kinds {
		out[name] = kind
	}
	return out
}

// Extractor implements Schema. Values that no longer match the inferred
// kind render as the kind's zero value.
func (s MapSchema) Extractor(name string) Extractor[map[string]any] {
	switch s.kinds[name] {
	case KindString:
		return String(func(rec map[string]any) string {
			v, _ := lookupPath(rec, name)
			return toString(v)
		})
	case KindInt:
		return Int(func(rec map[string]any) int {
			v, _ := lookupPath(rec, name)
			i, _ := toInt(v)
			return i
		})
	case KindFloat:
		return Float(func(rec map[string]any) float32 {
			v, _ := lookupPath(rec, name)
			f, _ := toFloat(v)
			return float32(f)
		})
	case KindDouble:
		return Double(func(rec map[string]any) float64 {
			v, _ := lookupPath(rec, name)
			f, _ := toFloat(v)
			return f
		})
	case KindDate:
		return Date(func(rec map[string]any) time.Time {
			v, _ := lookupPath(rec, name)
			t, _ := v.(time.Time)
			return t
		})
	default:
		return None[map[string]any]()
	}
}

func inferKinds(values map[string]any, prefix string, dest map[string]Kind) {
	for key, value := range values {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			inferKinds(nested, path, dest)
			continue
		}
		if kind := kindOf(value); kind != KindNone {
			dest[path] = kind
		}
	}
}

func kindOf(value any) Kind {
	switch v := value.(type) {
	case nil:
		return KindNone
	case time.Time:
		return KindDate
	case string, bool, []byte, fmt.Stringer:
		return KindString
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return KindInt
	case uint:
		if uint64(v) > math.MaxInt {
			return KindDouble
		}
		return KindInt
	case uint64:
		if v > math.MaxInt {
			return KindDouble
		}
		return KindInt
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	default:
		return KindString
	}
}

// lookupPath prefers an exact key match and then walks nested maps. Keys are
// compared with surrounding whitespace trimmed, as inferKinds registers them.
func lookupPath(values map[string]any, path string) (any, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}
	if v, ok := values[path]; ok {
		return v, true
	}

	var current any = values
	for _, part := range strings.Split(path, ".") {
		typed, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := lookupKey(typed, part)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func lookupKey(values map[string]any, key string) (any, bool) {
	if v, ok := values[key]; ok {
		return v, true
	}
	for k, v := range values {
		if strings.TrimSpace(k) == key {
			return v, true
		}
	}
	return nil, false
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(value)
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint:
		return float64(v), true
	default:
		if i, ok := toInt(value); ok {
			return float64(i), true
		}
		return 0, false
	}
}
