package pongo

import (
	"fmt"
	"math"
	"time"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

func toNumber(value any) (style.Number, error) {
	switch v := value.(type) {
	case int:
		return style.Int(v), nil
	case int8:
		return style.Int64(int64(v)), nil
	case int16:
		return style.Int64(int64(v)), nil
	case int32:
		return style.Int64(int64(v)), nil
	case int64:
		return style.Int64(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return style.Int64(int64(v)), nil
	case uint16:
		return style.Int64(int64(v)), nil
	case uint32:
		return style.Int64(int64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return style.Float32(v), nil
	case float64:
		return style.Float64(v), nil
	default:
		return style.Number{}, fmt.Errorf("pongo: %T is not a number", value)
	}
}

func fromUint(v uint64) style.Number {
	if v > math.MaxInt64 {
		return style.Float64(float64(v))
	}
	return style.Int64(int64(v))
}

func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("pongo: nil time")
		}
		return *v, nil
	default:
		return time.Time{}, fmt.Errorf("pongo: %T is not a time.Time", value)
	}
}
