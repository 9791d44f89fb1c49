package style_test

import (
	"math"
	"testing"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

func TestNumberString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    style.Number
		want string
	}{
		{style.Int(5), "5"},
		{style.Int64(-42), "-42"},
		{style.Float64(2.5), "2.5"},
		{style.Float32(0.1), "0.1"},
		{style.Float64(math.NaN()), "NaN"},
	}
	for _, tc := range cases {
		if got := tc.n.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestNumberInt64(t *testing.T) {
	t.Parallel()

	if v, ok := style.Float64(3).Int64(); !ok || v != 3 {
		t.Fatalf("Float64(3).Int64() = %d, %v", v, ok)
	}
	if _, ok := style.Float64(3.5).Int64(); ok {
		t.Fatalf("expected non-integral value to report false")
	}
	if _, ok := style.Float64(math.Inf(1)).Int64(); ok {
		t.Fatalf("expected infinity to report false")
	}
	if !style.Int(1).IsInt() || style.Float32(1).IsInt() {
		t.Fatalf("IsInt mismatch")
	}
}
