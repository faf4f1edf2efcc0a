package series

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/google/go-cmp/cmp"
)

func decs(values ...int64) []math.LegacyDec {
	out := make([]math.LegacyDec, len(values))
	for i, v := range values {
		out[i] = math.LegacyNewDec(v)
	}
	return out
}

func TestBucketByDay(t *testing.T) {
	tests := []struct {
		name   string
		values []math.LegacyDec
		size   int
		want   []math.LegacyDec
	}{
		{"size one keeps values", decs(1, 2, 3), 1, decs(1, 2, 3)},
		{"exact buckets", decs(1, 5, 2, 8), 2, decs(5, 8)},
		{"partial oldest bucket", decs(4, 1, 2, 3, 9), 2, decs(4, 2, 9)},
		{"single bucket", decs(3, 1), 24, decs(3)},
		{"empty", decs(), 4, decs()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketByDay(tt.values, tt.size)
			if diff := cmp.Diff(tt.want, got, decComparer); diff != "" {
				t.Errorf("BucketByDay() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name   string
		values []math.LegacyDec
		n      int
		want   []math.LegacyDec
	}{
		{"pads oldest with zero", decs(5, 6), 4, decs(0, 0, 5, 6)},
		{"trims oldest", decs(1, 2, 3, 4), 2, decs(3, 4)},
		{"same length", decs(1, 2), 2, decs(1, 2)},
		{"no points", decs(1, 2), 0, decs()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(tt.values, tt.n)
			if diff := cmp.Diff(tt.want, got, decComparer); diff != "" {
				t.Errorf("Align() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
