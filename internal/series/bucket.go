package series

import (
	"slices"

	"cosmossdk.io/math"
)

// BucketByDay folds consecutive eras into buckets of size eras and keeps the largest
// value of each bucket. Buckets are aligned on the newest era, so only the oldest
// bucket may be partial.
func BucketByDay(values []math.LegacyDec, size int) []math.LegacyDec {
	if size <= 1 {
		return slices.Clone(values)
	}

	out := make([]math.LegacyDec, 0, len(values)/size+1)
	for end := len(values); end > 0; end -= size {
		start := max(end-size, 0)
		top := values[start]
		for _, v := range values[start+1 : end] {
			top = math.LegacyMaxDec(top, v)
		}
		out = append(out, top)
	}
	slices.Reverse(out)

	return out
}

// Align fits values to n axis points, dropping the oldest values or left padding
// with zero.
func Align(values []math.LegacyDec, n int) []math.LegacyDec {
	if n <= 0 {
		return []math.LegacyDec{}
	}
	if len(values) >= n {
		return slices.Clone(values[len(values)-n:])
	}

	out := make([]math.LegacyDec, n)
	pad := n - len(values)
	for i := range pad {
		out[i] = math.LegacyZeroDec()
	}
	copy(out[pad:], values)

	return out
}
