package series

import (
	"cmp"
	"slices"

	"github.com/leopardracer/network-app/internal/era"
)

// Normalize produces exactly one point per era of window from sparse cumulative records.
//
// Eras without a record repeat the last known sums (zero before the first record).
// Records older than the window only seed that carried value, records newer than the
// window are ignored. If any record lacks its keys or sums the whole batch is rejected
// and the result is empty.
func Normalize(records []Record, window []era.Key) []Point {
	known := make([]Point, 0, len(records))
	for _, r := range records {
		if len(r.Keys) == 0 || r.Sum == nil {
			return []Point{}
		}
		k, err := era.ParseKey(r.Keys[0])
		if err != nil {
			return []Point{}
		}
		known = append(known, Point{Era: k, Sums: r.Sum.orZero()})
	}
	if len(window) == 0 {
		return []Point{}
	}

	slices.SortStableFunc(known, func(a, b Point) int {
		return cmp.Compare(a.Era, b.Era)
	})
	// first record wins on duplicated eras
	known = slices.CompactFunc(known, func(a, b Point) bool {
		return a.Era == b.Era
	})

	keys := slices.Clone(window)
	slices.Sort(keys)

	out := make([]Point, 0, len(keys))
	carry := ZeroSums()
	i := 0
	for _, k := range keys {
		for i < len(known) && known[i].Era < k {
			carry = known[i].Sums
			i++
		}
		if i < len(known) && known[i].Era == k {
			carry = known[i].Sums
			out = append(out, known[i])
			i++
			continue
		}
		out = append(out, Point{Era: k, Sums: carry, CarriedForward: true})
	}

	return out
}
