package series

import (
	"fmt"

	"cosmossdk.io/math"
)

// TotalSource decides how the total series of a merge is obtained.
// It is implemented by DerivedTotal and FetchedTotal only.
type TotalSource interface {
	total(one, two []math.LegacyDec) ([]math.LegacyDec, error)
}

// DerivedTotal sums the two series element-wise.
type DerivedTotal struct{}

func (DerivedTotal) total(one, two []math.LegacyDec) ([]math.LegacyDec, error) {
	out := make([]math.LegacyDec, len(one))
	for i := range one {
		out[i] = one[i].Add(two[i])
	}
	return out, nil
}

// FetchedTotal uses an independently normalized aggregate, which may include stake
// outside of the two displayed series.
type FetchedTotal struct {
	Values []math.LegacyDec
}

func (f FetchedTotal) total(one, _ []math.LegacyDec) ([]math.LegacyDec, error) {
	if len(f.Values) != len(one) {
		return nil, fmt.Errorf("fetched total has %d points, expected %d", len(f.Values), len(one))
	}
	out := make([]math.LegacyDec, len(f.Values))
	copy(out, f.Values)
	return out, nil
}

// Merged holds the two displayed series and their total in exact decimals.
type Merged struct {
	One   []math.LegacyDec
	Two   []math.LegacyDec
	Total []math.LegacyDec
}

// Plot is Merged converted to plotting precision.
type Plot struct {
	One   []float64 `json:"one"`
	Two   []float64 `json:"two"`
	Total []float64 `json:"total"`
}

func Merge(one, two []math.LegacyDec, src TotalSource) (Merged, error) {
	if len(one) != len(two) {
		return Merged{}, fmt.Errorf("series length mismatch: %d != %d", len(one), len(two))
	}
	if src == nil {
		src = DerivedTotal{}
	}
	total, err := src.total(one, two)
	if err != nil {
		return Merged{}, err
	}
	return Merged{One: one, Two: two, Total: total}, nil
}

// Plot converts amounts in the token's smallest unit to whole tokens as floats.
// This is the only place where decimals become floating point.
func (m Merged) Plot(decimals int) (Plot, error) {
	one, err := ToFloats(m.One, decimals)
	if err != nil {
		return Plot{}, err
	}
	two, err := ToFloats(m.Two, decimals)
	if err != nil {
		return Plot{}, err
	}
	total, err := ToFloats(m.Total, decimals)
	if err != nil {
		return Plot{}, err
	}
	return Plot{One: one, Two: two, Total: total}, nil
}

func ToFloats(values []math.LegacyDec, decimals int) ([]float64, error) {
	unit := math.LegacyNewDecFromInt(math.NewIntWithDecimal(1, decimals))

	out := make([]float64, len(values))
	for i, v := range values {
		f, err := v.Quo(unit).Float64()
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to float: %w", v, err)
		}
		out[i] = f
	}
	return out, nil
}
