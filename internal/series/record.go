package series

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"

	"github.com/leopardracer/network-app/internal/era"
)

// Sums are the cumulative stake totals of one era, in the token's smallest unit.
type Sums struct {
	DelegatorStake math.LegacyDec
	IndexerStake   math.LegacyDec
	TotalStake     math.LegacyDec
	Stake          math.LegacyDec
}

func ZeroSums() Sums {
	return Sums{
		DelegatorStake: math.LegacyZeroDec(),
		IndexerStake:   math.LegacyZeroDec(),
		TotalStake:     math.LegacyZeroDec(),
		Stake:          math.LegacyZeroDec(),
	}
}

// orZero replaces null sums with zero.
func (s Sums) orZero() Sums {
	return Sums{
		DelegatorStake: decOrZero(s.DelegatorStake),
		IndexerStake:   decOrZero(s.IndexerStake),
		TotalStake:     decOrZero(s.TotalStake),
		Stake:          decOrZero(s.Stake),
	}
}

func decOrZero(d math.LegacyDec) math.LegacyDec {
	if d.IsNil() {
		return math.LegacyZeroDec()
	}
	return d
}

// ParseSum parses a decimal string returned by the aggregation service. A nil or
// empty value is a null sum and yields a nil decimal.
func ParseSum(raw *string) (math.LegacyDec, error) {
	if raw == nil || *raw == "" {
		return math.LegacyDec{}, nil
	}
	d, err := ParseDec(*raw)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("invalid sum %q: %w", *raw, err)
	}
	if d.IsNegative() {
		return math.LegacyDec{}, fmt.Errorf("negative sum %q", *raw)
	}
	return d, nil
}

// ParseDec parses a decimal amount. Amounts sent as JSON numbers may use exponent
// notation (1e+21), which is expanded exactly before parsing.
func ParseDec(raw string) (math.LegacyDec, error) {
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, "eE") {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return math.LegacyDec{}, err
		}
		raw = d.String()
	}
	return math.LegacyNewDecFromStr(raw)
}

// Record is one grouped aggregate as returned by the aggregation service.
// Keys and Sum are nil when the service omitted them.
type Record struct {
	Keys []string
	Sum  *Sums
}

// Point is one era of a normalized series.
type Point struct {
	Era  era.Key
	Sums Sums
	// CarriedForward is set when the service had no record for the era.
	CarriedForward bool
}

// ToRecords converts normalized points back to records.
func ToRecords(points []Point) []Record {
	out := make([]Record, len(points))
	for i, p := range points {
		sums := p.Sums
		out[i] = Record{Keys: []string{p.Era.Hex()}, Sum: &sums}
	}
	return out
}

// Selector picks one sum out of an era's sums.
type Selector func(Sums) math.LegacyDec

var (
	DelegatorStake Selector = func(s Sums) math.LegacyDec { return s.DelegatorStake }
	IndexerStake   Selector = func(s Sums) math.LegacyDec { return s.IndexerStake }
	TotalStake     Selector = func(s Sums) math.LegacyDec { return s.TotalStake }
	Stake          Selector = func(s Sums) math.LegacyDec { return s.Stake }
)

// Select projects points onto one sum.
func Select(points []Point, sel Selector) []math.LegacyDec {
	out := make([]math.LegacyDec, len(points))
	for i, p := range points {
		out[i] = sel(p.Sums)
	}
	return out
}
