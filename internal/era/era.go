package era

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies an era. The network encodes it as a hex integer ("0x1f").
type Key uint64

func (k Key) Hex() string {
	return "0x" + strconv.FormatUint(uint64(k), 16)
}

func (k Key) String() string {
	return k.Hex()
}

// ParseKey parses a hex encoded era id. The 0x prefix is optional.
func ParseKey(s string) (Key, error) {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if raw == "" {
		return 0, fmt.Errorf("empty era id %q", s)
	}
	v, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid era id %q: %w", s, err)
	}
	return Key(v), nil
}

// Metadata describes the current era as reported by the era provider.
type Metadata struct {
	Index            Key
	Period           time.Duration
	EstimatedEndTime time.Time
}

// Range is the lookback filter of a chart.
type Range string

const (
	LastMonth       Range = "lm"
	LastThreeMonths Range = "l3m"
	LastYear        Range = "ly"
)

func (r Range) String() string {
	return string(r)
}

// Days returns the lookback length in days, 0 for unknown ranges.
func (r Range) Days() int {
	switch r {
	case LastMonth:
		return 31
	case LastThreeMonths:
		return 90
	case LastYear:
		return 365
	default:
		return 0
	}
}

func (r Range) Lookback() time.Duration {
	return time.Duration(r.Days()) * Day
}

func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case LastMonth, LastThreeMonths, LastYear:
		return r, nil
	case "":
		return LastMonth, nil
	default:
		return "", fmt.Errorf("invalid range %q, should be one of {%s, %s, %s}",
			s, LastMonth, LastThreeMonths, LastYear)
	}
}
