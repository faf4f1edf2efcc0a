package era

import (
	"time"
)

const (
	Day = 24 * time.Hour
	// LabelLayout is the x-axis label format.
	LabelLayout = "Jan 2"
)

// Window is the resolved set of eras a chart covers.
type Window struct {
	// Keys are the eras inside the lookback, oldest first. The last one is the current era.
	Keys []Key
	// AllKeys are the eras from the first one up to the current era. Stakes are cumulative,
	// so records before the window are queried to seed the carried value.
	AllKeys []Key
	// Dates are the x-axis points. The last date lies in the future and carries no data.
	Dates  []time.Time
	Labels []string
	// ErasPerBucket is how many eras are folded into one x-axis point.
	ErasPerBucket int
}

// Points is the number of x-axis points backed by data.
func (w Window) Points() int {
	if len(w.Dates) == 0 {
		return 0
	}
	return len(w.Dates) - 1
}

func (w Window) HexKeys() []string {
	return hexKeys(w.Keys)
}

func (w Window) AllHexKeys() []string {
	return hexKeys(w.AllKeys)
}

func hexKeys(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.Hex()
	}
	return out
}

// EffectivePeriod returns the era period, falling back to one day when it is unknown.
func EffectivePeriod(meta Metadata) time.Duration {
	if meta.Period <= 0 {
		return Day
	}
	return meta.Period
}

// Resolve computes the eras and the axis of a chart looking back over lookback from the
// current era.
func Resolve(lookback time.Duration, meta Metadata) Window {
	period := EffectivePeriod(meta)

	whole := Key(lookback / period)
	first := Key(0)
	if meta.Index > whole {
		first = meta.Index - whole
	}

	w := Window{
		Keys:          make([]Key, 0, meta.Index-first+1),
		AllKeys:       make([]Key, 0, meta.Index+1),
		ErasPerBucket: 1,
	}
	for k := Key(0); k <= meta.Index; k++ {
		w.AllKeys = append(w.AllKeys, k)
		if k >= first {
			w.Keys = append(w.Keys, k)
		}
	}

	end := meta.EstimatedEndTime
	if period < Day {
		w.ErasPerBucket = int(Day / period)

		days := int(lookback / Day)
		for i := days; i >= 0; i-- {
			w.Dates = append(w.Dates, end.Add(-time.Duration(i)*Day))
		}
		w.Dates = append(w.Dates, end.Add(Day))
	} else {
		for _, k := range w.Keys {
			w.Dates = append(w.Dates, end.Add(-time.Duration(meta.Index-k)*period))
		}
		w.Dates = append(w.Dates, end.Add(period))
	}

	w.Labels = make([]string, len(w.Dates))
	for i, d := range w.Dates {
		w.Labels[i] = d.Format(LabelLayout)
	}

	return w
}
