package domain

import "time"

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// SeriesObservation is a single reading of a macro series such as UNRATE.
type SeriesObservation struct {
	SeriesID string
	Date     time.Time
	Value    float64
}

// Lookback is a trailing window measured in calendar days.
type Lookback struct {
	Label string
	Days  int
}

func (l Lookback) StartFrom(asOf time.Time) time.Time {
	return asOf.AddDate(0, 0, -l.Days)
}

var (
	OneMonth     = Lookback{Label: "1M", Days: 30}
	ThreeMonths  = Lookback{Label: "3M", Days: 90}
	SixMonths    = Lookback{Label: "6M", Days: 180}
	TwelveMonths = Lookback{Label: "12M", Days: 365}
)

// MomentumLookbacks are the horizons of the momentum score, in the order
// the score weights are applied.
var MomentumLookbacks = []Lookback{OneMonth, ThreeMonths, SixMonths, TwelveMonths}
