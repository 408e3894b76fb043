package domain

import (
	"github.com/shopspring/decimal"
)

const (
	StrategyODM = "ODM"
	StrategyVAA = "VAA"
	StrategyLAA = "LAA"
)

// MomentumScore keeps the component returns next to the weighted score so
// the report can show how the score was reached
type MomentumScore struct {
	Symbol  string
	Returns map[string]float64 // keyed by Lookback.Label
	Score   float64
}

// StrategyAllocation is the output of one strategy engine. Tickers is the
// engine's fixed universe order and every ticker has an entry in Amounts,
// including the zero ones.
type StrategyAllocation struct {
	Strategy string
	Capital  decimal.Decimal
	Tickers  []string
	Amounts  map[string]decimal.Decimal

	// only set by engines that rank on momentum
	Momentum map[string]MomentumScore
}

func NewStrategyAllocation(strategy string, capital decimal.Decimal, tickers []string) *StrategyAllocation {
	amounts := map[string]decimal.Decimal{}
	for _, t := range tickers {
		amounts[t] = decimal.Zero
	}
	return &StrategyAllocation{
		Strategy: strategy,
		Capital:  capital,
		Tickers:  tickers,
		Amounts:  amounts,
	}
}

func (a StrategyAllocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a.Amounts {
		total = total.Add(amount)
	}
	return total
}

func (a StrategyAllocation) Amount(symbol string) decimal.Decimal {
	if amount, ok := a.Amounts[symbol]; ok {
		return amount
	}
	return decimal.Zero
}

type StrategyFailure struct {
	Strategy string
	Err      error
}

// StrategyAllocationSet is everything one rebalance cycle produced. Failed
// strategies only appear in Failures.
type StrategyAllocationSet struct {
	Allocations []*StrategyAllocation
	Failures    []StrategyFailure
}

func (s StrategyAllocationSet) AllocatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Allocations {
		total = total.Add(a.Total())
	}
	return total
}

// StrategyDescriptions maps strategy -> ticker -> human readable name
type StrategyDescriptions map[string]map[string]string

func (d StrategyDescriptions) Describe(strategy, symbol string) string {
	if byTicker, ok := d[strategy]; ok {
		return byTicker[symbol]
	}
	return ""
}

func DefaultStrategyDescriptions() StrategyDescriptions {
	return StrategyDescriptions{
		StrategyODM: {
			"VOO": "US large cap equity",
			"EFA": "Developed markets ex-US equity",
			"AGG": "US aggregate bonds",
		},
		StrategyVAA: {
			"VOO": "US large cap equity",
			"EFA": "Developed markets equity",
			"VWO": "Emerging markets equity",
			"AGG": "US aggregate bonds",
			"SHY": "US short-term treasuries",
			"IEF": "US intermediate treasuries",
			"LQD": "US corporate bonds",
		},
		StrategyLAA: {
			"IWD":  "US large cap value",
			"QQQM": "Nasdaq 100",
			"GLD":  "Gold",
			"IEF":  "US intermediate treasuries",
			"SHY":  "US short-term treasuries",
		},
	}
}
