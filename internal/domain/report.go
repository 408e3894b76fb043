package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StrategyDetail is one row of the Strategy Details sheet
type StrategyDetail struct {
	Strategy      string
	Description   string
	Symbol        string
	Price         *float64
	Ratio         float64 // % of the strategy's allocation
	StrategyRatio float64 // % of the rebalance that went to the strategy
	FinalRatio    float64 // % of the rebalance that went to this line
	Amount        decimal.Decimal
	Quantity      int64

	// momentum columns, percent. nil when the strategy does not rank on
	// momentum
	Returns map[string]*float64
	Score   *float64
}

type SummaryLine struct {
	Symbol   string
	Quantity int64
	Amount   decimal.Decimal
}

// PortfolioSummary is the single row written to the Portfolio Summary sheet
type PortfolioSummary struct {
	RunID      uuid.UUID
	Date       time.Time
	TotalValue decimal.Decimal
	Lines      []SummaryLine
}

type RebalanceReport struct {
	RunID       uuid.UUID
	Date        time.Time
	TotalValue  decimal.Decimal
	Snapshot    *PortfolioSnapshot
	Allocations []*StrategyAllocation
	Failures    []StrategyFailure
	Summary     PortfolioSummary
	Details     []StrategyDetail
	LedgerFile  string
}
