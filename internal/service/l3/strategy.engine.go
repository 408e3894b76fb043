package l3_service

import (
	"context"

	"tacticalalloc/internal/domain"
	l1_service "tacticalalloc/internal/service/l1"

	"github.com/shopspring/decimal"
)

// StrategyEngine turns a capital amount into amounts per ticker for one
// tactical strategy. Engines only read market data through the run's
// shared services and never see each other's results.
type StrategyEngine interface {
	Name() string
	// Tickers is the output universe, in the order rows are reported
	Tickers() []string
	// RequiredInputs lists the market data the engine will read, so it can
	// be fetched up front
	RequiredInputs() l1_service.WarmInput
	ComputeAllocation(ctx context.Context, capital decimal.Decimal) (*domain.StrategyAllocation, error)
}
