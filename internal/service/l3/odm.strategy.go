package l3_service

import (
	"context"
	"fmt"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	l1_service "tacticalalloc/internal/service/l1"
	l2_service "tacticalalloc/internal/service/l2"

	"github.com/shopspring/decimal"
)

// ODMUniverse names the roles in original dual momentum
type ODMUniverse struct {
	Offensive     string
	International string
	Bond          string
	CashBenchmark string
}

func DefaultODMUniverse() ODMUniverse {
	return ODMUniverse{
		Offensive:     "VOO",
		International: "EFA",
		Bond:          "AGG",
		CashBenchmark: "BIL",
	}
}

// SelectDualMomentum applies absolute momentum against the cash benchmark,
// then relative momentum between domestic and international equity
func SelectDualMomentum(u ODMUniverse, returns map[string]float64) string {
	if returns[u.Offensive] > returns[u.CashBenchmark] {
		if returns[u.Offensive] > returns[u.International] {
			return u.Offensive
		}
		return u.International
	}
	return u.Bond
}

type odmStrategyHandler struct {
	MomentumService l2_service.MomentumService
	Universe        ODMUniverse
}

func NewODMStrategy(momentumService l2_service.MomentumService) StrategyEngine {
	return odmStrategyHandler{
		MomentumService: momentumService,
		Universe:        DefaultODMUniverse(),
	}
}

func (h odmStrategyHandler) Name() string {
	return domain.StrategyODM
}

// Tickers leaves out the cash benchmark, which is only ever a signal
func (h odmStrategyHandler) Tickers() []string {
	return []string{h.Universe.Offensive, h.Universe.International, h.Universe.Bond}
}

func (h odmStrategyHandler) signalTickers() []string {
	return append(h.Tickers(), h.Universe.CashBenchmark)
}

func (h odmStrategyHandler) RequiredInputs() l1_service.WarmInput {
	return h.MomentumService.RequiredInputs(h.signalTickers())
}

func (h odmStrategyHandler) ComputeAllocation(ctx context.Context, capital decimal.Decimal) (*domain.StrategyAllocation, error) {
	returns := map[string]float64{}
	for _, symbol := range h.signalTickers() {
		r, err := h.MomentumService.GetReturn(ctx, symbol, domain.TwelveMonths)
		if err != nil {
			return nil, fmt.Errorf("%w: %s 12 month return: %w", domain.ErrInsufficientSignalData, symbol, err)
		}
		returns[symbol] = r
	}

	selected := SelectDualMomentum(h.Universe, returns)
	logger.FromContext(ctx).Infof("ODM 12 month returns %v, selected %s", returns, selected)

	allocation := domain.NewStrategyAllocation(h.Name(), capital, h.Tickers())
	allocation.Amounts[selected] = capital

	return allocation, nil
}
