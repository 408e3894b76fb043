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

type LAAUniverse struct {
	Anchors   []string
	Growth    string
	Defensive string
}

func DefaultLAAUniverse() LAAUniverse {
	return LAAUniverse{
		Anchors:   []string{"IWD", "GLD", "IEF"},
		Growth:    "QQQM",
		Defensive: "SHY",
	}
}

var laaSleeveWeight = decimal.NewFromFloat(0.25)

// SelectTiming holds the growth sleeve only while the index trends up and
// unemployment is not rising
func SelectTiming(u LAAUniverse, trend, macro bool) string {
	if trend && !macro {
		return u.Growth
	}
	return u.Defensive
}

type laaStrategyHandler struct {
	SignalService l2_service.SignalService
	Universe      LAAUniverse
}

func NewLAAStrategy(signalService l2_service.SignalService) StrategyEngine {
	return laaStrategyHandler{
		SignalService: signalService,
		Universe:      DefaultLAAUniverse(),
	}
}

func (h laaStrategyHandler) Name() string {
	return domain.StrategyLAA
}

func (h laaStrategyHandler) Tickers() []string {
	return append(append([]string{}, h.Universe.Anchors...), h.Universe.Growth, h.Universe.Defensive)
}

func (h laaStrategyHandler) RequiredInputs() l1_service.WarmInput {
	return h.SignalService.RequiredInputs()
}

func (h laaStrategyHandler) ComputeAllocation(ctx context.Context, capital decimal.Decimal) (*domain.StrategyAllocation, error) {
	trend, err := h.SignalService.TrendSignal(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: trend signal: %w", domain.ErrInsufficientSignalData, err)
	}
	macro, err := h.SignalService.MacroSignal(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: macro signal: %w", domain.ErrInsufficientSignalData, err)
	}

	selected := SelectTiming(h.Universe, trend, macro)
	logger.FromContext(ctx).Infof("LAA trend %t, unemployment rising %t, selected %s", trend, macro, selected)

	sleeve := capital.Mul(laaSleeveWeight)
	allocation := domain.NewStrategyAllocation(h.Name(), capital, h.Tickers())
	for _, anchor := range h.Universe.Anchors {
		allocation.Amounts[anchor] = sleeve
	}
	allocation.Amounts[selected] = sleeve

	return allocation, nil
}
