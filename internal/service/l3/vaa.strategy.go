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

type VAAUniverse struct {
	Aggressive []string
	Defensive  []string
}

func DefaultVAAUniverse() VAAUniverse {
	return VAAUniverse{
		Aggressive: []string{"VOO", "EFA", "VWO", "AGG"},
		Defensive:  []string{"LQD", "IEF", "SHY"},
	}
}

func (u VAAUniverse) All() []string {
	return append(append([]string{}, u.Aggressive...), u.Defensive...)
}

// bestScore returns the highest scoring symbol; ties go to the earliest
func bestScore(symbols []string, scores map[string]float64) string {
	best := symbols[0]
	for _, symbol := range symbols[1:] {
		if scores[symbol] > scores[best] {
			best = symbol
		}
	}
	return best
}

// SelectVigilant picks the best aggressive asset when every aggressive
// score is non-negative, otherwise the best defensive asset
func SelectVigilant(u VAAUniverse, scores map[string]float64) string {
	for _, symbol := range u.Aggressive {
		if scores[symbol] < 0 {
			return bestScore(u.Defensive, scores)
		}
	}
	return bestScore(u.Aggressive, scores)
}

type vaaStrategyHandler struct {
	MomentumService l2_service.MomentumService
	Universe        VAAUniverse
}

func NewVAAStrategy(momentumService l2_service.MomentumService) StrategyEngine {
	return vaaStrategyHandler{
		MomentumService: momentumService,
		Universe:        DefaultVAAUniverse(),
	}
}

func (h vaaStrategyHandler) Name() string {
	return domain.StrategyVAA
}

func (h vaaStrategyHandler) Tickers() []string {
	return h.Universe.All()
}

func (h vaaStrategyHandler) RequiredInputs() l1_service.WarmInput {
	return h.MomentumService.RequiredInputs(h.Tickers())
}

func (h vaaStrategyHandler) ComputeAllocation(ctx context.Context, capital decimal.Decimal) (*domain.StrategyAllocation, error) {
	momentum := map[string]domain.MomentumScore{}
	scores := map[string]float64{}
	for _, symbol := range h.Tickers() {
		score, err := h.MomentumService.CalculateMomentumScore(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %s momentum score: %w", domain.ErrInsufficientSignalData, symbol, err)
		}
		momentum[symbol] = *score
		scores[symbol] = score.Score
	}

	selected := SelectVigilant(h.Universe, scores)
	logger.FromContext(ctx).Infof("VAA momentum scores %v, selected %s", scores, selected)

	allocation := domain.NewStrategyAllocation(h.Name(), capital, h.Tickers())
	allocation.Amounts[selected] = capital
	allocation.Momentum = momentum

	return allocation, nil
}
