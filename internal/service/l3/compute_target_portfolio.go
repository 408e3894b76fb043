package l3_service

import (
	"context"
	"errors"
	"fmt"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	l1_service "tacticalalloc/internal/service/l1"
	"tacticalalloc/internal/util"

	"github.com/shopspring/decimal"
)

type WeightedStrategy struct {
	Engine StrategyEngine
	Weight float64
}

type AllocationService interface {
	ComputeTargetPortfolio(ctx context.Context, capital decimal.Decimal) (*ComputeTargetPortfolioResponse, error)
}

type ComputeTargetPortfolioResponse struct {
	Allocations domain.StrategyAllocationSet
	Details     []domain.StrategyDetail
	Lines       []domain.SummaryLine
	// latest quotes for every reported ticker that had one
	Prices map[string]float64
}

type allocationServiceHandler struct {
	MarketDataService l1_service.MarketDataService
	Strategies        []WeightedStrategy
	Descriptions      domain.StrategyDescriptions
}

func NewAllocationService(
	marketDataService l1_service.MarketDataService,
	strategies []WeightedStrategy,
	descriptions domain.StrategyDescriptions,
) AllocationService {
	return allocationServiceHandler{
		MarketDataService: marketDataService,
		Strategies:        strategies,
		Descriptions:      descriptions,
	}
}

var hundred = decimal.NewFromInt(100)

// percentOf is part/whole as a percentage, 0 when whole is 0
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// quantityAt is the whole number of shares amount buys at price
func quantityAt(amount decimal.Decimal, price float64, ok bool) int64 {
	if !ok || price <= 0 {
		return 0
	}
	return amount.Div(decimal.NewFromFloat(price)).Floor().IntPart()
}

// Computes what the portfolio should hold across every strategy, given
// the capital to split between them. A strategy that cannot be evaluated
// is recorded as a failure and contributes nothing.
func (h allocationServiceHandler) ComputeTargetPortfolio(ctx context.Context, capital decimal.Decimal) (*ComputeTargetPortfolioResponse, error) {
	log := logger.FromContext(ctx)
	profile, _ := domain.GetProfile(ctx)

	if capital.IsNegative() {
		return nil, fmt.Errorf("cannot compute target portfolio with negative capital %s", capital.String())
	}

	_, endSpan := profile.StartNewSpan("warming market data")
	warm := l1_service.WarmInput{}
	for _, s := range h.Strategies {
		warm = warm.Merge(s.Engine.RequiredInputs())
		warm = warm.Merge(l1_service.WarmInput{Quotes: s.Engine.Tickers()})
	}
	if err := h.MarketDataService.Warm(ctx, warm); err != nil {
		return nil, err
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("evaluating strategies")
	set := domain.StrategyAllocationSet{
		Allocations: []*domain.StrategyAllocation{},
		Failures:    []domain.StrategyFailure{},
	}
	for _, s := range h.Strategies {
		strategyCapital := capital.Mul(decimal.NewFromFloat(s.Weight))
		allocation, err := s.Engine.ComputeAllocation(ctx, strategyCapital)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !errors.Is(err, domain.ErrInsufficientSignalData) {
				err = fmt.Errorf("%w: %w", domain.ErrInsufficientSignalData, err)
			}
			log.Errorf("strategy %s failed: %v", s.Engine.Name(), err)
			set.Failures = append(set.Failures, domain.StrategyFailure{
				Strategy: s.Engine.Name(),
				Err:      err,
			})
			continue
		}
		set.Allocations = append(set.Allocations, allocation)
	}
	endSpan()

	symbols := []string{}
	seen := map[string]bool{}
	for _, a := range set.Allocations {
		for _, symbol := range a.Tickers {
			if !seen[symbol] {
				seen[symbol] = true
				symbols = append(symbols, symbol)
			}
		}
	}
	prices, err := h.MarketDataService.LatestPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices: %w", err)
	}

	return &ComputeTargetPortfolioResponse{
		Allocations: set,
		Details:     h.strategyDetails(set, prices),
		Lines:       summaryLines(set, symbols, prices),
		Prices:      prices,
	}, nil
}

func (h allocationServiceHandler) strategyDetails(set domain.StrategyAllocationSet, prices map[string]float64) []domain.StrategyDetail {
	allocatedTotal := set.AllocatedTotal()

	details := []domain.StrategyDetail{}
	for _, a := range set.Allocations {
		strategyTotal := a.Total()
		for _, symbol := range a.Tickers {
			amount := a.Amount(symbol)
			price, ok := prices[symbol]

			detail := domain.StrategyDetail{
				Strategy:      a.Strategy,
				Description:   h.Descriptions.Describe(a.Strategy, symbol),
				Symbol:        symbol,
				Ratio:         percentOf(amount, strategyTotal),
				StrategyRatio: percentOf(strategyTotal, allocatedTotal),
				FinalRatio:    percentOf(amount, allocatedTotal),
				Amount:        amount,
				Quantity:      quantityAt(amount, price, ok),
			}
			if ok {
				detail.Price = util.FloatPointer(price)
			}

			if a.Momentum != nil {
				detail.Returns = map[string]*float64{}
				if m, ok := a.Momentum[symbol]; ok {
					for label, r := range m.Returns {
						detail.Returns[label] = util.FloatPointer(r * 100)
					}
					detail.Score = util.FloatPointer(m.Score)
				}
			}

			details = append(details, detail)
		}
	}

	return details
}

// summaryLines totals amounts per ticker across strategies, in first-seen
// order
func summaryLines(set domain.StrategyAllocationSet, symbols []string, prices map[string]float64) []domain.SummaryLine {
	totals := map[string]decimal.Decimal{}
	for _, a := range set.Allocations {
		for _, symbol := range a.Tickers {
			totals[symbol] = totals[symbol].Add(a.Amount(symbol))
		}
	}

	lines := []domain.SummaryLine{}
	for _, symbol := range symbols {
		price, ok := prices[symbol]
		lines = append(lines, domain.SummaryLine{
			Symbol:   symbol,
			Quantity: quantityAt(totals[symbol], price, ok),
			Amount:   totals[symbol],
		})
	}
	return lines
}
