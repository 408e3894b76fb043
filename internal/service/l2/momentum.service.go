package l2_service

import (
	"context"
	"fmt"
	"time"

	"tacticalalloc/internal/calculator"
	"tacticalalloc/internal/domain"
	l1_service "tacticalalloc/internal/service/l1"
)

// MomentumService answers return and momentum questions relative to a
// fixed as-of date. Every horizon for a symbol is read from one window
// download, so the provider sees a single request per symbol.
type MomentumService interface {
	GetReturn(ctx context.Context, symbol string, lookback domain.Lookback) (float64, error)
	CalculateMomentumScore(ctx context.Context, symbol string) (*domain.MomentumScore, error)
	RequiredInputs(symbols []string) l1_service.WarmInput
}

type momentumServiceHandler struct {
	MarketDataService l1_service.MarketDataService
	AsOf              time.Time
}

func NewMomentumService(marketDataService l1_service.MarketDataService, asOf time.Time) MomentumService {
	return momentumServiceHandler{
		MarketDataService: marketDataService,
		AsOf:              asOf,
	}
}

func (h momentumServiceHandler) window() (time.Time, time.Time) {
	start := domain.TwelveMonths.StartFrom(h.AsOf).AddDate(0, 0, -calculator.MaxStaleDays)
	return start, h.AsOf
}

func (h momentumServiceHandler) RequiredInputs(symbols []string) l1_service.WarmInput {
	start, end := h.window()
	in := l1_service.WarmInput{}
	for _, symbol := range symbols {
		in.PriceSeries = append(in.PriceSeries, l1_service.PriceSeriesInput{
			Symbol: symbol,
			Start:  start,
			End:    end,
		})
	}
	return in
}

func (h momentumServiceHandler) GetReturn(ctx context.Context, symbol string, lookback domain.Lookback) (float64, error) {
	start, end := h.window()
	prices, err := h.MarketDataService.PriceSeries(ctx, symbol, start, end)
	if err != nil {
		return 0, err
	}

	r, err := calculator.ReturnOverLookback(prices, h.AsOf, lookback)
	if err != nil {
		return 0, fmt.Errorf("failed to compute %s return for %s: %w", lookback.Label, symbol, err)
	}
	return r, nil
}

func (h momentumServiceHandler) CalculateMomentumScore(ctx context.Context, symbol string) (*domain.MomentumScore, error) {
	returns := map[string]float64{}
	for _, lookback := range domain.MomentumLookbacks {
		r, err := h.GetReturn(ctx, symbol, lookback)
		if err != nil {
			return nil, err
		}
		returns[lookback.Label] = r
	}

	score, err := calculator.MomentumScore(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute momentum score for %s: %w", symbol, err)
	}

	return &domain.MomentumScore{
		Symbol:  symbol,
		Returns: returns,
		Score:   score,
	}, nil
}
