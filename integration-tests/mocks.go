package integration_tests

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"tacticalalloc/internal/domain"
)

// growthSeries is a daily close series that compounds at a fixed rate, so
// every lookback return of a faster growing ticker is higher
func growthSeries(symbol string, from, to time.Time, base, dailyGrowth float64) []domain.AssetPrice {
	out := []domain.AssetPrice{}
	for d, i := from, 0; !d.After(to); d, i = d.AddDate(0, 0, 1), i+1 {
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   d,
			Price:  base * math.Pow(1+dailyGrowth, float64(i)),
		})
	}
	return out
}

type mockPriceHistoryRepository struct {
	series map[string][]domain.AssetPrice

	mu    sync.Mutex
	calls map[string]int
}

func newMockPriceHistoryRepository(from, to time.Time, growth map[string]float64) *mockPriceHistoryRepository {
	series := map[string][]domain.AssetPrice{}
	for symbol, g := range growth {
		series[symbol] = growthSeries(symbol, from, to, 100, g)
	}
	return &mockPriceHistoryRepository{
		series: series,
		calls:  map[string]int{},
	}
}

func (m *mockPriceHistoryRepository) GetPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	m.mu.Lock()
	m.calls[symbol]++
	m.mu.Unlock()

	out := []domain.AssetPrice{}
	for _, p := range m.series[symbol] {
		if !p.Date.Before(start) && !p.Date.After(end) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no prices for %s", domain.ErrDataUnavailable, symbol)
	}
	return out, nil
}

func (m *mockPriceHistoryRepository) Calls(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[symbol]
}

type mockQuoteRepository struct {
	prices map[string]float64
}

func (m *mockQuoteRepository) GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	out := map[string]float64{}
	for _, symbol := range symbols {
		if p, ok := m.prices[symbol]; ok {
			out[symbol] = p
		}
	}
	return out, nil
}

type mockMacroSeriesRepository struct {
	observations []domain.SeriesObservation
}

// newFallingUnemployment has monthly readings that drift down, so the latest
// reading sits under its trailing average
func newFallingUnemployment(from time.Time, months int) *mockMacroSeriesRepository {
	out := []domain.SeriesObservation{}
	for i := 0; i < months; i++ {
		out = append(out, domain.SeriesObservation{
			Date:  from.AddDate(0, i, 0),
			Value: 6.0 - 0.05*float64(i),
		})
	}
	return &mockMacroSeriesRepository{observations: out}
}

func (m *mockMacroSeriesRepository) GetSeries(ctx context.Context, seriesID string, start, end time.Time) ([]domain.SeriesObservation, error) {
	out := []domain.SeriesObservation{}
	for _, o := range m.observations {
		if !o.Date.Before(start) && !o.Date.After(end) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no observations for %s", domain.ErrDataUnavailable, seriesID)
	}
	return out, nil
}
