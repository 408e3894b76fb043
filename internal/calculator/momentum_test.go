package calculator

import (
	"errors"
	"testing"
	"time"

	"tacticalalloc/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func dailyPrices(symbol string, start time.Time, values ...float64) []domain.AssetPrice {
	out := []domain.AssetPrice{}
	for i, v := range values {
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  v,
			Date:   start.AddDate(0, 0, i),
		})
	}
	return out
}

func TestMomentumScore(t *testing.T) {
	t.Run("weights horizons 12/4/2/1", func(t *testing.T) {
		score, err := MomentumScore(map[string]float64{
			"1M":  0.02,
			"3M":  0.05,
			"6M":  0.10,
			"12M": 0.20,
		})
		require.NoError(t, err)
		require.InDelta(t, 0.84, score, 1e-9)
	})

	t.Run("mixed sign horizons", func(t *testing.T) {
		score, err := MomentumScore(map[string]float64{
			"1M":  0.05,
			"3M":  0.04,
			"6M":  -0.01,
			"12M": 0.10,
		})
		require.NoError(t, err)
		require.InDelta(t, 0.84, score, 1e-9)
	})

	t.Run("missing horizon is unavailable", func(t *testing.T) {
		_, err := MomentumScore(map[string]float64{
			"1M":  0.02,
			"3M":  0.05,
			"12M": 0.20,
		})
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("negative returns", func(t *testing.T) {
		score, err := MomentumScore(map[string]float64{
			"1M":  -0.01,
			"3M":  0,
			"6M":  0,
			"12M": 0,
		})
		require.NoError(t, err)
		require.InDelta(t, -0.12, score, 1e-9)
	})
}

func TestPriceReturn(t *testing.T) {
	r, err := PriceReturn(100, 110)
	require.NoError(t, err)
	require.InDelta(t, 0.1, r, 1e-9)

	_, err = PriceReturn(0, 110)
	require.True(t, errors.Is(err, domain.ErrDataUnavailable))
}

func TestPriceOnOrBefore(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prices := []domain.AssetPrice{
		{Symbol: "VOO", Price: 1, Date: start},
		{Symbol: "VOO", Price: 2, Date: start.AddDate(0, 0, 3)},
		{Symbol: "VOO", Price: 3, Date: start.AddDate(0, 0, 20)},
	}

	t.Run("exact date", func(t *testing.T) {
		p, ok := PriceOnOrBefore(prices, start.AddDate(0, 0, 3))
		require.True(t, ok)
		require.Equal(t, 2.0, p.Price)
	})

	t.Run("walks back over gap", func(t *testing.T) {
		p, ok := PriceOnOrBefore(prices, start.AddDate(0, 0, 6))
		require.True(t, ok)
		require.Equal(t, 2.0, p.Price)
	})

	t.Run("too stale", func(t *testing.T) {
		_, ok := PriceOnOrBefore(prices, start.AddDate(0, 0, 15))
		require.False(t, ok)
	})

	t.Run("before first observation", func(t *testing.T) {
		_, ok := PriceOnOrBefore(prices, start.AddDate(0, 0, -1))
		require.False(t, ok)
	})

	t.Run("time of day on same date", func(t *testing.T) {
		p, ok := PriceOnOrBefore(prices, start.AddDate(0, 0, 20).Add(15*time.Hour))
		require.True(t, ok)
		require.Equal(t, 3.0, p.Price)
	})
}

func TestReturnOverLookback(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("one month return", func(t *testing.T) {
		prices := []domain.AssetPrice{
			{Symbol: "VOO", Price: 100, Date: asOf.AddDate(0, 0, -30)},
			{Symbol: "VOO", Price: 105, Date: asOf.AddDate(0, 0, -10)},
			{Symbol: "VOO", Price: 110, Date: asOf},
		}
		r, err := ReturnOverLookback(prices, asOf, domain.OneMonth)
		require.NoError(t, err)
		require.InDelta(t, 0.1, r, 1e-9)
	})

	t.Run("single observation", func(t *testing.T) {
		prices := []domain.AssetPrice{
			{Symbol: "VOO", Price: 110, Date: asOf},
		}
		_, err := ReturnOverLookback(prices, asOf, domain.OneMonth)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("history does not reach start", func(t *testing.T) {
		prices := dailyPrices("VOO", asOf.AddDate(0, 0, -20), 1, 2, 3)
		_, err := ReturnOverLookback(prices, asOf, domain.ThreeMonths)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("stale end", func(t *testing.T) {
		prices := dailyPrices("VOO", asOf.AddDate(0, 0, -40), 1, 2, 3)
		_, err := ReturnOverLookback(prices, asOf, domain.OneMonth)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})
}

func TestSortPrices(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prices := []domain.AssetPrice{
		{Symbol: "VOO", Price: 3, Date: start.AddDate(0, 0, 2)},
		{Symbol: "VOO", Price: 1, Date: start},
		{Symbol: "VOO", Price: 2, Date: start.AddDate(0, 0, 1)},
	}
	SortPrices(prices)
	require.Equal(t, "", cmp.Diff([]float64{1, 2, 3}, Closes(prices)))
}
