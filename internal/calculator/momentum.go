package calculator

import (
	"fmt"
	"sort"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/util"
)

// MaxStaleDays is how far back a point lookup may walk to find the last
// trading day before a requested date
const MaxStaleDays = 7

var momentumWeights = map[string]float64{
	domain.OneMonth.Label:     12,
	domain.ThreeMonths.Label:  4,
	domain.SixMonths.Label:    2,
	domain.TwelveMonths.Label: 1,
}

func PriceReturn(start, end float64) (float64, error) {
	if start <= 0 {
		return 0, fmt.Errorf("%w: start price must be positive, got %f", domain.ErrDataUnavailable, start)
	}
	return (end / start) - 1, nil
}

// SortPrices orders prices ascending by date, in place
func SortPrices(prices []domain.AssetPrice) {
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].Date.Before(prices[j].Date)
	})
}

// PriceOnOrBefore returns the latest observation dated on or before date
// and no more than MaxStaleDays older than it. prices must be sorted.
func PriceOnOrBefore(prices []domain.AssetPrice, date time.Time) (*domain.AssetPrice, bool) {
	i := sort.Search(len(prices), func(i int) bool {
		return !util.DateLte(prices[i].Date, date)
	})
	if i == 0 {
		return nil, false
	}
	candidate := prices[i-1]
	if candidate.Date.Before(date.AddDate(0, 0, -MaxStaleDays)) {
		return nil, false
	}
	return &candidate, true
}

// ReturnOverLookback computes the return between the observation nearest
// asOf and the one nearest asOf - lookback
func ReturnOverLookback(prices []domain.AssetPrice, asOf time.Time, lookback domain.Lookback) (float64, error) {
	if len(prices) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 observations for %s return, got %d", domain.ErrDataUnavailable, lookback.Label, len(prices))
	}

	end, ok := PriceOnOrBefore(prices, asOf)
	if !ok {
		return 0, fmt.Errorf("%w: no observation near %s", domain.ErrDataUnavailable, util.DateKey(asOf))
	}
	startDate := lookback.StartFrom(asOf)
	start, ok := PriceOnOrBefore(prices, startDate)
	if !ok {
		return 0, fmt.Errorf("%w: no observation near %s", domain.ErrDataUnavailable, util.DateKey(startDate))
	}
	if !start.Date.Before(end.Date) {
		return 0, fmt.Errorf("%w: %s return has identical start and end observation", domain.ErrDataUnavailable, lookback.Label)
	}

	return PriceReturn(start.Price, end.Price)
}

// MomentumScore weights returns keyed by lookback label as 12/4/2/1 on
// 1M/3M/6M/12M. Every horizon must be present.
func MomentumScore(returns map[string]float64) (float64, error) {
	score := 0.0
	for _, lookback := range domain.MomentumLookbacks {
		r, ok := returns[lookback.Label]
		if !ok {
			return 0, fmt.Errorf("%w: missing %s return", domain.ErrDataUnavailable, lookback.Label)
		}
		score += momentumWeights[lookback.Label] * r
	}
	return score, nil
}
