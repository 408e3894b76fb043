package calculator

import (
	"fmt"

	"tacticalalloc/internal/domain"

	"github.com/markcheno/go-talib"
	"github.com/montanaflynn/stats"
)

// SimpleMovingAverage returns the mean of the last period values
func SimpleMovingAverage(values []float64, period int) (float64, error) {
	if period < 1 {
		return 0, fmt.Errorf("invalid moving average period %d", period)
	}
	if len(values) < period {
		return 0, fmt.Errorf("%w: need %d observations for moving average, got %d", domain.ErrDataUnavailable, period, len(values))
	}
	sma := talib.Sma(values, period)
	return sma[len(sma)-1], nil
}

// TrailingMean averages the last n values
func TrailingMean(values []float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("invalid trailing window %d", n)
	}
	if len(values) < n {
		return 0, fmt.Errorf("%w: need %d observations for trailing mean, got %d", domain.ErrDataUnavailable, n, len(values))
	}
	mean, err := stats.Mean(values[len(values)-n:])
	if err != nil {
		return 0, fmt.Errorf("failed to compute trailing mean: %w", err)
	}
	return mean, nil
}

func Closes(prices []domain.AssetPrice) []float64 {
	out := make([]float64, 0, len(prices))
	for _, p := range prices {
		out = append(out, p.Price)
	}
	return out
}

func SeriesValues(observations []domain.SeriesObservation) []float64 {
	out := make([]float64, 0, len(observations))
	for _, o := range observations {
		out = append(out, o.Value)
	}
	return out
}
