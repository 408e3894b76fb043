package repository

import (
	"context"
	"fmt"
	"time"

	"tacticalalloc/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// PriceHistoryRepository downloads daily adjusted closes
type PriceHistoryRepository interface {
	GetPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

type priceHistoryRepositoryHandler struct{}

func NewPriceHistoryRepository() PriceHistoryRepository {
	return priceHistoryRepositoryHandler{}
}

func (h priceHistoryRepositoryHandler) GetPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	// yahoo treats end as exclusive
	chartEnd := end.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&chartEnd),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bar := iter.Bar()
		price := bar.AdjClose.InexactFloat64()
		if price <= 0 {
			price = bar.Close.InexactFloat64()
		}
		if price <= 0 {
			continue
		}
		ts := time.Unix(int64(bar.Timestamp), 0).UTC()
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  price,
			Date:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to get prices for %s: %w", domain.ErrProviderError, symbol, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no prices for %s between %s and %s", domain.ErrDataUnavailable, symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return out, nil
}
