package l1_service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"tacticalalloc/internal/domain"
	mock_repository "tacticalalloc/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testOptions() MarketDataOptions {
	return MarketDataOptions{
		Workers:       4,
		Timeout:       time.Second,
		MaxAttempts:   3,
		RetryInterval: time.Millisecond,
	}
}

func Test_marketDataServiceHandler_PriceSeries(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("memoises across calls and sorts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)

		handler := NewMarketDataService(priceHistoryRepository, nil, nil, testOptions())

		priceHistoryRepository.EXPECT().
			GetPrices(gomock.Any(), "VOO", start, end).
			Return([]domain.AssetPrice{
				{Symbol: "VOO", Price: 2, Date: end},
				{Symbol: "VOO", Price: 1, Date: start},
			}, nil).
			Times(1)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := handler.PriceSeries(ctx, "VOO", start, end)
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		prices, err := handler.PriceSeries(ctx, "VOO", start, end)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.AssetPrice{
					{Symbol: "VOO", Price: 1, Date: start},
					{Symbol: "VOO", Price: 2, Date: end},
				},
				prices,
			),
		)
	})

	t.Run("retries provider errors up to the attempt limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)

		handler := NewMarketDataService(priceHistoryRepository, nil, nil, testOptions())

		priceHistoryRepository.EXPECT().
			GetPrices(gomock.Any(), "VOO", start, end).
			Return(nil, fmt.Errorf("%w: 502", domain.ErrProviderError)).
			Times(3)

		_, err := handler.PriceSeries(ctx, "VOO", start, end)
		require.ErrorIs(t, err, domain.ErrProviderError)

		// the failure is remembered
		_, err = handler.PriceSeries(ctx, "VOO", start, end)
		require.ErrorIs(t, err, domain.ErrProviderError)
	})

	t.Run("recovers after a transient failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)

		handler := NewMarketDataService(priceHistoryRepository, nil, nil, testOptions())

		gomock.InOrder(
			priceHistoryRepository.EXPECT().
				GetPrices(gomock.Any(), "VOO", start, end).
				Return(nil, fmt.Errorf("%w: 502", domain.ErrProviderError)),
			priceHistoryRepository.EXPECT().
				GetPrices(gomock.Any(), "VOO", start, end).
				Return([]domain.AssetPrice{{Symbol: "VOO", Price: 1, Date: start}}, nil),
		)

		prices, err := handler.PriceSeries(ctx, "VOO", start, end)
		require.NoError(t, err)
		require.Len(t, prices, 1)
	})

	t.Run("unavailable data is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)

		handler := NewMarketDataService(priceHistoryRepository, nil, nil, testOptions())

		priceHistoryRepository.EXPECT().
			GetPrices(gomock.Any(), "NOPE", start, end).
			Return(nil, fmt.Errorf("%w: no prices", domain.ErrDataUnavailable)).
			Times(1)

		_, err := handler.PriceSeries(ctx, "NOPE", start, end)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("slow provider times out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)

		opts := testOptions()
		opts.Timeout = 10 * time.Millisecond
		opts.MaxAttempts = 1
		handler := NewMarketDataService(priceHistoryRepository, nil, nil, opts)

		priceHistoryRepository.EXPECT().
			GetPrices(gomock.Any(), "VOO", start, end).
			DoAndReturn(func(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err := handler.PriceSeries(ctx, "VOO", start, end)
		require.ErrorIs(t, err, domain.ErrProviderError)
	})

	t.Run("cancellation is not remembered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)

		handler := NewMarketDataService(priceHistoryRepository, nil, nil, testOptions())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		priceHistoryRepository.EXPECT().
			GetPrices(gomock.Any(), "VOO", start, end).
			DoAndReturn(func(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return []domain.AssetPrice{{Symbol: "VOO", Price: 1, Date: start}}, nil
			}).
			AnyTimes()

		_, err := handler.PriceSeries(cancelled, "VOO", start, end)
		require.Error(t, err)

		prices, err := handler.PriceSeries(ctx, "VOO", start, end)
		require.NoError(t, err)
		require.Len(t, prices, 1)
	})
}

func Test_marketDataServiceHandler_LatestPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("batches missing quotes and memoises each", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)

		handler := NewMarketDataService(nil, quoteRepository, nil, testOptions())

		quoteRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"VOO", "EFA", "BIL"}).
			Return(map[string]float64{"VOO": 500, "EFA": 0}, nil).
			Times(1)

		prices, err := handler.LatestPrices(ctx, []string{"VOO", "EFA", "BIL"})
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(map[string]float64{"VOO": 500}, prices))

		price, err := handler.LatestPrice(ctx, "VOO")
		require.NoError(t, err)
		require.Equal(t, 500.0, price)

		_, err = handler.LatestPrice(ctx, "EFA")
		require.ErrorIs(t, err, domain.ErrDataUnavailable)

		_, err = handler.LatestPrice(ctx, "BIL")
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("provider failure marks every requested symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)

		opts := testOptions()
		opts.MaxAttempts = 1
		handler := NewMarketDataService(nil, quoteRepository, nil, opts)

		quoteRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"VOO", "AGG"}).
			Return(nil, fmt.Errorf("%w: 500", domain.ErrProviderError)).
			Times(1)

		prices, err := handler.LatestPrices(ctx, []string{"VOO", "AGG"})
		require.NoError(t, err)
		require.Empty(t, prices)

		_, err = handler.LatestPrice(ctx, "AGG")
		require.ErrorIs(t, err, domain.ErrProviderError)
	})
}

func Test_marketDataServiceHandler_Warm(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	priceHistoryRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
	quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)
	macroSeriesRepository := mock_repository.NewMockMacroSeriesRepository(ctrl)

	handler := NewMarketDataService(priceHistoryRepository, quoteRepository, macroSeriesRepository, testOptions())

	for _, symbol := range []string{"VOO", "EFA", "AGG"} {
		priceHistoryRepository.EXPECT().
			GetPrices(gomock.Any(), symbol, start, end).
			Return([]domain.AssetPrice{{Symbol: symbol, Price: 1, Date: start}}, nil).
			Times(1)
	}
	macroSeriesRepository.EXPECT().
		GetSeries(gomock.Any(), "UNRATE", start, end).
		Return(nil, fmt.Errorf("%w: gone", domain.ErrDataUnavailable)).
		Times(1)
	quoteRepository.EXPECT().
		GetLatestPrices(gomock.Any(), []string{"VOO"}).
		Return(map[string]float64{"VOO": 500}, nil).
		Times(1)

	in := WarmInput{
		PriceSeries: []PriceSeriesInput{
			{Symbol: "VOO", Start: start, End: end},
			{Symbol: "EFA", Start: start, End: end},
		},
	}.Merge(WarmInput{
		PriceSeries: []PriceSeriesInput{
			{Symbol: "VOO", Start: start, End: end},
			{Symbol: "AGG", Start: start, End: end},
		},
		Macro:  []MacroSeriesInput{{SeriesID: "UNRATE", Start: start, End: end}},
		Quotes: []string{"VOO", "VOO"},
	})
	require.Len(t, in.PriceSeries, 3)
	require.Len(t, in.Quotes, 1)

	err := handler.Warm(ctx, in)
	require.NoError(t, err)

	// served from memo
	_, err = handler.PriceSeries(ctx, "AGG", start, end)
	require.NoError(t, err)
	_, err = handler.MacroSeries(ctx, "UNRATE", start, end)
	require.ErrorIs(t, err, domain.ErrDataUnavailable)
	price, err := handler.LatestPrice(ctx, "VOO")
	require.NoError(t, err)
	require.Equal(t, 500.0, price)
}
