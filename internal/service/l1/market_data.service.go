package l1_service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"tacticalalloc/internal/calculator"
	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/repository"
	"tacticalalloc/internal/util"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

/**

MarketDataService is scoped to a single rebalance run. Every answer it
gives, including failures, is remembered for the rest of the run so the
strategies and the report all see the same numbers and the providers are
hit once per distinct request.

*/

type MarketDataService interface {
	PriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	LatestPrice(ctx context.Context, symbol string) (float64, error)
	// LatestPrices leaves out symbols without a usable quote
	LatestPrices(ctx context.Context, symbols []string) (map[string]float64, error)
	MacroSeries(ctx context.Context, seriesID string, start, end time.Time) ([]domain.SeriesObservation, error)
	Warm(ctx context.Context, in WarmInput) error
}

type PriceSeriesInput struct {
	Symbol string
	Start  time.Time
	End    time.Time
}

type MacroSeriesInput struct {
	SeriesID string
	Start    time.Time
	End      time.Time
}

type WarmInput struct {
	PriceSeries []PriceSeriesInput
	Macro       []MacroSeriesInput
	Quotes      []string
}

// Merge appends other to in, dropping exact duplicates
func (in WarmInput) Merge(other WarmInput) WarmInput {
	seen := map[string]bool{}
	out := WarmInput{}
	for _, p := range append(append([]PriceSeriesInput{}, in.PriceSeries...), other.PriceSeries...) {
		k := priceSeriesKey(p.Symbol, p.Start, p.End)
		if !seen[k] {
			seen[k] = true
			out.PriceSeries = append(out.PriceSeries, p)
		}
	}
	for _, m := range append(append([]MacroSeriesInput{}, in.Macro...), other.Macro...) {
		k := macroSeriesKey(m.SeriesID, m.Start, m.End)
		if !seen[k] {
			seen[k] = true
			out.Macro = append(out.Macro, m)
		}
	}
	for _, q := range append(append([]string{}, in.Quotes...), other.Quotes...) {
		k := quoteKey(q)
		if !seen[k] {
			seen[k] = true
			out.Quotes = append(out.Quotes, q)
		}
	}
	return out
}

type MarketDataOptions struct {
	Workers       int
	Timeout       time.Duration
	MaxAttempts   uint64
	RetryInterval time.Duration
}

func DefaultMarketDataOptions() MarketDataOptions {
	return MarketDataOptions{
		Workers:       4,
		Timeout:       20 * time.Second,
		MaxAttempts:   3,
		RetryInterval: 500 * time.Millisecond,
	}
}

type memoEntry struct {
	value any
	err   error
}

type marketDataServiceHandler struct {
	PriceHistoryRepository repository.PriceHistoryRepository
	QuoteRepository        repository.QuoteRepository
	MacroSeriesRepository  repository.MacroSeriesRepository
	Options                MarketDataOptions

	mu    sync.RWMutex
	memo  map[string]memoEntry
	group singleflight.Group
}

func NewMarketDataService(
	priceHistoryRepository repository.PriceHistoryRepository,
	quoteRepository repository.QuoteRepository,
	macroSeriesRepository repository.MacroSeriesRepository,
	options MarketDataOptions,
) MarketDataService {
	defaults := DefaultMarketDataOptions()
	if options.Workers < 1 {
		options.Workers = defaults.Workers
	}
	if options.Timeout <= 0 {
		options.Timeout = defaults.Timeout
	}
	if options.MaxAttempts < 1 {
		options.MaxAttempts = defaults.MaxAttempts
	}
	if options.RetryInterval <= 0 {
		options.RetryInterval = defaults.RetryInterval
	}

	return &marketDataServiceHandler{
		PriceHistoryRepository: priceHistoryRepository,
		QuoteRepository:        quoteRepository,
		MacroSeriesRepository:  macroSeriesRepository,
		Options:                options,
		memo:                   map[string]memoEntry{},
	}
}

func priceSeriesKey(symbol string, start, end time.Time) string {
	return fmt.Sprintf("prices|%s|%s|%s", symbol, util.DateKey(start), util.DateKey(end))
}

func macroSeriesKey(seriesID string, start, end time.Time) string {
	return fmt.Sprintf("macro|%s|%s|%s", seriesID, util.DateKey(start), util.DateKey(end))
}

func quoteKey(symbol string) string {
	return "quote|" + symbol
}

func (h *marketDataServiceHandler) get(key string) (memoEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.memo[key]
	return e, ok
}

func (h *marketDataServiceHandler) set(key string, value any, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.memo[key] = memoEntry{value: value, err: err}
}

// load serves key from the memo, or runs fetch once across all concurrent
// callers and remembers the outcome. Cancellation of the caller's context
// is never remembered.
func (h *marketDataServiceHandler) load(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	if e, ok := h.get(key); ok {
		return e.value, e.err
	}

	v, err, _ := h.group.Do(key, func() (any, error) {
		if e, ok := h.get(key); ok {
			return e.value, e.err
		}
		value, err := h.fetchWithRetry(ctx, key, fetch)
		if err != nil && ctx.Err() != nil {
			return nil, err
		}
		h.set(key, value, err)
		return value, err
	})

	return v, err
}

func (h *marketDataServiceHandler) fetchWithRetry(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	log := logger.FromContext(ctx)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = h.Options.RetryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, h.Options.MaxAttempts-1), ctx)

	attempt := 0
	return backoff.RetryWithData[any](func() (any, error) {
		attempt++
		value, err := h.fetchWithTimeout(ctx, key, fetch)
		if err == nil {
			return value, nil
		}
		if ctx.Err() != nil || !errors.Is(err, domain.ErrProviderError) {
			return nil, backoff.Permanent(err)
		}
		log.Warnf("attempt %d/%d for %s failed: %v", attempt, h.Options.MaxAttempts, key, err)
		return nil, err
	}, policy)
}

// fetchWithTimeout bounds a single provider call. Providers that ignore
// context are abandoned rather than waited on.
func (h *marketDataServiceHandler) fetchWithTimeout(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, h.Options.Timeout)
	defer cancel()

	type result struct {
		value any
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		value, err := fetch(attemptCtx)
		ch <- result{value: value, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil && attemptCtx.Err() != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %s timed out after %s", domain.ErrProviderError, key, h.Options.Timeout)
		}
		return r.value, r.err
	case <-attemptCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s timed out after %s", domain.ErrProviderError, key, h.Options.Timeout)
	}
}

func (h *marketDataServiceHandler) PriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	v, err := h.load(ctx, priceSeriesKey(symbol, start, end), func(ctx context.Context) (any, error) {
		prices, err := h.PriceHistoryRepository.GetPrices(ctx, symbol, start, end)
		if err != nil {
			return nil, err
		}
		calculator.SortPrices(prices)
		return prices, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get price series for %s: %w", symbol, err)
	}
	return v.([]domain.AssetPrice), nil
}

func (h *marketDataServiceHandler) MacroSeries(ctx context.Context, seriesID string, start, end time.Time) ([]domain.SeriesObservation, error) {
	v, err := h.load(ctx, macroSeriesKey(seriesID, start, end), func(ctx context.Context) (any, error) {
		observations, err := h.MacroSeriesRepository.GetSeries(ctx, seriesID, start, end)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(observations, func(i, j int) bool {
			return observations[i].Date.Before(observations[j].Date)
		})
		return observations, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get macro series %s: %w", seriesID, err)
	}
	return v.([]domain.SeriesObservation), nil
}

func (h *marketDataServiceHandler) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	if err := h.loadQuotes(ctx, []string{symbol}); err != nil {
		return 0, err
	}
	e, ok := h.get(quoteKey(symbol))
	if !ok {
		return 0, fmt.Errorf("%w: no quote for %s", domain.ErrDataUnavailable, symbol)
	}
	if e.err != nil {
		return 0, e.err
	}
	return e.value.(float64), nil
}

func (h *marketDataServiceHandler) LatestPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	if err := h.loadQuotes(ctx, symbols); err != nil {
		return nil, err
	}
	out := map[string]float64{}
	for _, symbol := range symbols {
		if e, ok := h.get(quoteKey(symbol)); ok && e.err == nil {
			out[symbol] = e.value.(float64)
		}
	}
	return out, nil
}

// loadQuotes fetches every symbol without a memoised quote in one provider
// call and records a per-symbol outcome. Only cancellation is returned.
func (h *marketDataServiceHandler) loadQuotes(ctx context.Context, symbols []string) error {
	missing := []string{}
	for _, symbol := range symbols {
		if _, ok := h.get(quoteKey(symbol)); !ok {
			missing = append(missing, symbol)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	key := "quotes|" + strings.Join(missing, ",")
	_, err := h.load(ctx, key, func(ctx context.Context) (any, error) {
		return h.QuoteRepository.GetLatestPrices(ctx, missing)
	})
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	v, _ := h.get(key)
	prices, _ := v.value.(map[string]float64)
	for _, symbol := range missing {
		if _, ok := h.get(quoteKey(symbol)); ok {
			continue
		}
		if err != nil {
			h.set(quoteKey(symbol), nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err))
			continue
		}
		price, ok := prices[symbol]
		if !ok || price <= 0 {
			h.set(quoteKey(symbol), nil, fmt.Errorf("%w: no usable quote for %s", domain.ErrDataUnavailable, symbol))
			continue
		}
		h.set(quoteKey(symbol), price, nil)
	}

	return nil
}

// Warm loads everything in the input through a bounded worker pool. Fetch
// failures are remembered for the callers that need the data; Warm itself
// only fails when ctx is cancelled.
func (h *marketDataServiceHandler) Warm(ctx context.Context, in WarmInput) error {
	log := logger.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.Options.Workers)

	for _, p := range in.PriceSeries {
		p := p
		g.Go(func() error {
			if _, err := h.PriceSeries(gctx, p.Symbol, p.Start, p.End); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warnf("failed to warm %s: %v", p.Symbol, err)
			}
			return nil
		})
	}
	for _, m := range in.Macro {
		m := m
		g.Go(func() error {
			if _, err := h.MacroSeries(gctx, m.SeriesID, m.Start, m.End); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warnf("failed to warm %s: %v", m.SeriesID, err)
			}
			return nil
		})
	}
	if len(in.Quotes) > 0 {
		g.Go(func() error {
			return h.loadQuotes(gctx, in.Quotes)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to warm market data: %w", err)
	}

	return nil
}
