package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"

	"github.com/dgraph-io/ristretto"
	"github.com/piquette/finance-go/quote"
)

// QuoteRepository returns the latest known price per symbol. Symbols the
// provider has no usable price for are left out of the result.
type QuoteRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error)
}

type yahooQuoteRepositoryHandler struct{}

func NewYahooQuoteRepository() QuoteRepository {
	return yahooQuoteRepositoryHandler{}
}

func (h yahooQuoteRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	out := map[string]float64{}
	failed := []error{}
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, err := quote.Get(symbol)
		if err != nil {
			log.Warnf("failed to get quote for %s: %v", symbol, err)
			failed = append(failed, fmt.Errorf("failed to get quote for %s: %w", symbol, err))
			continue
		}
		if q == nil {
			log.Warnf("no quote returned for %s", symbol)
			continue
		}

		// fall back through the fields yahoo fills in outside market hours
		for _, price := range []float64{q.RegularMarketPrice, q.RegularMarketPreviousClose, q.RegularMarketOpen} {
			if price > 0 {
				out[symbol] = price
				break
			}
		}
		if _, ok := out[symbol]; !ok {
			log.Warnf("quote for %s has no positive price", symbol)
		}
	}

	// only a request where nothing came back is worth retrying
	if len(symbols) > 0 && len(failed) == len(symbols) {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderError, errors.Join(failed...))
	}

	return out, nil
}

type cachedQuoteRepositoryHandler struct {
	Inner QuoteRepository
	Cache *ristretto.Cache
	TTL   time.Duration
}

// NewCachedQuoteRepository keeps quotes from inner for ttl, so a long
// running server does not hit the provider for every request
func NewCachedQuoteRepository(inner QuoteRepository, ttl time.Duration) (QuoteRepository, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 12,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quote cache: %w", err)
	}
	return &cachedQuoteRepositoryHandler{
		Inner: inner,
		Cache: cache,
		TTL:   ttl,
	}, nil
}

func (h *cachedQuoteRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	out := map[string]float64{}
	misses := []string{}
	for _, symbol := range symbols {
		if v, ok := h.Cache.Get(symbol); ok {
			if price, ok := v.(float64); ok {
				out[symbol] = price
				continue
			}
		}
		misses = append(misses, symbol)
	}
	if len(misses) == 0 {
		return out, nil
	}

	fetched, err := h.Inner.GetLatestPrices(ctx, misses)
	if err != nil {
		return nil, err
	}
	for symbol, price := range fetched {
		h.Cache.SetWithTTL(symbol, price, 1, h.TTL)
		out[symbol] = price
	}
	h.Cache.Wait()

	return out, nil
}
