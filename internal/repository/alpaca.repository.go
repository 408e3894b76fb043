package repository

import (
	"context"
	"fmt"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaQuoteRepositoryHandler struct {
	MdClient *marketdata.Client
}

// NewAlpacaQuoteRepository serves latest quotes from alpaca market data.
// endpoint may be empty to use the default data url.
func NewAlpacaQuoteRepository(apiKey, apiSecret, endpoint string) QuoteRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaQuoteRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h alpacaQuoteRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]float64{}, nil
	}

	results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get latest alpaca quotes: %w", domain.ErrProviderError, err)
	}

	out := map[string]float64{}
	for symbol, result := range results {
		price := result.BidPrice
		if price <= 0 {
			price = result.AskPrice
		}
		if price <= 0 {
			log.Warnf("alpaca quote for %s has no positive bid or ask", symbol)
			continue
		}
		out[symbol] = price
	}

	return out, nil
}
