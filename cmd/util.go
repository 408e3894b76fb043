package cmd

import (
	"context"
	"fmt"
	"net/http"

	"tacticalalloc/api"
	"tacticalalloc/internal/app"
	"tacticalalloc/internal/repository"
	"tacticalalloc/internal/service"
	l1_service "tacticalalloc/internal/service/l1"
	"tacticalalloc/internal/util"
	"tacticalalloc/pkg/fred"

	"go.uber.org/zap"
)

type Dependencies struct {
	Config     *util.Config
	Logger     *zap.SugaredLogger
	Rebalancer app.RebalancerHandler
	ApiHandler *api.ApiHandler
}

func newQuoteRepository(cfg *util.Config, log *zap.SugaredLogger) (repository.QuoteRepository, error) {
	var quoteRepository repository.QuoteRepository
	if cfg.Alpaca.Enabled() {
		log.Info("using alpaca for latest quotes")
		quoteRepository = repository.NewAlpacaQuoteRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint)
	} else {
		quoteRepository = repository.NewYahooQuoteRepository()
	}

	if cfg.QuoteCacheTTL <= 0 {
		return quoteRepository, nil
	}
	cached, err := repository.NewCachedQuoteRepository(quoteRepository, cfg.QuoteCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote cache: %w", err)
	}
	return cached, nil
}

func InitializeDependencies(ctx context.Context, cfg *util.Config, log *zap.SugaredLogger) (*Dependencies, error) {
	quoteRepository, err := newQuoteRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	newRun := app.NewRunFactory(
		repository.NewPriceHistoryRepository(),
		quoteRepository,
		repository.NewMacroSeriesRepository(fred.NewClient(http.DefaultClient)),
		app.RunOptions{
			MarketData: l1_service.MarketDataOptions{
				Workers:     cfg.FetchWorkers,
				Timeout:     cfg.FetchTimeout,
				MaxAttempts: cfg.FetchAttempts,
			},
			Weights: app.StrategyWeights{
				ODM: cfg.Weights.ODM,
				VAA: cfg.Weights.VAA,
				LAA: cfg.Weights.LAA,
			},
		},
	)

	rebalancer := app.RebalancerHandler{
		LedgerRepository: repository.NewLedgerRepository(cfg.ResultDir),
		NewRun:           newRun,
	}

	if cfg.SES.Enabled() {
		emailRepository, err := repository.NewEmailRepository(ctx, cfg.SES.Region, cfg.SES.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
		rebalancer.EmailService = service.NewEmailService(emailRepository, cfg.SES.ToEmail)
	} else {
		log.Info("SES is not configured, rebalance reports will not be emailed")
	}

	return &Dependencies{
		Config:     cfg,
		Logger:     log,
		Rebalancer: rebalancer,
		ApiHandler: &api.ApiHandler{
			Rebalancer: rebalancer,
			Logger:     log,
		},
	}, nil
}
