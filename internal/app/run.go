package app

import (
	"context"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/repository"
	l1_service "tacticalalloc/internal/service/l1"
	l2_service "tacticalalloc/internal/service/l2"
	l3_service "tacticalalloc/internal/service/l3"
)

type StrategyWeights struct {
	ODM float64
	VAA float64
	LAA float64
}

func DefaultStrategyWeights() StrategyWeights {
	return StrategyWeights{ODM: 0.333, VAA: 0.333, LAA: 0.334}
}

type RunOptions struct {
	MarketData   l1_service.MarketDataOptions
	Signals      l2_service.SignalOptions
	Weights      StrategyWeights
	Descriptions domain.StrategyDescriptions
}

// NewRunFactory wires a fresh market data layer and the three strategy
// engines for every run. Repositories are shared across runs.
func NewRunFactory(
	priceHistoryRepository repository.PriceHistoryRepository,
	quoteRepository repository.QuoteRepository,
	macroSeriesRepository repository.MacroSeriesRepository,
	options RunOptions,
) NewRunFunc {
	if options.Descriptions == nil {
		options.Descriptions = domain.DefaultStrategyDescriptions()
	}
	if options.Signals == (l2_service.SignalOptions{}) {
		options.Signals = l2_service.DefaultSignalOptions()
	}

	return func(asOf time.Time) RunServices {
		marketDataService := l1_service.NewMarketDataService(
			priceHistoryRepository,
			quoteRepository,
			macroSeriesRepository,
			options.MarketData,
		)
		momentumService := l2_service.NewMomentumService(marketDataService, asOf)
		signalService := l2_service.NewSignalService(marketDataService, asOf, options.Signals)

		strategies := []l3_service.WeightedStrategy{
			{Engine: l3_service.NewODMStrategy(momentumService), Weight: options.Weights.ODM},
			{Engine: l3_service.NewVAAStrategy(momentumService), Weight: options.Weights.VAA},
			{Engine: l3_service.NewLAAStrategy(signalService), Weight: options.Weights.LAA},
		}

		return RunServices{
			MarketDataService: marketDataService,
			AllocationService: l3_service.NewAllocationService(marketDataService, strategies, options.Descriptions),
		}
	}
}

// RebalanceJob runs a scheduled rebalance. There is nobody to prompt, so a
// run with no holdings fails.
type RebalanceJob struct {
	Rebalancer RebalancerHandler
}

func (j RebalanceJob) Name() string {
	return "rebalance"
}

func (j RebalanceJob) Run(ctx context.Context) error {
	report, err := j.Rebalancer.Rebalance(ctx, RebalanceInput{})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Infof(
		"scheduled rebalance %s allocated %s with %d failed strategies, ledger %s",
		report.RunID,
		report.TotalValue.StringFixed(2),
		len(report.Failures),
		report.LedgerFile,
	)
	return nil
}
