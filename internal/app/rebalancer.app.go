package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/repository"
	"tacticalalloc/internal/service"
	l1_service "tacticalalloc/internal/service/l1"
	l3_service "tacticalalloc/internal/service/l3"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInitialCapitalRequired = errors.New("initial capital is required when there are no holdings")

// ledgerMu serializes runs in this process. The api and the scheduler share
// one ledger directory and a run reads then rewrites today's file.
var ledgerMu sync.Mutex

// RunServices are the services scoped to a single run. Market data fetched
// through them is shared by every strategy in the run and dropped after.
type RunServices struct {
	MarketDataService l1_service.MarketDataService
	AllocationService l3_service.AllocationService
}

type NewRunFunc func(asOf time.Time) RunServices

// CapitalPrompter asks for the starting capital on a first run
type CapitalPrompter func(ctx context.Context) (decimal.Decimal, error)

type RebalancerHandler struct {
	LedgerRepository repository.LedgerRepository
	NewRun           NewRunFunc
	// optional
	EmailService     service.EmailService
	PromptCapital    CapitalPrompter
	Now              func() time.Time
}

type RebalanceInput struct {
	// used only when there are no holdings to value
	InitialCapital *decimal.Decimal
	// compute and report without writing the ledger or emailing
	DryRun    bool
	SkipEmail bool
}

func (h RebalancerHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

// loadHoldings values the newest ledger at the latest quotes. A ledger that
// cannot be read is treated like a first run.
func (h RebalancerHandler) loadHoldings(ctx context.Context, marketDataService l1_service.MarketDataService) (*domain.PortfolioSnapshot, error) {
	log := logger.FromContext(ctx)

	positions, source, err := h.LedgerRepository.LatestPositions(ctx)
	if errors.Is(err, domain.ErrLedgerFormat) {
		log.Warnf("ignoring unreadable ledger %s: %v", source, err)
		positions = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	if len(positions) == 0 {
		return &domain.PortfolioSnapshot{
			Holdings:   []domain.Holding{},
			TotalValue: decimal.Zero,
			Source:     source,
		}, nil
	}

	symbols, quantities := domain.AggregatePositions(positions)
	prices, err := marketDataService.LatestPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices for holdings: %w", err)
	}
	for _, symbol := range symbols {
		if _, ok := prices[symbol]; !ok {
			log.Warnf("no price for held %s, leaving it out of the total", symbol)
		}
	}

	snapshot := domain.NewPortfolioSnapshot(symbols, quantities, prices)
	snapshot.Source = source

	return snapshot, nil
}

func (h RebalancerHandler) CurrentHoldings(ctx context.Context) (*domain.PortfolioSnapshot, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	run := h.NewRun(h.now())
	return h.loadHoldings(ctx, run.MarketDataService)
}

func (h RebalancerHandler) capital(ctx context.Context, snapshot *domain.PortfolioSnapshot, in RebalanceInput) (decimal.Decimal, error) {
	if !snapshot.IsEmpty() {
		return snapshot.TotalValue, nil
	}

	var capital decimal.Decimal
	switch {
	case in.InitialCapital != nil:
		capital = *in.InitialCapital
	case h.PromptCapital != nil:
		c, err := h.PromptCapital(ctx)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to read initial capital: %w", err)
		}
		capital = c
	default:
		return decimal.Zero, ErrInitialCapitalRequired
	}

	if !capital.IsPositive() {
		return decimal.Zero, fmt.Errorf("initial capital must be positive, got %s", capital.String())
	}
	return capital, nil
}

// Rebalance values the current holdings, splits that value across the
// strategies and records the result in today's ledger file. When the ledger
// writes fail the report is still returned alongside the error.
func (h RebalancerHandler) Rebalance(ctx context.Context, in RebalanceInput) (*domain.RebalanceReport, error) {
	log := logger.FromContext(ctx)
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	ctx, profile, endProfile := domain.NewCtxWithProfile(ctx)
	defer func() {
		endProfile()
		log.Infof("rebalance timings (ms): %v", profile.Elapsed())
	}()

	date := h.now()
	run := h.NewRun(date)

	_, endSpan := profile.StartNewSpan("loading holdings")
	snapshot, err := h.loadHoldings(ctx, run.MarketDataService)
	endSpan()
	if err != nil {
		return nil, err
	}

	capital, err := h.capital(ctx, snapshot, in)
	if err != nil {
		return nil, err
	}
	log.Infof("rebalancing %s across strategies", capital.StringFixed(2))

	span, endSpan := profile.StartNewSpan("computing allocations")
	subProfile, endSubProfile := span.NewSubProfile()
	result, err := run.AllocationService.ComputeTargetPortfolio(
		context.WithValue(ctx, domain.ContextProfileKey, subProfile),
		capital,
	)
	endSubProfile()
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to compute target portfolio: %w", err)
	}

	runID := uuid.New()
	report := &domain.RebalanceReport{
		RunID:       runID,
		Date:        date,
		TotalValue:  capital,
		Snapshot:    snapshot,
		Allocations: result.Allocations.Allocations,
		Failures:    result.Allocations.Failures,
		Summary: domain.PortfolioSummary{
			RunID:      runID,
			Date:       date,
			TotalValue: capital,
			Lines:      result.Lines,
		},
		Details: result.Details,
	}

	if in.DryRun {
		return report, nil
	}

	_, endSpan = profile.StartNewSpan("writing ledger")
	err = h.writeLedger(ctx, report)
	endSpan()
	if err != nil {
		return report, err
	}

	if h.EmailService != nil && !in.SkipEmail {
		if err := h.EmailService.SendRebalanceReport(ctx, report); err != nil {
			log.Warnf("failed to email rebalance report: %v", err)
		}
	}

	return report, nil
}

// writeLedger attempts both sheets even when the first write fails
func (h RebalancerHandler) writeLedger(ctx context.Context, report *domain.RebalanceReport) error {
	summaryFile, summaryErr := h.LedgerRepository.SaveSummary(ctx, report.Summary)
	if summaryErr != nil {
		summaryErr = fmt.Errorf("failed to write portfolio summary: %w", summaryErr)
	}

	detailsFile, detailsErr := h.LedgerRepository.SaveDetails(ctx, report.Date, report.Details)
	if detailsErr != nil {
		detailsErr = fmt.Errorf("failed to write strategy details: %w", detailsErr)
	}

	if detailsFile != "" {
		report.LedgerFile = detailsFile
	} else {
		report.LedgerFile = summaryFile
	}

	return errors.Join(summaryErr, detailsErr)
}
