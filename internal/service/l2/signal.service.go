package l2_service

import (
	"context"
	"fmt"
	"time"

	"tacticalalloc/internal/calculator"
	"tacticalalloc/internal/logger"
	l1_service "tacticalalloc/internal/service/l1"
)

// SignalService computes the market regime signals LAA times its
// growth/defensive sleeve on
type SignalService interface {
	// TrendSignal is true when the latest index close is above its moving
	// average
	TrendSignal(ctx context.Context) (bool, error)
	// MacroSignal is true when the latest reading is above the trailing
	// mean of the series, which for unemployment means conditions are
	// deteriorating
	MacroSignal(ctx context.Context) (bool, error)
	RequiredInputs() l1_service.WarmInput
}

type SignalOptions struct {
	TrendSymbol       string
	TrendPeriod       int
	TrendLookbackDays int

	MacroSeriesID       string
	MacroPeriod         int
	MacroLookbackMonths int
}

func DefaultSignalOptions() SignalOptions {
	return SignalOptions{
		TrendSymbol:       "^GSPC",
		TrendPeriod:       200,
		TrendLookbackDays: 365,

		MacroSeriesID:       "UNRATE",
		MacroPeriod:         12,
		MacroLookbackMonths: 24,
	}
}

type signalServiceHandler struct {
	MarketDataService l1_service.MarketDataService
	AsOf              time.Time
	Options           SignalOptions
}

func NewSignalService(marketDataService l1_service.MarketDataService, asOf time.Time, options SignalOptions) SignalService {
	return signalServiceHandler{
		MarketDataService: marketDataService,
		AsOf:              asOf,
		Options:           options,
	}
}

func (h signalServiceHandler) trendWindow() (time.Time, time.Time) {
	return h.AsOf.AddDate(0, 0, -h.Options.TrendLookbackDays), h.AsOf
}

func (h signalServiceHandler) macroWindow() (time.Time, time.Time) {
	return h.AsOf.AddDate(0, -h.Options.MacroLookbackMonths, 0), h.AsOf
}

func (h signalServiceHandler) RequiredInputs() l1_service.WarmInput {
	trendStart, trendEnd := h.trendWindow()
	macroStart, macroEnd := h.macroWindow()
	return l1_service.WarmInput{
		PriceSeries: []l1_service.PriceSeriesInput{
			{
				Symbol: h.Options.TrendSymbol,
				Start:  trendStart,
				End:    trendEnd,
			},
		},
		Macro: []l1_service.MacroSeriesInput{
			{
				SeriesID: h.Options.MacroSeriesID,
				Start:    macroStart,
				End:      macroEnd,
			},
		},
	}
}

func (h signalServiceHandler) TrendSignal(ctx context.Context) (bool, error) {
	start, end := h.trendWindow()
	prices, err := h.MarketDataService.PriceSeries(ctx, h.Options.TrendSymbol, start, end)
	if err != nil {
		return false, err
	}

	closes := calculator.Closes(prices)
	sma, err := calculator.SimpleMovingAverage(closes, h.Options.TrendPeriod)
	if err != nil {
		return false, fmt.Errorf("failed to compute %d day average for %s: %w", h.Options.TrendPeriod, h.Options.TrendSymbol, err)
	}
	latest := closes[len(closes)-1]

	logger.FromContext(ctx).Infof("%s latest close %.2f vs %d day average %.2f", h.Options.TrendSymbol, latest, h.Options.TrendPeriod, sma)

	return latest > sma, nil
}

func (h signalServiceHandler) MacroSignal(ctx context.Context) (bool, error) {
	start, end := h.macroWindow()
	observations, err := h.MarketDataService.MacroSeries(ctx, h.Options.MacroSeriesID, start, end)
	if err != nil {
		return false, err
	}

	values := calculator.SeriesValues(observations)
	mean, err := calculator.TrailingMean(values, h.Options.MacroPeriod)
	if err != nil {
		return false, fmt.Errorf("failed to compute %d reading average for %s: %w", h.Options.MacroPeriod, h.Options.MacroSeriesID, err)
	}
	latest := values[len(values)-1]

	logger.FromContext(ctx).Infof("%s latest reading %.2f vs %d reading average %.2f", h.Options.MacroSeriesID, latest, h.Options.MacroPeriod, mean)

	return latest > mean, nil
}
