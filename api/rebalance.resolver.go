package api

import (
	"errors"
	"fmt"

	"tacticalalloc/internal/app"
	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/renderer"
	"tacticalalloc/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RebalanceRequest struct {
	InitialCapital *float64 `json:"initialCapital"`
	SkipEmail      bool     `json:"skipEmail"`
}

type strategyFailureResponse struct {
	Strategy string `json:"strategy"`
	Error    string `json:"error"`
}

type summaryLineResponse struct {
	Symbol   string  `json:"symbol"`
	Quantity int64   `json:"quantity"`
	Amount   float64 `json:"amount"`
}

type strategyDetailResponse struct {
	Strategy      string              `json:"strategy"`
	Description   string              `json:"description"`
	Symbol        string              `json:"symbol"`
	Price         *float64            `json:"price"`
	Ratio         float64             `json:"ratio"`
	StrategyRatio float64             `json:"strategyRatio"`
	FinalRatio    float64             `json:"finalRatio"`
	Amount        float64             `json:"amount"`
	Quantity      int64               `json:"quantity"`
	Returns       map[string]*float64 `json:"returns,omitempty"`
	Score         *float64            `json:"score,omitempty"`
}

type RebalanceResponse struct {
	RunID       string                    `json:"runID"`
	Date        string                    `json:"date"`
	TotalValue  float64                   `json:"totalValue"`
	Holdings    *holdingsResponse         `json:"holdings"`
	Failures    []strategyFailureResponse `json:"failures"`
	Summary     []summaryLineResponse     `json:"summary"`
	Details     []strategyDetailResponse  `json:"details"`
	LedgerFile  string                    `json:"ledgerFile,omitempty"`
	// set when the allocation finished but the ledger write did not
	LedgerError string                    `json:"ledgerError,omitempty"`
}

func rebalanceResponseFromDomain(r *domain.RebalanceReport) RebalanceResponse {
	out := RebalanceResponse{
		RunID:      r.RunID.String(),
		Date:       util.DateKey(r.Date),
		TotalValue: r.TotalValue.InexactFloat64(),
		Holdings:   holdingsResponseFromDomain(r.Snapshot),
		Failures:   []strategyFailureResponse{},
		Summary:    []summaryLineResponse{},
		Details:    []strategyDetailResponse{},
		LedgerFile: r.LedgerFile,
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, strategyFailureResponse{
			Strategy: f.Strategy,
			Error:    f.Err.Error(),
		})
	}
	for _, line := range r.Summary.Lines {
		out.Summary = append(out.Summary, summaryLineResponse{
			Symbol:   line.Symbol,
			Quantity: line.Quantity,
			Amount:   line.Amount.InexactFloat64(),
		})
	}
	for _, d := range r.Details {
		out.Details = append(out.Details, strategyDetailResponse{
			Strategy:      d.Strategy,
			Description:   d.Description,
			Symbol:        d.Symbol,
			Price:         d.Price,
			Ratio:         d.Ratio,
			StrategyRatio: d.StrategyRatio,
			FinalRatio:    d.FinalRatio,
			Amount:        d.Amount.InexactFloat64(),
			Quantity:      d.Quantity,
			Returns:       d.Returns,
			Score:         d.Score,
		})
	}
	return out
}

// writeReport responds with markdown when ?format=markdown, JSON otherwise
func writeReport(c *gin.Context, code int, report *domain.RebalanceReport) {
	if c.Query("format") == "markdown" {
		c.Data(code, "text/markdown; charset=utf-8", []byte(renderer.RebalanceMarkdown(report)))
		return
	}
	c.JSON(code, rebalanceResponseFromDomain(report))
}

func rebalanceErrorCode(err error) int {
	if errors.Is(err, app.ErrInitialCapitalRequired) {
		return 400
	}
	return 500
}

func (m ApiHandler) rebalance(c *gin.Context) {
	var requestBody RebalanceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
			return
		}
	}

	in := app.RebalanceInput{
		SkipEmail: requestBody.SkipEmail,
	}
	if requestBody.InitialCapital != nil {
		in.InitialCapital = util.DecimalPointer(decimal.NewFromFloat(*requestBody.InitialCapital))
	}

	report, err := m.Rebalancer.Rebalance(c.Request.Context(), in)
	if err != nil && report != nil {
		logger.FromContext(c.Request.Context()).Errorf("rebalance computed but not recorded: %v", err)
		response := rebalanceResponseFromDomain(report)
		response.LedgerError = err.Error()
		c.JSON(500, response)
		return
	}
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to rebalance: %w", err), c, rebalanceErrorCode(err))
		return
	}

	writeReport(c, 200, report)
}
