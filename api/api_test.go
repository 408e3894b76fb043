package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tacticalalloc/internal/app"
	"tacticalalloc/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRebalancer struct {
	inputs   []app.RebalanceInput
	report   *domain.RebalanceReport
	snapshot *domain.PortfolioSnapshot
	err      error
}

func (f *fakeRebalancer) Rebalance(ctx context.Context, in app.RebalanceInput) (*domain.RebalanceReport, error) {
	f.inputs = append(f.inputs, in)
	return f.report, f.err
}

func (f *fakeRebalancer) CurrentHoldings(ctx context.Context) (*domain.PortfolioSnapshot, error) {
	return f.snapshot, f.err
}

func testReport() *domain.RebalanceReport {
	return &domain.RebalanceReport{
		RunID:      uuid.MustParse("3f8e4c0a-5a53-4bb9-9a43-0c8d2d6f1b2e"),
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalValue: decimal.NewFromInt(10000),
		Snapshot:   &domain.PortfolioSnapshot{Holdings: []domain.Holding{}, TotalValue: decimal.Zero},
		Failures: []domain.StrategyFailure{
			{Strategy: domain.StrategyLAA, Err: domain.ErrInsufficientSignalData},
		},
		Summary: domain.PortfolioSummary{
			Lines: []domain.SummaryLine{{Symbol: "VOO", Quantity: 13, Amount: decimal.NewFromInt(6660)}},
		},
		Details: []domain.StrategyDetail{
			{Strategy: domain.StrategyODM, Symbol: "VOO", Amount: decimal.NewFromInt(3330), Quantity: 6},
		},
	}
}

func serve(t *testing.T, rebalancer Rebalancer, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{Rebalancer: rebalancer, Logger: zap.NewNop().Sugar()}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func TestApiHandler_rebalance(t *testing.T) {
	t.Run("passes initial capital", func(t *testing.T) {
		rebalancer := &fakeRebalancer{report: testReport()}

		w := serve(t, rebalancer, "POST", "/rebalance", `{"initialCapital": 10000}`)
		require.Equal(t, 200, w.Code)
		require.Len(t, rebalancer.inputs, 1)
		require.True(t, rebalancer.inputs[0].InitialCapital.Equal(decimal.NewFromInt(10000)))
		require.False(t, rebalancer.inputs[0].DryRun)

		response := RebalanceResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, "2024-03-01", response.Date)
		require.Equal(t, 10000.0, response.TotalValue)
		require.Equal(t, "LAA", response.Failures[0].Strategy)
		require.Equal(t, 6660.0, response.Summary[0].Amount)
	})

	t.Run("empty body", func(t *testing.T) {
		rebalancer := &fakeRebalancer{report: testReport()}

		w := serve(t, rebalancer, "POST", "/rebalance", "")
		require.Equal(t, 200, w.Code)
		require.Nil(t, rebalancer.inputs[0].InitialCapital)
	})

	t.Run("missing capital is a bad request", func(t *testing.T) {
		rebalancer := &fakeRebalancer{err: app.ErrInitialCapitalRequired}

		w := serve(t, rebalancer, "POST", "/rebalance", "")
		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "initial capital is required")
	})

	t.Run("ledger failure keeps the report", func(t *testing.T) {
		rebalancer := &fakeRebalancer{
			report: testReport(),
			err:    errors.New("failed to write strategy details: permission denied"),
		}

		w := serve(t, rebalancer, "POST", "/rebalance", `{"initialCapital": 10000}`)
		require.Equal(t, 500, w.Code)

		response := RebalanceResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, "failed to write strategy details: permission denied", response.LedgerError)
		require.Equal(t, 10000.0, response.TotalValue)
		require.Len(t, response.Details, 1)
		require.Equal(t, "VOO", response.Details[0].Symbol)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := serve(t, &fakeRebalancer{}, "POST", "/rebalance", `{"initialCapital": "lots"}`)
		require.Equal(t, 400, w.Code)
	})

	t.Run("markdown format", func(t *testing.T) {
		w := serve(t, &fakeRebalancer{report: testReport()}, "POST", "/rebalance?format=markdown", "")
		require.Equal(t, 200, w.Code)
		require.Contains(t, w.Body.String(), "# Rebalance 2024-03-01")
	})
}

func TestApiHandler_allocations(t *testing.T) {
	t.Run("always a dry run", func(t *testing.T) {
		rebalancer := &fakeRebalancer{report: testReport()}

		w := serve(t, rebalancer, "GET", "/allocations?initialCapital=2500.50", "")
		require.Equal(t, 200, w.Code)
		require.True(t, rebalancer.inputs[0].DryRun)
		require.True(t, rebalancer.inputs[0].InitialCapital.Equal(decimal.RequireFromString("2500.50")))
	})

	t.Run("invalid capital", func(t *testing.T) {
		w := serve(t, &fakeRebalancer{}, "GET", "/allocations?initialCapital=abc", "")
		require.Equal(t, 400, w.Code)
	})
}

func TestApiHandler_holdings(t *testing.T) {
	rebalancer := &fakeRebalancer{snapshot: &domain.PortfolioSnapshot{
		Holdings: []domain.Holding{
			{Symbol: "VOO", Quantity: decimal.NewFromInt(2), Price: 500, Value: decimal.NewFromInt(1000)},
		},
		TotalValue: decimal.NewFromInt(1000),
		Source:     "result/240301_asset_allocation_results.xlsx",
	}}

	w := serve(t, rebalancer, "GET", "/holdings", "")
	require.Equal(t, 200, w.Code)

	response := holdingsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1000.0, response.TotalValue)
	require.Equal(t, "VOO", response.Holdings[0].Symbol)
	require.Equal(t, 2.0, response.Holdings[0].Quantity)
}

func TestApiHandler_welcome(t *testing.T) {
	w := serve(t, &fakeRebalancer{}, "GET", "/", "")
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "welcome")
}
