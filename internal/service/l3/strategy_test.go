package l3_service

import (
	"context"
	"fmt"
	"testing"

	"tacticalalloc/internal/domain"
	mock_l2_service "tacticalalloc/internal/service/l2/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	})
}

func amountsOf(values map[string]int64) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for k, v := range values {
		out[k] = decimal.NewFromInt(v)
	}
	return out
}

func TestSelectDualMomentum(t *testing.T) {
	u := DefaultODMUniverse()

	for _, tc := range []struct {
		name     string
		returns  map[string]float64
		expected string
	}{
		{
			name:     "domestic beats cash and international",
			returns:  map[string]float64{"VOO": 0.12, "EFA": 0.08, "AGG": 0.03, "BIL": 0.01},
			expected: "VOO",
		},
		{
			name:     "international beats domestic",
			returns:  map[string]float64{"VOO": 0.12, "EFA": 0.15, "AGG": 0.03, "BIL": 0.01},
			expected: "EFA",
		},
		{
			name:     "cash beats domestic",
			returns:  map[string]float64{"VOO": -0.02, "EFA": 0.08, "AGG": 0.03, "BIL": 0.01},
			expected: "AGG",
		},
		{
			name:     "cash beats domestic even when international is strong",
			returns:  map[string]float64{"VOO": 0.02, "EFA": 0.20, "AGG": 0.03, "BIL": 0.04},
			expected: "AGG",
		},
		{
			name:     "tie with cash goes to bonds",
			returns:  map[string]float64{"VOO": 0.04, "EFA": 0.01, "AGG": 0.03, "BIL": 0.04},
			expected: "AGG",
		},
		{
			name:     "tie with international goes international",
			returns:  map[string]float64{"VOO": 0.1, "EFA": 0.1, "AGG": 0.03, "BIL": 0.04},
			expected: "EFA",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, SelectDualMomentum(u, tc.returns))
		})
	}
}

func TestSelectVigilant(t *testing.T) {
	u := DefaultVAAUniverse()

	t.Run("all aggressive non-negative", func(t *testing.T) {
		require.Equal(t, "VWO", SelectVigilant(u, map[string]float64{
			"VOO": 0.5, "EFA": 0.2, "VWO": 0.9, "AGG": 0,
			"LQD": 5, "IEF": 5, "SHY": 5,
		}))
	})
	t.Run("one aggressive negative", func(t *testing.T) {
		require.Equal(t, "IEF", SelectVigilant(u, map[string]float64{
			"VOO": 0.5, "EFA": 0.2, "VWO": 0.9, "AGG": -0.01,
			"LQD": 0.1, "IEF": 0.3, "SHY": 0.2,
		}))
	})
	t.Run("ties go to universe order", func(t *testing.T) {
		require.Equal(t, "VOO", SelectVigilant(u, map[string]float64{
			"VOO": 0.5, "EFA": 0.5, "VWO": 0.5, "AGG": 0.5,
		}))
		require.Equal(t, "LQD", SelectVigilant(u, map[string]float64{
			"VOO": -1, "EFA": 0.5, "VWO": 0.5, "AGG": 0.5,
			"LQD": -0.2, "IEF": -0.2, "SHY": -0.2,
		}))
	})
}

func TestSelectTiming(t *testing.T) {
	u := DefaultLAAUniverse()
	require.Equal(t, "QQQM", SelectTiming(u, true, false))
	require.Equal(t, "SHY", SelectTiming(u, true, true))
	require.Equal(t, "SHY", SelectTiming(u, false, false))
	require.Equal(t, "SHY", SelectTiming(u, false, true))
}

func Test_odmStrategyHandler_ComputeAllocation(t *testing.T) {
	ctx := context.Background()

	t.Run("all capital to the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		momentumService := mock_l2_service.NewMockMomentumService(ctrl)
		handler := NewODMStrategy(momentumService)

		for symbol, r := range map[string]float64{"VOO": 0.15, "EFA": 0.10, "AGG": 0.03, "BIL": 0.04} {
			momentumService.EXPECT().
				GetReturn(gomock.Any(), symbol, domain.TwelveMonths).
				Return(r, nil)
		}

		allocation, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(3330))
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]string{"VOO", "EFA", "AGG"}, allocation.Tickers))
		require.Equal(
			t,
			"",
			cmp.Diff(
				amountsOf(map[string]int64{"VOO": 3330, "EFA": 0, "AGG": 0}),
				allocation.Amounts,
				decimalComparer(),
			),
		)
	})

	t.Run("missing return fails the strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		momentumService := mock_l2_service.NewMockMomentumService(ctrl)
		handler := NewODMStrategy(momentumService)

		momentumService.EXPECT().
			GetReturn(gomock.Any(), "EFA", domain.TwelveMonths).
			Return(0.0, fmt.Errorf("%w: no prices", domain.ErrDataUnavailable))
		momentumService.EXPECT().
			GetReturn(gomock.Any(), gomock.Any(), domain.TwelveMonths).
			Return(0.1, nil).
			AnyTimes()

		_, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(3330))
		require.ErrorIs(t, err, domain.ErrInsufficientSignalData)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})
}

func Test_vaaStrategyHandler_ComputeAllocation(t *testing.T) {
	ctx := context.Background()

	expectScores := func(m *mock_l2_service.MockMomentumService, scores map[string]float64) {
		for symbol, score := range scores {
			m.EXPECT().
				CalculateMomentumScore(gomock.Any(), symbol).
				Return(&domain.MomentumScore{
					Symbol:  symbol,
					Returns: map[string]float64{"1M": 0.01, "3M": 0.02, "6M": 0.03, "12M": 0.04},
					Score:   score,
				}, nil)
		}
	}

	t.Run("aggressive pick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		momentumService := mock_l2_service.NewMockMomentumService(ctrl)
		handler := NewVAAStrategy(momentumService)

		expectScores(momentumService, map[string]float64{
			"VOO": 0.5, "EFA": 0.2, "VWO": 0.9, "AGG": 0.1,
			"LQD": 0.1, "IEF": 0.3, "SHY": 0.2,
		})

		allocation, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(3330))
		require.NoError(t, err)
		require.Len(t, allocation.Tickers, 7)
		require.True(t, allocation.Amounts["VWO"].Equal(decimal.NewFromInt(3330)))
		require.True(t, allocation.Total().Equal(decimal.NewFromInt(3330)))
		require.Len(t, allocation.Momentum, 7)
	})

	t.Run("defensive pick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		momentumService := mock_l2_service.NewMockMomentumService(ctrl)
		handler := NewVAAStrategy(momentumService)

		expectScores(momentumService, map[string]float64{
			"VOO": 0.5, "EFA": 0.2, "VWO": 0.9, "AGG": -0.01,
			"LQD": 0.1, "IEF": 0.3, "SHY": 0.2,
		})

		allocation, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(3330))
		require.NoError(t, err)
		require.True(t, allocation.Amounts["IEF"].Equal(decimal.NewFromInt(3330)))
		require.True(t, allocation.Amounts["VWO"].IsZero())
	})

	t.Run("any unavailable score fails the strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		momentumService := mock_l2_service.NewMockMomentumService(ctrl)
		handler := NewVAAStrategy(momentumService)

		expectScores(momentumService, map[string]float64{"VOO": 0.5, "EFA": 0.2})
		momentumService.EXPECT().
			CalculateMomentumScore(gomock.Any(), "VWO").
			Return(nil, fmt.Errorf("%w: short history", domain.ErrDataUnavailable))

		_, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(3330))
		require.ErrorIs(t, err, domain.ErrInsufficientSignalData)
	})
}

func Test_laaStrategyHandler_ComputeAllocation(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name     string
		trend    bool
		macro    bool
		expected map[string]int64
	}{
		{"risk on", true, false, map[string]int64{"IWD": 1000, "GLD": 1000, "IEF": 1000, "QQQM": 1000, "SHY": 0}},
		{"rising unemployment", true, true, map[string]int64{"IWD": 1000, "GLD": 1000, "IEF": 1000, "QQQM": 0, "SHY": 1000}},
		{"downtrend", false, false, map[string]int64{"IWD": 1000, "GLD": 1000, "IEF": 1000, "QQQM": 0, "SHY": 1000}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			signalService := mock_l2_service.NewMockSignalService(ctrl)
			handler := NewLAAStrategy(signalService)

			signalService.EXPECT().TrendSignal(gomock.Any()).Return(tc.trend, nil)
			signalService.EXPECT().MacroSignal(gomock.Any()).Return(tc.macro, nil)

			allocation, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(4000))
			require.NoError(t, err)
			require.Equal(t, "", cmp.Diff([]string{"IWD", "GLD", "IEF", "QQQM", "SHY"}, allocation.Tickers))
			require.Equal(t, "", cmp.Diff(amountsOf(tc.expected), allocation.Amounts, decimalComparer()))
			require.True(t, allocation.Total().Equal(decimal.NewFromInt(4000)))
		})
	}

	t.Run("insufficient history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		signalService := mock_l2_service.NewMockSignalService(ctrl)
		handler := NewLAAStrategy(signalService)

		signalService.EXPECT().TrendSignal(gomock.Any()).Return(true, nil)
		signalService.EXPECT().MacroSignal(gomock.Any()).Return(false, fmt.Errorf("%w: 3 readings", domain.ErrDataUnavailable))

		_, err := handler.ComputeAllocation(ctx, decimal.NewFromInt(4000))
		require.ErrorIs(t, err, domain.ErrInsufficientSignalData)
	})
}
