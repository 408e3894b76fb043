package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/pkg/fred"

	"github.com/stretchr/testify/require"
)

func Test_macroSeriesRepositoryHandler_GetSeries(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newRepo := func(t *testing.T, status int, body string) MacroSeriesRepository {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
		t.Cleanup(server.Close)

		client := fred.NewClient(server.Client())
		client.BaseURL = server.URL
		return NewMacroSeriesRepository(client)
	}

	t.Run("observations", func(t *testing.T) {
		repo := newRepo(t, http.StatusOK, "observation_date,UNRATE\n2023-01-01,3.4\n2023-02-01,3.6\n")
		observations, err := repo.GetSeries(ctx, "UNRATE", start, end)
		require.NoError(t, err)
		require.Len(t, observations, 2)
		require.Equal(t, "UNRATE", observations[1].SeriesID)
		require.Equal(t, 3.6, observations[1].Value)
	})

	t.Run("unknown series is unavailable", func(t *testing.T) {
		repo := newRepo(t, http.StatusNotFound, "")
		_, err := repo.GetSeries(ctx, "NOPE", start, end)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("empty series is unavailable", func(t *testing.T) {
		repo := newRepo(t, http.StatusOK, "observation_date,UNRATE\n2023-01-01,.\n")
		_, err := repo.GetSeries(ctx, "UNRATE", start, end)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("server errors are provider errors", func(t *testing.T) {
		repo := newRepo(t, http.StatusBadGateway, "upstream")
		_, err := repo.GetSeries(ctx, "UNRATE", start, end)
		require.ErrorIs(t, err, domain.ErrProviderError)
	})
}
