package fred

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClient_GetSeries(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("parses observations and skips missing", func(t *testing.T) {
		var query url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			w.Write([]byte("observation_date,UNRATE\n2024-01-01,3.7\n2024-02-01,.\n2024-03-01,3.9\n"))
		}))
		defer server.Close()

		c := NewClient(server.Client())
		c.BaseURL = server.URL

		observations, err := c.GetSeries(context.Background(), "UNRATE", start, end)
		require.NoError(t, err)
		require.Equal(t, "UNRATE", query.Get("id"))
		require.Equal(t, "2024-01-01", query.Get("cosd"))
		require.Equal(t, "2024-04-01", query.Get("coed"))
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]Observation{
					{Date: start, Value: 3.7},
					{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Value: 3.9},
				},
				observations,
			),
		)
	})

	t.Run("legacy DATE header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("DATE,UNRATE\n2024-01-01,3.7\n"))
		}))
		defer server.Close()

		c := NewClient(server.Client())
		c.BaseURL = server.URL

		observations, err := c.GetSeries(context.Background(), "UNRATE", start, end)
		require.NoError(t, err)
		require.Len(t, observations, 1)
	})

	t.Run("status code surfaces as HTTPError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("series does not exist"))
		}))
		defer server.Close()

		c := NewClient(server.Client())
		c.BaseURL = server.URL

		_, err := c.GetSeries(context.Background(), "NOPE", start, end)
		require.Error(t, err)

		var httpErr *HTTPError
		require.True(t, errors.As(err, &httpErr))
		require.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	})
}
