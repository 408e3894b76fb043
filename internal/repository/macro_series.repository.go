package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/pkg/fred"
)

// MacroSeriesRepository downloads economic series such as UNRATE
type MacroSeriesRepository interface {
	GetSeries(ctx context.Context, seriesID string, start, end time.Time) ([]domain.SeriesObservation, error)
}

type macroSeriesRepositoryHandler struct {
	Client *fred.Client
}

func NewMacroSeriesRepository(client *fred.Client) MacroSeriesRepository {
	return macroSeriesRepositoryHandler{
		Client: client,
	}
}

func (h macroSeriesRepositoryHandler) GetSeries(ctx context.Context, seriesID string, start, end time.Time) ([]domain.SeriesObservation, error) {
	observations, err := h.Client.GetSeries(ctx, seriesID, start, end)
	if err != nil {
		var httpErr *fred.HTTPError
		if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusNotFound || httpErr.StatusCode == http.StatusBadRequest) {
			return nil, fmt.Errorf("%w: series %s: %w", domain.ErrDataUnavailable, seriesID, err)
		}
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to get series %s: %w", domain.ErrProviderError, seriesID, err)
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("%w: no observations for %s between %s and %s", domain.ErrDataUnavailable, seriesID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	out := []domain.SeriesObservation{}
	for _, o := range observations {
		out = append(out, domain.SeriesObservation{
			SeriesID: seriesID,
			Date:     o.Date,
			Value:    o.Value,
		})
	}

	return out, nil
}
