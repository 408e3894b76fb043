package fred

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

const DefaultBaseURL = "https://fred.stlouisfed.org/graph/fredgraph.csv"

type Observation struct {
	Date  time.Time
	Value float64
}

// HTTPError is returned for any non-200 response
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fred request failed with status code %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HttpClient: httpClient,
		BaseURL:    DefaultBaseURL,
	}
}

func (c Client) getBytes(ctx context.Context, seriesID string, start, end time.Time) ([]byte, error) {
	params := url.Values{}
	params.Set("id", seriesID)
	params.Set("cosd", start.Format(time.DateOnly))
	params.Set("coed", end.Format(time.DateOnly))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: response.StatusCode,
			Body:       string(responseBytes),
		}
	}

	return responseBytes, nil
}

// GetSeries downloads a series between start and end inclusive. Missing
// readings (".") are skipped.
func (c Client) GetSeries(ctx context.Context, seriesID string, start, end time.Time) ([]Observation, error) {
	responseBytes, err := c.getBytes(ctx, seriesID, start, end)
	if err != nil {
		return nil, err
	}

	rows, err := gocsv.CSVToMaps(bytes.NewReader(responseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s csv: %w", seriesID, err)
	}

	out := []Observation{}
	for _, row := range rows {
		dateStr, ok := row["observation_date"]
		if !ok {
			dateStr = row["DATE"]
		}
		valueStr, ok := row[seriesID]
		if !ok {
			return nil, fmt.Errorf("fred response has no %s column", seriesID)
		}
		valueStr = strings.TrimSpace(valueStr)
		if valueStr == "" || valueStr == "." {
			continue
		}

		date, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s observation date %q: %w", seriesID, dateStr, err)
		}
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s value %q: %w", seriesID, valueStr, err)
		}
		out = append(out, Observation{
			Date:  date,
			Value: value,
		})
	}

	return out, nil
}
