// Package price fetches daily close prices from the Yahoo Finance chart API.
package price

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

// Allowed query values, mirroring what the frontend offers.
var (
	validRanges    = map[string]bool{"1mo": true, "3mo": true, "6mo": true, "1y": true, "5y": true, "max": true}
	validIntervals = map[string]bool{"1d": true, "1wk": true, "1mo": true}
)

// ValidRange reports whether rng is an accepted chart range.
func ValidRange(rng string) bool { return validRanges[rng] }

// ValidInterval reports whether interval is an accepted chart interval.
func ValidInterval(interval string) bool { return validIntervals[interval] }

// Fetcher pulls close-price series for a symbol.
type Fetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewFetcher creates a fetcher with a 30 second timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: "https://query1.finance.yahoo.com/v8/finance/chart",
	}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// FetchCloses returns the daily close series for symbol over the given
// range and interval, sorted oldest first. Null closes (market holidays)
// are skipped.
func (f *Fetcher) FetchCloses(symbol, rng, interval string) ([]models.PricePoint, error) {
	u := fmt.Sprintf("%s/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(symbol), interval, rng)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return []models.PricePoint{}, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return []models.PricePoint{}, nil
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		c, ok := toFloat(closes[i])
		if !ok {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: c,
		})
	}
	return points, nil
}
