// Package edgar integrates with SEC EDGAR: company submissions, XBRL
// companyfacts, and filing documents.
// API documentation: https://www.sec.gov/developer
package edgar

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// SEC EDGAR API endpoints
	SECSubmissionsURL  = "https://data.sec.gov/submissions/CIK%s.json"
	SECCompanyFactsURL = "https://data.sec.gov/api/xbrl/companyfacts/CIK%s.json"
	SECArchivesURL     = "https://www.sec.gov/Archives/edgar/data/%s/%s/%s"
	SECTickerMapURL    = "https://www.sec.gov/files/company_tickers.json"

	// Required descriptive User-Agent per SEC guidelines
	UserAgent = "EquityResearchCopilot/1.0 (contact@example.com)"
)

// =============================================================================
// SEC EDGAR DATA TYPES
// =============================================================================

// SubmissionsResponse is the top-level company submissions payload.
type SubmissionsResponse struct {
	CIK     string  `json:"cik"`
	Name    string  `json:"name"`
	Tickers []string `json:"tickers"`
	Filings struct {
		Recent RecentFilings `json:"recent"`
	} `json:"filings"`
}

// RecentFilings holds the filing attributes as parallel arrays, exactly as
// EDGAR serves them.
type RecentFilings struct {
	AccessionNumber []string `json:"accessionNumber"` // e.g., "0000320193-23-000106"
	FilingDate      []string `json:"filingDate"`      // e.g., "2023-11-03"
	ReportDate      []string `json:"reportDate"`      // fiscal period end
	Form            []string `json:"form"`            // "10-K", "10-Q", "8-K"
	PrimaryDocument []string `json:"primaryDocument"` // filename
}

// =============================================================================
// SEC EDGAR CLIENT
// =============================================================================

// Client handles SEC EDGAR API requests.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new SEC EDGAR API client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PadCIK zero-pads a CIK to the 10 digits EDGAR URLs expect.
func PadCIK(cik string) string {
	return fmt.Sprintf("%010s", strings.TrimLeft(cik, "0"))
}

func (c *Client) getJSON(url string, out interface{}) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// SEC requires a descriptive User-Agent header
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("SEC API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SEC API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse SEC response: %w", err)
	}
	return nil
}

// FetchSubmissions retrieves company submission data (recent filings).
func (c *Client) FetchSubmissions(cik string) (*SubmissionsResponse, error) {
	var info SubmissionsResponse
	url := fmt.Sprintf(SECSubmissionsURL, PadCIK(cik))
	if err := c.getJSON(url, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// FetchCompanyFacts retrieves the standardized XBRL metrics for a company.
func (c *Client) FetchCompanyFacts(cik string) (*CompanyFacts, error) {
	var facts CompanyFacts
	url := fmt.Sprintf(SECCompanyFactsURL, PadCIK(cik))
	if err := c.getJSON(url, &facts); err != nil {
		return nil, err
	}
	return &facts, nil
}

// FetchDocument downloads one filing document from the EDGAR archives.
func (c *Client) FetchDocument(cik, accession, document string) (string, error) {
	accessionNoDashes := strings.ReplaceAll(accession, "-", "")
	url := fmt.Sprintf(SECArchivesURL, strings.TrimLeft(cik, "0"), accessionNoDashes, document)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("SEC archive request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("SEC archive returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(body), nil
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

// demoCIKs keeps a handful of symbols resolvable without a network round
// trip, mirroring the seeded demo data.
var demoCIKs = map[string]string{
	"AAPL": "0000320193",
}

// CIKForSymbol finds the CIK for a ticker symbol. The built-in demo mapping
// is consulted first; everything else goes through the SEC ticker file.
func (c *Client) CIKForSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(symbol)
	if cik, ok := demoCIKs[symbol]; ok {
		return cik, nil
	}

	// Response structure: { "0": {"cik_str": 320193, "ticker": "AAPL", ...}, ... }
	var mapping map[string]struct {
		CIK    int    `json:"cik_str"`
		Ticker string `json:"ticker"`
		Title  string `json:"title"`
	}
	if err := c.getJSON(SECTickerMapURL, &mapping); err != nil {
		return "", fmt.Errorf("failed to fetch ticker mapping: %w", err)
	}

	for _, entry := range mapping {
		if entry.Ticker == symbol {
			return fmt.Sprintf("%010d", entry.CIK), nil
		}
	}
	return "", fmt.Errorf("ticker %s not found in SEC database", symbol)
}
