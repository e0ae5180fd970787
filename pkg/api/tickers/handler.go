// Package tickers provides HTTP API handlers for per-ticker data: the
// filing catalog, stored metric series, and the two-filing comparison.
package tickers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Jaket405/equity-research-copilot/pkg/core/compare"
	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
	"github.com/Jaket405/equity-research-copilot/pkg/core/store"
	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

var (
	filingRepo = store.NewFilingRepo()
	metricRepo = store.NewMetricRepo()
)

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}

// HandleFilings handles GET /api/tickers/{symbol}/filings.
// Returns the stored filing catalog, newest filed first. An unknown symbol
// yields an empty list.
func HandleFilings(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.PathValue("symbol")
	filings, err := filingRepo.ListFilings(r.Context(), symbol)
	if err != nil {
		log.Printf("[Tickers] filing list failed for %s: %v", symbol, err)
		http.Error(w, "Failed to list filings", http.StatusInternalServerError)
		return
	}
	if filings == nil {
		filings = []models.Filing{}
	}
	json.NewEncoder(w).Encode(filings)
}

// MetricsResponse wraps every stored series for one ticker.
type MetricsResponse struct {
	Series []metrics.Series `json:"series"`
}

// HandleMetrics handles GET /api/tickers/{symbol}/metrics.
// Returns ALL metric series for the company, not just revenue and margin.
func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.PathValue("symbol")
	snapshot, err := metricRepo.LoadSeriesStore(r.Context(), symbol)
	if err != nil {
		log.Printf("[Tickers] metrics load failed for %s: %v", symbol, err)
		http.Error(w, "Failed to load metrics", http.StatusInternalServerError)
		return
	}

	resp := MetricsResponse{Series: snapshot.Series()}
	if resp.Series == nil {
		resp.Series = []metrics.Series{}
	}
	json.NewEncoder(w).Encode(resp)
}

// CompareSide identifies one side of a comparison once its accession has
// been resolved to a fiscal period-end.
type CompareSide struct {
	Accession string `json:"accession"`
	PeriodEnd string `json:"periodEnd"`
}

// CompareResponse is the comparison table plus its narrative. Ready is
// false when either accession cannot be resolved to a period yet, for
// example right after a metadata-only import.
type CompareResponse struct {
	Ready     bool          `json:"ready"`
	Message   string        `json:"message,omitempty"`
	Left      *CompareSide  `json:"left,omitempty"`
	Right     *CompareSide  `json:"right,omitempty"`
	Rows      []compare.Row `json:"rows,omitempty"`
	Narrative []string      `json:"narrative,omitempty"`
}

// HandleCompare handles GET /api/tickers/{symbol}/compare?left=&right=.
// Left and right are accession numbers from the filing catalog; left is
// the base period the deltas are measured against.
func HandleCompare(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.PathValue("symbol")
	leftAccn := r.URL.Query().Get("left")
	rightAccn := r.URL.Query().Get("right")
	if leftAccn == "" || rightAccn == "" {
		http.Error(w, "left and right accession parameters are required", http.StatusBadRequest)
		return
	}

	catalog, err := filingRepo.ListFilings(r.Context(), symbol)
	if err != nil {
		log.Printf("[Tickers] filing list failed for %s: %v", symbol, err)
		http.Error(w, "Failed to list filings", http.StatusInternalServerError)
		return
	}

	leftPeriod, leftOK := compare.ResolvePeriod(catalog, leftAccn)
	rightPeriod, rightOK := compare.ResolvePeriod(catalog, rightAccn)
	if !leftOK || !rightOK {
		// Not an error: the filing may be imported without a period-end
		// yet, or not imported at all. The frontend retries after import.
		json.NewEncoder(w).Encode(CompareResponse{
			Ready:   false,
			Message: "comparison not ready: filing period not resolved",
		})
		return
	}

	snapshot, err := metricRepo.LoadSeriesStore(r.Context(), symbol)
	if err != nil {
		log.Printf("[Tickers] metrics load failed for %s: %v", symbol, err)
		http.Error(w, "Failed to load metrics", http.StatusInternalServerError)
		return
	}

	rows := compare.BuildComparison(snapshot, leftPeriod, rightPeriod)
	json.NewEncoder(w).Encode(CompareResponse{
		Ready:     true,
		Left:      &CompareSide{Accession: leftAccn, PeriodEnd: leftPeriod},
		Right:     &CompareSide{Accession: rightAccn, PeriodEnd: rightPeriod},
		Rows:      rows,
		Narrative: compare.GenerateNarrative(rows),
	})
}
