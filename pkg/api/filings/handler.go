// Package filings provides the HTTP API handler for filing summaries.
package filings

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Jaket405/equity-research-copilot/pkg/core/store"
	"github.com/Jaket405/equity-research-copilot/pkg/core/summary"
)

// Package-level summarizer, set up once at startup.
var summarizer *summary.Summarizer

var filingRepo = store.NewFilingRepo()

// InitHandler wires in the summarizer.
func InitHandler(s *summary.Summarizer) {
	summarizer = s
}

// SummaryResponse carries the highlight bullets for one filing.
type SummaryResponse struct {
	Highlights []string `json:"highlights"`
}

// HandleSummary handles GET /api/filings/{accession}/summary.
// Always answers with highlights: if the filing document or the model is
// unavailable the summarizer falls back to static text.
func HandleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	accession := r.PathValue("accession")

	// The CIK is only needed to fetch the document text; without it the
	// summarizer still serves the static highlights.
	cik, ok, err := filingRepo.CIKForAccession(r.Context(), accession)
	if err != nil || !ok {
		if err != nil {
			log.Printf("[Filings] CIK lookup failed for %s: %v", accession, err)
		}
		cik = ""
	}

	highlights := summarizer.Summarize(r.Context(), cik, accession)
	json.NewEncoder(w).Encode(SummaryResponse{Highlights: highlights})
}
