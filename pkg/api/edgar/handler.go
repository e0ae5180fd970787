// Package edgar provides HTTP API handlers for listing and importing SEC
// EDGAR data: recent 10-K filings, filing metadata, and companyfacts
// metric series. Imports stay 10-K only.
package edgar

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	coreEdgar "github.com/Jaket405/equity-research-copilot/pkg/core/edgar"
	"github.com/Jaket405/equity-research-copilot/pkg/core/store"
	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

// Package-level SEC client, set up once at startup.
var client *coreEdgar.Client

var (
	filingRepo = store.NewFilingRepo()
	metricRepo = store.NewMetricRepo()
)

// recentLimit caps how many recent submissions the listing endpoint scans.
const recentLimit = 10

// InitHandler wires in the SEC client.
func InitHandler(c *coreEdgar.Client) {
	client = c
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}

// guard applies CORS and the method check shared by every handler here.
// Returns false when the request has already been answered.
func guard(w http.ResponseWriter, r *http.Request) bool {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// RecentFiling is one 10-K row from the submissions feed.
type RecentFiling struct {
	Accession  string `json:"accession"`
	Form       string `json:"form"`
	FiledAt    string `json:"filedAt"`
	ReportDate string `json:"reportDate,omitempty"`
	PrimaryDoc string `json:"primaryDoc,omitempty"`
}

// RecentResponse lists recent 10-Ks straight from EDGAR, no DB involved.
type RecentResponse struct {
	Recent []RecentFiling `json:"recent"`
}

// HandleRecent handles GET /api/edgar/{symbol}/recent.
func HandleRecent(w http.ResponseWriter, r *http.Request) {
	if !guard(w, r) {
		return
	}

	symbol := r.PathValue("symbol")
	cik, err := client.CIKForSymbol(symbol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	info, err := client.FetchSubmissions(cik)
	if err != nil {
		log.Printf("[EDGAR] submissions fetch failed for %s: %v", symbol, err)
		http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
		return
	}

	recent := info.Filings.Recent
	out := []RecentFiling{}
	for i := 0; i < len(recent.AccessionNumber) && i < recentLimit; i++ {
		if i >= len(recent.Form) || recent.Form[i] != "10-K" {
			continue
		}
		row := RecentFiling{
			Accession: recent.AccessionNumber[i],
			Form:      recent.Form[i],
		}
		if i < len(recent.FilingDate) {
			row.FiledAt = recent.FilingDate[i]
		}
		if i < len(recent.ReportDate) {
			row.ReportDate = recent.ReportDate[i]
		}
		if i < len(recent.PrimaryDocument) {
			row.PrimaryDoc = recent.PrimaryDocument[i]
		}
		out = append(out, row)
	}
	json.NewEncoder(w).Encode(RecentResponse{Recent: out})
}

// ImportCompany echoes the company an import touched.
type ImportCompany struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// ImportResponse reports one metadata import run.
type ImportResponse struct {
	RunID    string         `json:"runId"`
	Company  *ImportCompany `json:"company,omitempty"`
	Inserted int            `json:"inserted"`
	Skipped  int            `json:"skipped"`
	Message  string         `json:"message,omitempty"`
}

// HandleImport handles GET /api/edgar/{symbol}/import.
// Imports recent 10-K filing metadata only; metric values come through the
// separate facts import.
func HandleImport(w http.ResponseWriter, r *http.Request) {
	if !guard(w, r) {
		return
	}

	runID := uuid.New().String()
	symbol := r.PathValue("symbol")
	log.Printf("[EDGAR] import run %s started for %s", runID, symbol)

	cik, err := client.CIKForSymbol(symbol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	info, err := client.FetchSubmissions(cik)
	if err != nil {
		log.Printf("[EDGAR] import run %s: submissions fetch failed: %v", runID, err)
		http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
		return
	}

	name := info.Name
	if name == "" {
		name = symbol
	}
	companyID, err := filingRepo.UpsertCompany(r.Context(), models.Company{
		Symbol: symbol,
		CIK:    cik,
		Name:   name,
	})
	if err != nil {
		log.Printf("[EDGAR] import run %s: company upsert failed: %v", runID, err)
		http.Error(w, "Failed to save company", http.StatusInternalServerError)
		return
	}

	filings := coreEdgar.TenKFilings(info, 0)
	if len(filings) == 0 {
		json.NewEncoder(w).Encode(ImportResponse{
			RunID:   runID,
			Message: "No recent filings in SEC response.",
		})
		return
	}

	inserted, skipped, err := filingRepo.UpsertFilings(r.Context(), companyID, filings)
	if err != nil {
		log.Printf("[EDGAR] import run %s: filing upsert failed: %v", runID, err)
		http.Error(w, "Failed to save filings", http.StatusInternalServerError)
		return
	}

	log.Printf("[EDGAR] import run %s finished: %d inserted, %d skipped", runID, inserted, skipped)
	json.NewEncoder(w).Encode(ImportResponse{
		RunID:    runID,
		Company:  &ImportCompany{Symbol: symbol, Name: name},
		Inserted: inserted,
		Skipped:  skipped,
	})
}

// FactsImportResponse reports one companyfacts import run.
type FactsImportResponse struct {
	RunID   string   `json:"runId"`
	Updated bool     `json:"inserted_or_updated"`
	Metrics []string `json:"metrics"`
	Note    string   `json:"note"`
}

// HandleFactsImport handles GET /api/edgar/{symbol}/facts/import.
// Pulls the standardized 10-K metric series from companyfacts and persists
// them, derived series included.
func HandleFactsImport(w http.ResponseWriter, r *http.Request) {
	if !guard(w, r) {
		return
	}

	runID := uuid.New().String()
	symbol := r.PathValue("symbol")
	log.Printf("[EDGAR] facts import run %s started for %s", runID, symbol)

	cik, err := client.CIKForSymbol(symbol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	facts, err := client.FetchCompanyFacts(cik)
	if err != nil {
		log.Printf("[EDGAR] facts import run %s: fetch failed: %v", runID, err)
		http.Error(w, "Failed to fetch company facts", http.StatusInternalServerError)
		return
	}

	name := facts.EntityName
	if name == "" {
		name = symbol
	}
	companyID, err := filingRepo.UpsertCompany(r.Context(), models.Company{
		Symbol: symbol,
		CIK:    cik,
		Name:   name,
	})
	if err != nil {
		log.Printf("[EDGAR] facts import run %s: company upsert failed: %v", runID, err)
		http.Error(w, "Failed to save company", http.StatusInternalServerError)
		return
	}

	series := coreEdgar.ExtractMetricSeries(facts)
	if err := metricRepo.UpsertSeries(r.Context(), companyID, series); err != nil {
		log.Printf("[EDGAR] facts import run %s: series upsert failed: %v", runID, err)
		http.Error(w, "Failed to save metric series", http.StatusInternalServerError)
		return
	}

	keys := make([]string, 0, len(series))
	for _, es := range series {
		keys = append(keys, string(es.Key))
	}
	log.Printf("[EDGAR] facts import run %s finished: %d series", runID, len(series))
	json.NewEncoder(w).Encode(FactsImportResponse{
		RunID:   runID,
		Updated: true,
		Metrics: keys,
		Note:    "USD millions (except eps_diluted in USD/sh). GM is a ratio (0-1).",
	})
}
