// Package price provides the HTTP API handler for close-price charts.
package price

import (
	"encoding/json"
	"log"
	"net/http"

	corePrice "github.com/Jaket405/equity-research-copilot/pkg/core/price"
	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

// Package-level fetcher, set up once at startup.
var fetcher *corePrice.Fetcher

// InitHandler wires in the price fetcher.
func InitHandler(f *corePrice.Fetcher) {
	fetcher = f
}

// Response carries the close series. Error is set instead of a non-200
// status when the upstream fetch fails; the chart just renders empty.
type Response struct {
	Series []models.PricePoint `json:"series"`
	Error  string              `json:"error,omitempty"`
}

// HandlePrice handles GET /api/price/{symbol}?range=&interval=.
func HandlePrice(w http.ResponseWriter, r *http.Request) {
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

	symbol := r.PathValue("symbol")
	rng := r.URL.Query().Get("range")
	if rng == "" {
		rng = "1y"
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = "1d"
	}
	if !corePrice.ValidRange(rng) {
		http.Error(w, "Invalid range", http.StatusBadRequest)
		return
	}
	if !corePrice.ValidInterval(interval) {
		http.Error(w, "Invalid interval", http.StatusBadRequest)
		return
	}

	points, err := fetcher.FetchCloses(symbol, rng, interval)
	if err != nil {
		log.Printf("[Price] fetch failed for %s: %v", symbol, err)
		json.NewEncoder(w).Encode(Response{Series: []models.PricePoint{}, Error: err.Error()})
		return
	}
	json.NewEncoder(w).Encode(Response{Series: points})
}
