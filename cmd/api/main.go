package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apiEdgar "github.com/Jaket405/equity-research-copilot/pkg/api/edgar"
	"github.com/Jaket405/equity-research-copilot/pkg/api/filings"
	apiPrice "github.com/Jaket405/equity-research-copilot/pkg/api/price"
	"github.com/Jaket405/equity-research-copilot/pkg/api/tickers"
	coreEdgar "github.com/Jaket405/equity-research-copilot/pkg/core/edgar"
	"github.com/Jaket405/equity-research-copilot/pkg/core/llm"
	corePrice "github.com/Jaket405/equity-research-copilot/pkg/core/price"
	"github.com/Jaket405/equity-research-copilot/pkg/core/store"
	"github.com/Jaket405/equity-research-copilot/pkg/core/summary"
)

// appConfig mirrors config/app.yaml. Every field has a working default so
// the file is optional.
type appConfig struct {
	Port         int    `yaml:"port"`
	SummaryModel string `yaml:"summary_model"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := appConfig{Port: 8080, SummaryModel: "gemini-2.0-flash"}
	if configData, err := os.ReadFile("config/app.yaml"); err == nil {
		yaml.Unmarshal(configData, &cfg)
	}
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		cfg.Port = p
	}

	// Database: warn and keep serving. EDGAR listing, summaries and price
	// charts work without it; catalog and metric endpoints will 500.
	ctx := context.Background()
	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[WARNING] Database unavailable: %v\n", err)
		fmt.Println("  Import and catalog endpoints will fail until DATABASE_URL is set.")
	} else {
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			fmt.Printf("[WARNING] Schema setup failed: %v\n", err)
		}
	}

	secClient := coreEdgar.NewClient()
	apiEdgar.InitHandler(secClient)
	filings.InitHandler(summary.NewSummarizer(llm.FromEnv(cfg.SummaryModel), secClient))
	apiPrice.InitHandler(corePrice.NewFetcher())

	// Ticker endpoints (DB-backed)
	http.HandleFunc("/api/tickers/{symbol}/filings", tickers.HandleFilings)
	http.HandleFunc("/api/tickers/{symbol}/metrics", tickers.HandleMetrics)
	http.HandleFunc("/api/tickers/{symbol}/compare", tickers.HandleCompare)

	// Filing summary
	http.HandleFunc("/api/filings/{accession}/summary", filings.HandleSummary)

	// EDGAR list/import (10-K only)
	http.HandleFunc("/api/edgar/{symbol}/recent", apiEdgar.HandleRecent)
	http.HandleFunc("/api/edgar/{symbol}/import", apiEdgar.HandleImport)
	http.HandleFunc("/api/edgar/{symbol}/facts/import", apiEdgar.HandleFactsImport)

	// Price chart
	http.HandleFunc("/api/price/{symbol}", apiPrice.HandlePrice)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - GET  /api/tickers/{symbol}/filings")
	fmt.Println("  - GET  /api/tickers/{symbol}/metrics")
	fmt.Println("  - GET  /api/tickers/{symbol}/compare?left=&right=")
	fmt.Println("  - GET  /api/filings/{accession}/summary")
	fmt.Println("  - GET  /api/edgar/{symbol}/recent")
	fmt.Println("  - GET  /api/edgar/{symbol}/import")
	fmt.Println("  - GET  /api/edgar/{symbol}/facts/import")
	fmt.Println("  - GET  /api/price/{symbol}?range=&interval=")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
