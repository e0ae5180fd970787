// Seeds the database with a small AAPL demo dataset so the frontend has
// something to render before the first EDGAR import.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Jaket405/equity-research-copilot/pkg/core/edgar"
	"github.com/Jaket405/equity-research-copilot/pkg/core/store"
	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[FATAL] Database unavailable: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	if err := store.EnsureSchema(ctx); err != nil {
		fmt.Printf("[FATAL] Schema setup failed: %v\n", err)
		os.Exit(1)
	}

	filingRepo := store.NewFilingRepo()
	metricRepo := store.NewMetricRepo()

	companyID, err := filingRepo.UpsertCompany(ctx, models.Company{
		Symbol: "AAPL",
		CIK:    "0000320193",
		Name:   "Apple Inc.",
	})
	if err != nil {
		fmt.Printf("[FATAL] Company seed failed: %v\n", err)
		os.Exit(1)
	}

	filings := []models.Filing{
		{Accession: "0000320193-24-000010", Form: "10-Q", PeriodEnd: "2024-03-31", FiledAt: "2024-05-02", ParseStatus: "seed"},
		{Accession: "0000320193-24-000001", Form: "10-Q", PeriodEnd: "2023-12-31", FiledAt: "2024-02-01", ParseStatus: "seed"},
		{Accession: "0000320193-23-000108", Form: "10-K", PeriodEnd: "2023-09-30", FiledAt: "2023-11-03", ParseStatus: "seed"},
	}
	inserted, skipped, err := filingRepo.UpsertFilings(ctx, companyID, filings)
	if err != nil {
		fmt.Printf("[FATAL] Filing seed failed: %v\n", err)
		os.Exit(1)
	}

	series := []edgar.ExtractedSeries{
		{Key: "revenue", Unit: "USDm", Rows: []edgar.SeriesRow{
			{End: "2023-06-30", Value: 81700},
			{End: "2023-09-30", Value: 89500},
			{End: "2023-12-31", Value: 119600},
			{End: "2024-03-31", Value: 90700},
		}},
		{Key: "gm", Unit: "ratio", Rows: []edgar.SeriesRow{
			{End: "2023-06-30", Value: 0.445},
			{End: "2023-09-30", Value: 0.448},
			{End: "2023-12-31", Value: 0.458},
			{End: "2024-03-31", Value: 0.452},
		}},
	}
	if err := metricRepo.UpsertSeries(ctx, companyID, series); err != nil {
		fmt.Printf("[FATAL] Metric seed failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded AAPL demo data: %d filings inserted, %d skipped, %d metric series.\n",
		inserted, skipped, len(series))
}
