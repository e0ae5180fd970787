package edgar

import (
	"math"
	"testing"

	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

func fv(v float64) *float64 { return &v }

func sampleFacts() *CompanyFacts {
	// Two fiscal years. FY2022 revenue is reported twice: once in the 2022
	// 10-K and restated in the 2023 10-K, plus a 10-Q row that must be
	// ignored entirely.
	return &CompanyFacts{
		CIK:        320193,
		EntityName: "Apple Inc.",
		Facts: map[string]map[string]FactNode{
			"us-gaap": {
				"RevenueFromContractWithCustomerExcludingAssessedTax": {
					Units: map[string][]FactRow{
						"USD": {
							{End: "2022-09-24", Filed: "2022-10-28", Accn: "0000320193-22-000108", Form: "10-K", Val: fv(394_000_000_000)},
							{End: "2022-09-24", Filed: "2023-11-03", Accn: "0000320193-23-000106", Form: "10-K", Val: fv(394_328_000_000)},
							{End: "2023-09-30", Filed: "2023-11-03", Accn: "0000320193-23-000106", Form: "10-K", Val: fv(383_285_000_000)},
							{End: "2023-07-01", Filed: "2023-08-04", Accn: "0000320193-23-000077", Form: "10-Q", Val: fv(81_797_000_000)},
						},
					},
				},
				"GrossProfit": {
					Units: map[string][]FactRow{
						"USD": {
							{End: "2022-09-24", Filed: "2022-10-28", Accn: "0000320193-22-000108", Form: "10-K", Val: fv(170_782_000_000)},
							{End: "2023-09-30", Filed: "2023-11-03", Accn: "0000320193-23-000106", Form: "10-K", Val: fv(169_148_000_000)},
						},
					},
				},
				"EarningsPerShareDiluted": {
					Units: map[string][]FactRow{
						"USD/shares": {
							{End: "2023-09-30", Filed: "2023-11-03", Accn: "0000320193-23-000106", Form: "10-K", Val: fv(6.13)},
						},
					},
				},
			},
		},
	}
}

func TestExtractSeries_TenKOnlyAndDedupe(t *testing.T) {
	rows := ExtractSeries(sampleFacts(),
		[]string{"RevenueFromContractWithCustomerExcludingAssessedTax", "SalesRevenueNet", "Revenues"},
		[]string{"USD"})

	if len(rows) != 2 {
		t.Fatalf("expected 2 annual rows, got %d", len(rows))
	}
	// Date-ascending; the FY2022 row is the 2023-filed restatement.
	if rows[0].End != "2022-09-24" || rows[1].End != "2023-09-30" {
		t.Errorf("rows not date-ascending: %v", rows)
	}
	if rows[0].Value != 394_328_000_000 {
		t.Errorf("FY2022 should keep the latest-filed value, got %f", rows[0].Value)
	}
	if rows[0].Accession != "0000320193-23-000106" {
		t.Errorf("FY2022 should carry the restating accession, got %s", rows[0].Accession)
	}
}

func TestExtractSeries_TagFallback(t *testing.T) {
	// The first candidate is absent, so the second must be used.
	rows := ExtractSeries(sampleFacts(), []string{"SalesRevenueNet", "GrossProfit"}, []string{"USD"})
	if len(rows) != 2 {
		t.Fatalf("expected fallback to GrossProfit, got %d rows", len(rows))
	}
	if rows[1].Value != 169_148_000_000 {
		t.Errorf("unexpected value %f", rows[1].Value)
	}
}

func TestExtractMetricSeries_ScalesAndDerives(t *testing.T) {
	extracted := ExtractMetricSeries(sampleFacts())

	byKey := map[metrics.Key]ExtractedSeries{}
	for _, es := range extracted {
		byKey[es.Key] = es
	}

	rev, ok := byKey[metrics.KeyRevenue]
	if !ok {
		t.Fatalf("revenue series missing")
	}
	// 383,285,000,000 USD -> 383,285 USDm
	if got := rev.Rows[1].Value; math.Abs(got-383285) > 1e-6 {
		t.Errorf("revenue not scaled to millions: %f", got)
	}
	if rev.Unit != "USDm" {
		t.Errorf("revenue unit expected USDm, got %s", rev.Unit)
	}

	// EPS is kept per-share, not scaled.
	eps := byKey[metrics.KeyEPSDiluted]
	if len(eps.Rows) != 1 || eps.Rows[0].Value != 6.13 {
		t.Errorf("EPS should stay per-share: %+v", eps.Rows)
	}

	// gm = 169,148 / 383,285 = 0.44131... for FY2023
	gm, ok := byKey[metrics.KeyGrossMargin]
	if !ok {
		t.Fatalf("derived gm series missing")
	}
	want := 169148.0 / 383285.0
	var fy2023 *SeriesRow
	for i := range gm.Rows {
		if gm.Rows[i].End == "2023-09-30" {
			fy2023 = &gm.Rows[i]
		}
	}
	if fy2023 == nil || math.Abs(fy2023.Value-want) > 1e-9 {
		t.Errorf("gm FY2023 expected %f, got %+v", want, fy2023)
	}
	if gm.Unit != "ratio" {
		t.Errorf("gm unit expected ratio, got %s", gm.Unit)
	}
}

func TestBuildSeriesStore(t *testing.T) {
	store, err := BuildSeriesStore(sampleFacts())
	if err != nil {
		t.Fatalf("BuildSeriesStore: %v", err)
	}
	if v, ok := store.ValueAt(metrics.KeyRevenue, "2023-09-30"); !ok || math.Abs(v-383285) > 1e-6 {
		t.Errorf("store lookup expected 383285, got (%f, %v)", v, ok)
	}
}

func TestTenKFilings(t *testing.T) {
	info := &SubmissionsResponse{}
	info.Filings.Recent = RecentFilings{
		AccessionNumber: []string{"acc-1", "acc-2", "acc-3"},
		Form:            []string{"10-Q", "10-K", "10-K"},
		FilingDate:      []string{"2024-02-01", "2023-11-03", "2022-10-28"},
		ReportDate:      []string{"2023-12-30", "2023-09-30", "2022-09-24"},
		PrimaryDocument: []string{"q1.htm", "aapl-10k.htm", "aapl-10k-2022.htm"},
	}

	filings := TenKFilings(info, 0)
	if len(filings) != 2 {
		t.Fatalf("expected 2 10-Ks, got %d", len(filings))
	}
	if filings[0].Accession != "acc-2" || filings[0].PeriodEnd != "2023-09-30" {
		t.Errorf("unexpected first filing %+v", filings[0])
	}

	if got := TenKFilings(info, 1); len(got) != 1 {
		t.Errorf("limit 1 expected 1 filing, got %d", len(got))
	}

	if doc := PrimaryDocument(info, "acc-2"); doc != "aapl-10k.htm" {
		t.Errorf("primary document expected aapl-10k.htm, got %s", doc)
	}
}
