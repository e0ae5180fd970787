package compare

import (
	"strings"
	"testing"

	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

func TestGenerateNarrative_Revenue(t *testing.T) {
	store := testStore(t, metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{
		{Date: leftPeriod, Value: 100},
		{Date: rightPeriod, Value: 120},
	}})

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	want := "Revenue increased 20.0% (+20), from 100 to 120."
	if len(got) != 1 || got[0] != want {
		t.Errorf("expected [%q], got %v", want, got)
	}
}

func TestGenerateNarrative_GrossMarginContraction(t *testing.T) {
	// Raw fractions 0.40 -> 0.375 must read as 40.0% -> 37.5%, a 2.5 p.p.
	// contraction, never a relative 6.25%.
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 100},
			{Date: rightPeriod, Value: 100},
		}},
		metrics.Series{Key: metrics.KeyGrossProfit, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 40},
			{Date: rightPeriod, Value: 37.5},
		}},
	)

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	want := "Gross margin contracted 2.5 p.p., from 40.0% to 37.5%."
	found := false
	for _, s := range got {
		if s == want {
			found = true
		}
		if strings.Contains(s, "6.2") || strings.Contains(s, "0.025") {
			t.Errorf("margin sentence leaked relative or fractional math: %q", s)
		}
	}
	if !found {
		t.Errorf("expected %q in %v", want, got)
	}
}

func TestGenerateNarrative_ZeroBaseOmitsPercent(t *testing.T) {
	store := testStore(t, metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{
		{Date: leftPeriod, Value: 0},
		{Date: rightPeriod, Value: 50},
	}})

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	want := "Revenue increased (+50), from 0 to 50."
	if len(got) != 1 || got[0] != want {
		t.Errorf("expected [%q], got %v", want, got)
	}
	if strings.Contains(got[0], "Inf") || strings.Contains(got[0], "NaN") {
		t.Errorf("zero base must never print Inf/NaN: %q", got[0])
	}
}

func TestGenerateNarrative_EPSPrecision(t *testing.T) {
	// EPS 6.00 -> 6.30: +0.30 absolute, (6.30-6.00)/6.00*100 = 5.0%.
	store := testStore(t, metrics.Series{Key: metrics.KeyEPSDiluted, Unit: "USD/sh", Points: []metrics.Point{
		{Date: leftPeriod, Value: 6.00},
		{Date: rightPeriod, Value: 6.30},
	}})

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	want := "Diluted EPS rose 5.0% (+0.30), from 6.00 to 6.30."
	if len(got) != 1 || got[0] != want {
		t.Errorf("expected [%q], got %v", want, got)
	}
}

func TestGenerateNarrative_ZeroDeltaTakesIncreaseVerb(t *testing.T) {
	store := testStore(t, metrics.Series{Key: metrics.KeyAssets, Unit: "USDm", Points: []metrics.Point{
		{Date: leftPeriod, Value: 1000},
		{Date: rightPeriod, Value: 1000},
	}})

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	want := "Total assets grew 0.0% (+0), from 1,000 to 1,000."
	if len(got) != 1 || got[0] != want {
		t.Errorf("expected [%q], got %v", want, got)
	}
}

func TestGenerateNarrative_CatalogOrder(t *testing.T) {
	// Equity moves far more than revenue; order must still be catalog order.
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 100},
			{Date: rightPeriod, Value: 101},
		}},
		metrics.Series{Key: metrics.KeyEquity, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 100},
			{Date: rightPeriod, Value: 900},
		}},
	)

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "Revenue ") {
		t.Errorf("first statement should be revenue, got %q", got[0])
	}
	if !strings.HasPrefix(got[1], "Shareholders' equity ") {
		t.Errorf("second statement should be equity, got %q", got[1])
	}
}

func TestGenerateNarrative_MissingPeriodContributesNothing(t *testing.T) {
	// Liabilities has no left point, so it stays silent while assets renders.
	store := testStore(t,
		metrics.Series{Key: metrics.KeyAssets, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 352755},
			{Date: rightPeriod, Value: 352583},
		}},
		metrics.Series{Key: metrics.KeyLiabilities, Unit: "USDm", Points: []metrics.Point{
			{Date: rightPeriod, Value: 290437},
		}},
	)

	got := GenerateNarrative(BuildComparison(store, leftPeriod, rightPeriod))

	if len(got) != 1 {
		t.Fatalf("expected 1 statement, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "Total assets declined ") {
		t.Errorf("unexpected statement %q", got[0])
	}
}
