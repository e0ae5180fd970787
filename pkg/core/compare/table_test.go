package compare

import (
	"testing"

	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

func TestBuildComparison_AlwaysFullCatalog(t *testing.T) {
	// An empty store still yields one row per catalog entry.
	store := testStore(t)

	rows := BuildComparison(store, leftPeriod, rightPeriod)

	if len(rows) != len(metrics.Catalog) {
		t.Fatalf("expected %d rows, got %d", len(metrics.Catalog), len(rows))
	}
	for i, row := range rows {
		if row.Spec.Key != metrics.Catalog[i].Key {
			t.Errorf("row %d: expected %q, got %q", i, metrics.Catalog[i].Key, row.Spec.Key)
		}
		if row.Left != nil || row.Right != nil || row.Absolute != nil || row.Percent != nil {
			t.Errorf("row %d (%s): expected all fields nil on empty store", i, row.Spec.Key)
		}
	}
}

func TestBuildComparison_StableAcrossCalls(t *testing.T) {
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 394328},
			{Date: rightPeriod, Value: 383285},
		}},
		metrics.Series{Key: metrics.KeyNetIncome, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 99803},
			{Date: rightPeriod, Value: 96995},
		}},
	)

	first := BuildComparison(store, leftPeriod, rightPeriod)
	second := BuildComparison(store, leftPeriod, rightPeriod)

	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Spec.Key != second[i].Spec.Key {
			t.Errorf("row %d key drifted between calls: %q vs %q", i, first[i].Spec.Key, second[i].Spec.Key)
		}
		a, b := first[i].Absolute, second[i].Absolute
		if (a == nil) != (b == nil) || (a != nil && *a != *b) {
			t.Errorf("row %d absolute drifted between calls", i)
		}
	}
}

func TestBuildComparison_PartialData(t *testing.T) {
	// Only revenue has both periods; net income is missing the left one.
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{
			{Date: leftPeriod, Value: 100},
			{Date: rightPeriod, Value: 120},
		}},
		metrics.Series{Key: metrics.KeyNetIncome, Unit: "USDm", Points: []metrics.Point{
			{Date: rightPeriod, Value: 30},
		}},
	)

	rows := BuildComparison(store, leftPeriod, rightPeriod)

	byKey := map[metrics.Key]Row{}
	for _, row := range rows {
		byKey[row.Spec.Key] = row
	}

	if byKey[metrics.KeyRevenue].Absolute == nil {
		t.Errorf("revenue row should have a defined delta")
	}
	ni := byKey[metrics.KeyNetIncome]
	if ni.Right == nil || ni.Absolute != nil {
		t.Errorf("net income row should carry the right value but no delta")
	}
	if byKey[metrics.KeyEquity].Left != nil {
		t.Errorf("equity row should be fully undefined")
	}
}
