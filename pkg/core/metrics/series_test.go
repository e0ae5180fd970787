package metrics

import "testing"

func TestNewStore_RejectsUnknownKey(t *testing.T) {
	_, err := NewStore([]Series{{Key: "free_cashflow_yield", Points: nil}})
	if err == nil {
		t.Errorf("expected error for key outside the closed identifier set")
	}
}

func TestNewStore_RejectsDuplicateKey(t *testing.T) {
	_, err := NewStore([]Series{
		{Key: KeyRevenue},
		{Key: KeyRevenue},
	})
	if err == nil {
		t.Errorf("expected error for duplicate series key")
	}
}

func TestValueAt(t *testing.T) {
	store, err := NewStore([]Series{{Key: KeyRevenue, Unit: "USDm", Points: []Point{
		{Date: "2023-09-30", Value: 383285},
	}}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if v, ok := store.ValueAt(KeyRevenue, "2023-09-30"); !ok || v != 383285 {
		t.Errorf("expected (383285, true), got (%v, %v)", v, ok)
	}
	if _, ok := store.ValueAt(KeyRevenue, "2020-09-26"); ok {
		t.Errorf("missing date should not resolve")
	}
	if _, ok := store.ValueAt(KeyEquity, "2023-09-30"); ok {
		t.Errorf("missing series should not resolve")
	}
}

func TestCatalogShape(t *testing.T) {
	if len(Catalog) != 8 {
		t.Fatalf("catalog expected 8 entries, got %d", len(Catalog))
	}
	seen := map[Key]bool{}
	for _, spec := range Catalog {
		if spec.Key == "" || !IsKnown(spec.Key) {
			t.Errorf("catalog entry %q outside the closed identifier set", spec.Key)
		}
		if seen[spec.Key] {
			t.Errorf("catalog entry %q duplicated", spec.Key)
		}
		seen[spec.Key] = true
		if spec.UpVerb == "" || spec.DownVerb == "" {
			t.Errorf("catalog entry %q missing verb pair", spec.Key)
		}
		if spec.IsRatio && spec.Ratio == RatioNone {
			t.Errorf("ratio entry %q has no ratio kind", spec.Key)
		}
	}
	if Catalog[0].Key != KeyRevenue {
		t.Errorf("revenue leads the catalog, got %q", Catalog[0].Key)
	}
}
