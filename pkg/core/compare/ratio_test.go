package compare

import (
	"math"
	"testing"

	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

func TestDeriveRatio_GrossMargin(t *testing.T) {
	// GM = 44.5 / 100 = 0.445 as a raw fraction; no x100 here.
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 100}}},
		metrics.Series{Key: metrics.KeyGrossProfit, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 44.5}}},
	)

	got := DeriveRatio(metrics.RatioGrossMargin, store, rightPeriod)
	if got == nil || math.Abs(*got-0.445) > 1e-9 {
		t.Errorf("expected 0.445, got %v", got)
	}
}

func TestDeriveRatio_ZeroRevenue(t *testing.T) {
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 0}}},
		metrics.Series{Key: metrics.KeyGrossProfit, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 10}}},
	)

	if got := DeriveRatio(metrics.RatioGrossMargin, store, rightPeriod); got != nil {
		t.Errorf("expected nil for zero denominator, got %f", *got)
	}
}

func TestDeriveRatio_MissingNumerator(t *testing.T) {
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 100}}},
	)

	if got := DeriveRatio(metrics.RatioGrossMargin, store, rightPeriod); got != nil {
		t.Errorf("expected nil for missing numerator, got %f", *got)
	}
}

func TestDeriveRatio_OperatingAndNetMargin(t *testing.T) {
	store := testStore(t,
		metrics.Series{Key: metrics.KeyRevenue, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 200}}},
		metrics.Series{Key: metrics.KeyOperatingIncome, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 60}}},
		metrics.Series{Key: metrics.KeyNetIncome, Unit: "USDm", Points: []metrics.Point{{Date: rightPeriod, Value: 50}}},
	)

	// 60 / 200 = 0.30
	if got := DeriveRatio(metrics.RatioOperatingMargin, store, rightPeriod); got == nil || math.Abs(*got-0.30) > 1e-9 {
		t.Errorf("operating margin expected 0.30, got %v", got)
	}
	// 50 / 200 = 0.25
	if got := DeriveRatio(metrics.RatioNetMargin, store, rightPeriod); got == nil || math.Abs(*got-0.25) > 1e-9 {
		t.Errorf("net margin expected 0.25, got %v", got)
	}
}
