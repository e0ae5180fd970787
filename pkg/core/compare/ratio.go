package compare

import (
	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

// DeriveRatio computes a margin ratio from raw series at one period.
//
// The result is a raw fraction (0.40, not 40). Scaling to percentage points
// is the delta calculator's job, so the stored-value semantics stay uniform
// for delta math. Returns nil when the numerator is missing or the revenue
// denominator is missing or zero.
func DeriveRatio(kind metrics.RatioKind, store *metrics.Store, period string) *float64 {
	var numKey metrics.Key
	switch kind {
	case metrics.RatioGrossMargin:
		numKey = metrics.KeyGrossProfit
	case metrics.RatioOperatingMargin:
		numKey = metrics.KeyOperatingIncome
	case metrics.RatioNetMargin:
		numKey = metrics.KeyNetIncome
	default:
		return nil
	}

	num, ok := store.ValueAt(numKey, period)
	if !ok {
		return nil
	}
	rev, ok := store.ValueAt(metrics.KeyRevenue, period)
	if !ok || rev == 0 {
		return nil
	}
	return ptr(num / rev)
}
