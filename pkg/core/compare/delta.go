// Package compare implements the metric comparison engine: period
// resolution, ratio derivation, delta math, the comparison table, and the
// deterministic narrative built from it.
//
// Missing or inconsistent data never produces an error here. Every derived
// field is a *float64 that stays nil when an input is absent; the
// propagation rules live in the helpers at the bottom of this file and
// nowhere else.
package compare

import (
	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

// Row is the comparison of one catalog metric across two periods.
// Ratio metrics are expressed on a percentage-point basis: Left/Right are
// the ratio x100 and Absolute is a point difference, not a relative change.
type Row struct {
	Spec     metrics.Spec `json:"spec"`
	Left     *float64     `json:"left,omitempty"`
	Right    *float64     `json:"right,omitempty"`
	Absolute *float64     `json:"absolute,omitempty"`
	Percent  *float64     `json:"percent,omitempty"`
}

// ComputeDelta compares one metric at two periods.
//
// Values come from the raw series for plain metrics and from DeriveRatio
// for ratio metrics; ratio values are scaled x100 before delta math so that
// Absolute is a percentage-point difference. Percent is nil whenever either
// side is missing or the left value is exactly zero.
func ComputeDelta(spec metrics.Spec, store *metrics.Store, leftPeriod, rightPeriod string) Row {
	left := valueAt(spec, store, leftPeriod)
	right := valueAt(spec, store, rightPeriod)
	if spec.IsRatio {
		left = scale(left, 100)
		right = scale(right, 100)
	}
	return Row{
		Spec:     spec,
		Left:     left,
		Right:    right,
		Absolute: sub(right, left),
		Percent:  pctChange(left, right),
	}
}

func valueAt(spec metrics.Spec, store *metrics.Store, period string) *float64 {
	if spec.IsRatio {
		return DeriveRatio(spec.Ratio, store, period)
	}
	v, ok := store.ValueAt(spec.Key, period)
	if !ok {
		return nil
	}
	return ptr(v)
}

// -----------------------------------------------------------------------------
// Optional-value arithmetic. Any nil input yields a nil output; pctChange
// additionally yields nil for a zero base so callers never see Inf or NaN.
// -----------------------------------------------------------------------------

func ptr(v float64) *float64 { return &v }

func scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(*v * factor)
}

func sub(right, left *float64) *float64 {
	if right == nil || left == nil {
		return nil
	}
	return ptr(*right - *left)
}

func pctChange(left, right *float64) *float64 {
	if left == nil || right == nil || *left == 0 {
		return nil
	}
	return ptr((*right - *left) / *left * 100)
}
