package compare

import (
	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

// BuildComparison runs the delta calculator across the fixed metric catalog
// and returns one row per catalog entry, in catalog order.
//
// The length of the result always equals len(metrics.Catalog) regardless of
// how much data the store holds; rows with no data keep nil fields. No
// filtering happens here, callers decide whether to hide empty rows.
func BuildComparison(store *metrics.Store, leftPeriod, rightPeriod string) []Row {
	rows := make([]Row, 0, len(metrics.Catalog))
	for _, spec := range metrics.Catalog {
		rows = append(rows, ComputeDelta(spec, store, leftPeriod, rightPeriod))
	}
	return rows
}
