package compare

import (
	"fmt"
	"math"
)

// GenerateNarrative turns comparison rows into deterministic sentences, one
// per metric whose absolute delta is defined, in catalog order. No
// reordering by magnitude: the output order always equals the row order.
//
// Direction convention: a delta >= 0 selects the catalog's increase verb,
// a negative delta the decrease verb. An exactly-zero delta reads as the
// increase verb; that is a documented convention, not a magnitude claim.
func GenerateNarrative(rows []Row) []string {
	statements := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Absolute == nil {
			continue
		}
		statements = append(statements, phrase(row))
	}
	return statements
}

func phrase(row Row) string {
	spec := row.Spec
	verb := spec.UpVerb
	if *row.Absolute < 0 {
		verb = spec.DownVerb
	}

	// Ratio metrics speak in percentage points, never percent-of-percent.
	if spec.IsRatio {
		return fmt.Sprintf("%s %s %s p.p., from %s%% to %s%%.",
			spec.Label, verb,
			formatNumber(math.Abs(*row.Absolute), spec.Digits),
			formatNumber(*row.Left, spec.Digits),
			formatNumber(*row.Right, spec.Digits))
	}

	// Plain metrics lead with the relative move when it exists; a zero base
	// drops the percent clause instead of printing Inf.
	if row.Percent != nil {
		return fmt.Sprintf("%s %s %s%% (%s), from %s to %s.",
			spec.Label, verb,
			formatNumber(math.Abs(*row.Percent), 1),
			formatSigned(*row.Absolute, spec.Digits),
			formatNumber(*row.Left, spec.Digits),
			formatNumber(*row.Right, spec.Digits))
	}
	return fmt.Sprintf("%s %s (%s), from %s to %s.",
		spec.Label, verb,
		formatSigned(*row.Absolute, spec.Digits),
		formatNumber(*row.Left, spec.Digits),
		formatNumber(*row.Right, spec.Digits))
}
