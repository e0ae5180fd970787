package compare

import (
	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

// ResolvePeriod maps a filing accession number to its period-end date using
// the filing catalog. The second return is false when the accession is not
// in the catalog or carries no period-end; callers treat that as
// "comparison not ready" rather than a hard error.
func ResolvePeriod(catalog []models.Filing, accession string) (string, bool) {
	for _, f := range catalog {
		if f.Accession == accession {
			if f.PeriodEnd == "" {
				return "", false
			}
			return f.PeriodEnd, true
		}
	}
	return "", false
}
