package edgar

import (
	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

// TenKFilings denormalizes the submissions parallel arrays into the 10-K
// filing catalog, newest first (the order EDGAR serves them in).
// limit caps the result; 0 means no limit.
func TenKFilings(info *SubmissionsResponse, limit int) []models.Filing {
	recent := info.Filings.Recent
	filings := make([]models.Filing, 0)

	for i := range recent.AccessionNumber {
		if recent.Form[i] != "10-K" {
			continue
		}
		f := models.Filing{
			Accession:   recent.AccessionNumber[i],
			Form:        recent.Form[i],
			ParseStatus: "imported",
		}
		if i < len(recent.FilingDate) {
			f.FiledAt = recent.FilingDate[i]
		}
		if i < len(recent.ReportDate) {
			f.PeriodEnd = recent.ReportDate[i]
		}
		filings = append(filings, f)

		if limit > 0 && len(filings) >= limit {
			break
		}
	}
	return filings
}

// PrimaryDocument returns the primary document filename for an accession,
// or "" when the submissions payload does not list it.
func PrimaryDocument(info *SubmissionsResponse, accession string) string {
	recent := info.Filings.Recent
	for i := range recent.AccessionNumber {
		if recent.AccessionNumber[i] == accession && i < len(recent.PrimaryDocument) {
			return recent.PrimaryDocument[i]
		}
	}
	return ""
}
