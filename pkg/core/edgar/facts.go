package edgar

import (
	"sort"

	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

// =============================================================================
// XBRL COMPANYFACTS TYPES
// =============================================================================

// CompanyFacts is the companyfacts payload: taxonomy -> tag -> fact node.
type CompanyFacts struct {
	CIK        int64                          `json:"cik"`
	EntityName string                         `json:"entityName"`
	Facts      map[string]map[string]FactNode `json:"facts"`
}

// FactNode is all reported values for one us-gaap tag, keyed by unit.
type FactNode struct {
	Label string               `json:"label"`
	Units map[string][]FactRow `json:"units"`
}

// FactRow is one reported value. Val is a pointer because EDGAR sometimes
// serves rows without a numeric value; those are skipped.
type FactRow struct {
	End   string   `json:"end"`
	Filed string   `json:"filed"`
	Accn  string   `json:"accn"`
	Form  string   `json:"form"`
	FY    int      `json:"fy"`
	FP    string   `json:"fp"`
	Val   *float64 `json:"val"`
}

// SeriesRow is one normalized series point, annotated with the accession of
// the filing it was reported in.
type SeriesRow struct {
	End       string
	Filed     string
	Accession string
	Value     float64
}

// ExtractedSeries is one metric series pulled out of companyfacts.
type ExtractedSeries struct {
	Key  metrics.Key
	Unit string
	Rows []SeriesRow
}

// =============================================================================
// SERIES EXTRACTION
// =============================================================================

// pickUnits selects a unit list by preference, then any unit containing
// "USD", then the first available unit (sorted for determinism).
func pickUnits(units map[string][]FactRow, preferred []string) []FactRow {
	if len(units) == 0 {
		return nil
	}
	for _, p := range preferred {
		if rows, ok := units[p]; ok {
			return rows
		}
	}
	keys := make([]string, 0, len(units))
	for k := range units {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if containsUSD(k) {
			return units[k]
		}
	}
	return units[keys[0]]
}

func containsUSD(unit string) bool {
	for i := 0; i+3 <= len(unit); i++ {
		if unit[i:i+3] == "USD" {
			return true
		}
	}
	return false
}

// normalizeRows filters to annual 10-K rows with numeric values and dedupes
// to one row per period end, keeping the latest-filed restatement (a fiscal
// year reappears as a comparative in the following year's 10-K). Output is
// ordered by period end, so the resulting series is date-ascending with
// unique dates.
func normalizeRows(rows []FactRow) []SeriesRow {
	latest := make(map[string]SeriesRow)

	for _, r := range rows {
		if r.Form != "10-K" || r.End == "" || r.Val == nil {
			continue
		}
		cur, seen := latest[r.End]
		if !seen || r.Filed > cur.Filed || (r.Filed == cur.Filed && r.Accn > cur.Accession) {
			latest[r.End] = SeriesRow{End: r.End, Filed: r.Filed, Accession: r.Accn, Value: *r.Val}
		}
	}

	out := make([]SeriesRow, 0, len(latest))
	for _, r := range latest {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].End < out[j].End })
	return out
}

// ExtractSeries picks the first available tag from tagCandidates in the
// us-gaap taxonomy, selects preferred units, and returns the normalized
// 10-K series.
func ExtractSeries(facts *CompanyFacts, tagCandidates []string, unitPrefs []string) []SeriesRow {
	if facts == nil {
		return nil
	}
	gaap := facts.Facts["us-gaap"]
	for _, tag := range tagCandidates {
		node, ok := gaap[tag]
		if !ok {
			continue
		}
		rows := pickUnits(node.Units, unitPrefs)
		if len(rows) == 0 {
			continue
		}
		if normalized := normalizeRows(rows); len(normalized) > 0 {
			return normalized
		}
	}
	return nil
}

// metricTags maps each raw metric to its us-gaap tag candidates, unit
// preferences, and USD-to-millions scaling.
var metricTags = []struct {
	key       metrics.Key
	unit      string
	tags      []string
	unitPrefs []string
	scale     float64
}{
	{metrics.KeyRevenue, "USDm", []string{"RevenueFromContractWithCustomerExcludingAssessedTax", "SalesRevenueNet", "Revenues"}, []string{"USD"}, 1e-6},
	{metrics.KeyGrossProfit, "USDm", []string{"GrossProfit"}, []string{"USD"}, 1e-6},
	{metrics.KeyEPSDiluted, "USD/sh", []string{"EarningsPerShareDiluted"}, []string{"USD/shares", "USD/share"}, 1},
	{metrics.KeyAssets, "USDm", []string{"Assets"}, []string{"USD"}, 1e-6},
	{metrics.KeyLiabilities, "USDm", []string{"Liabilities"}, []string{"USD"}, 1e-6},
	{metrics.KeyOperatingIncome, "USDm", []string{"OperatingIncomeLoss"}, []string{"USD"}, 1e-6},
	{metrics.KeyNetIncome, "USDm", []string{"NetIncomeLoss", "ProfitLoss"}, []string{"USD"}, 1e-6},
	{metrics.KeyEquity, "USDm", []string{"StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest", "StockholdersEquity"}, []string{"USD"}, 1e-6},
	{metrics.KeyCFO, "USDm", []string{"NetCashProvidedByUsedInOperatingActivities"}, []string{"USD"}, 1e-6},
	{metrics.KeyCapEx, "USDm", []string{"PaymentsToAcquirePropertyPlantAndEquipment", "PaymentsForProceedsFromProductiveAssets"}, []string{"USD"}, 1e-6},
}

// ExtractMetricSeries pulls every tracked raw series out of companyfacts,
// scaled to USD millions (EPS stays per-share), plus the two computed
// series: gm = gross_profit / revenue and fcf = cfo + capex (capex is
// stored as reported, usually a negative outflow).
func ExtractMetricSeries(facts *CompanyFacts) []ExtractedSeries {
	byKey := make(map[metrics.Key][]SeriesRow)
	out := make([]ExtractedSeries, 0, len(metricTags)+2)

	for _, mt := range metricTags {
		rows := ExtractSeries(facts, mt.tags, mt.unitPrefs)
		if len(rows) == 0 {
			continue
		}
		if mt.scale != 1 {
			for i := range rows {
				rows[i].Value *= mt.scale
			}
		}
		byKey[mt.key] = rows
		out = append(out, ExtractedSeries{Key: mt.key, Unit: mt.unit, Rows: rows})
	}

	if gm := derivedQuotient(byKey[metrics.KeyGrossProfit], byKey[metrics.KeyRevenue]); len(gm) > 0 {
		out = append(out, ExtractedSeries{Key: metrics.KeyGrossMargin, Unit: "ratio", Rows: gm})
	}
	if fcf := derivedSum(byKey[metrics.KeyCFO], byKey[metrics.KeyCapEx]); len(fcf) > 0 {
		out = append(out, ExtractedSeries{Key: metrics.KeyFCF, Unit: "USDm", Rows: fcf})
	}
	return out
}

// derivedQuotient aligns two series by period end and divides; zero
// denominators are skipped rather than surfaced as Inf.
func derivedQuotient(num, den []SeriesRow) []SeriesRow {
	byEnd := make(map[string]SeriesRow, len(den))
	for _, r := range den {
		byEnd[r.End] = r
	}
	var out []SeriesRow
	for _, n := range num {
		d, ok := byEnd[n.End]
		if !ok || d.Value == 0 {
			continue
		}
		out = append(out, SeriesRow{End: n.End, Filed: n.Filed, Accession: n.Accession, Value: n.Value / d.Value})
	}
	return out
}

func derivedSum(a, b []SeriesRow) []SeriesRow {
	byEnd := make(map[string]SeriesRow, len(b))
	for _, r := range b {
		byEnd[r.End] = r
	}
	var out []SeriesRow
	for _, ra := range a {
		rb, ok := byEnd[ra.End]
		if !ok {
			continue
		}
		out = append(out, SeriesRow{End: ra.End, Filed: ra.Filed, Accession: ra.Accession, Value: ra.Value + rb.Value})
	}
	return out
}

// BuildSeriesStore converts companyfacts into an immutable metric series
// store ready for the comparison engine.
func BuildSeriesStore(facts *CompanyFacts) (*metrics.Store, error) {
	extracted := ExtractMetricSeries(facts)
	series := make([]metrics.Series, 0, len(extracted))
	for _, es := range extracted {
		points := make([]metrics.Point, 0, len(es.Rows))
		for _, r := range es.Rows {
			points = append(points, metrics.Point{Date: r.End, Value: r.Value})
		}
		series = append(series, metrics.Series{Key: es.Key, Unit: es.Unit, Points: points})
	}
	return metrics.NewStore(series)
}
