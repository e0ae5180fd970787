// Package metrics defines the metric identifier set, the per-ticker series
// store, and the fixed catalog of metrics tracked by the comparison engine.
package metrics

// Key identifies one metric series. The set of keys is closed; free-form
// strings are rejected at store construction time.
type Key string

const (
	KeyRevenue         Key = "revenue"
	KeyGrossProfit     Key = "gross_profit"
	KeyGrossMargin     Key = "gm"
	KeyEPSDiluted      Key = "eps_diluted"
	KeyAssets          Key = "assets"
	KeyLiabilities     Key = "liabilities"
	KeyOperatingIncome Key = "operating_income"
	KeyNetIncome       Key = "net_income"
	KeyEquity          Key = "equity"
	KeyCFO             Key = "cfo"
	KeyCapEx           Key = "capex"
	KeyFCF             Key = "fcf"
)

// knownKeys is the closed metric identifier set.
var knownKeys = map[Key]bool{
	KeyRevenue:         true,
	KeyGrossProfit:     true,
	KeyGrossMargin:     true,
	KeyEPSDiluted:      true,
	KeyAssets:          true,
	KeyLiabilities:     true,
	KeyOperatingIncome: true,
	KeyNetIncome:       true,
	KeyEquity:          true,
	KeyCFO:             true,
	KeyCapEx:           true,
	KeyFCF:             true,
}

// IsKnown reports whether k belongs to the closed metric identifier set.
func IsKnown(k Key) bool { return knownKeys[k] }

// RatioKind selects a derived margin ratio.
type RatioKind int

const (
	RatioNone RatioKind = iota
	RatioGrossMargin
	RatioOperatingMargin
	RatioNetMargin
)

// Spec describes one tracked metric: display label, decimal precision,
// whether the metric is a derived ratio, and the verb pair used by the
// narrative generator (first verb for delta >= 0, second for negative).
type Spec struct {
	Key      Key       `json:"key"`
	Label    string    `json:"label"`
	Digits   int       `json:"digits"`
	IsRatio  bool      `json:"is_ratio"`
	Ratio    RatioKind `json:"-"`
	UpVerb   string    `json:"-"`
	DownVerb string    `json:"-"`
}

// Catalog is the fixed ordered list of metrics the comparison table and the
// narrative cover. Order here is output order; it is never re-sorted.
var Catalog = []Spec{
	{Key: KeyRevenue, Label: "Revenue", Digits: 0, UpVerb: "increased", DownVerb: "decreased"},
	{Key: KeyGrossMargin, Label: "Gross margin", Digits: 1, IsRatio: true, Ratio: RatioGrossMargin, UpVerb: "expanded", DownVerb: "contracted"},
	{Key: KeyEPSDiluted, Label: "Diluted EPS", Digits: 2, UpVerb: "rose", DownVerb: "fell"},
	{Key: KeyAssets, Label: "Total assets", Digits: 0, UpVerb: "grew", DownVerb: "declined"},
	{Key: KeyLiabilities, Label: "Total liabilities", Digits: 0, UpVerb: "grew", DownVerb: "declined"},
	{Key: KeyOperatingIncome, Label: "Operating income", Digits: 0, UpVerb: "rose", DownVerb: "fell"},
	{Key: KeyNetIncome, Label: "Net income", Digits: 0, UpVerb: "rose", DownVerb: "fell"},
	{Key: KeyEquity, Label: "Shareholders' equity", Digits: 0, UpVerb: "grew", DownVerb: "declined"},
}
