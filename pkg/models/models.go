// Package models holds the shared domain entities persisted by the store
// and served by the HTTP API.
package models

// Company identifies one covered issuer.
type Company struct {
	ID     int    `json:"id"`
	Symbol string `json:"symbol"`
	CIK    string `json:"cik"`
	Name   string `json:"name"`
}

// Filing is one periodic disclosure (10-K focus) in the filing catalog.
// PeriodEnd is the reporting period-end date ("2006-01-02") used to align
// the filing with metric series points.
type Filing struct {
	ID          int    `json:"-"`
	Accession   string `json:"accession"`
	Form        string `json:"form"`
	PeriodEnd   string `json:"periodEnd"`
	FiledAt     string `json:"filedAt"`
	ParseStatus string `json:"parseStatus"`
}

// PricePoint is one close-price observation for the price chart endpoint.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}
