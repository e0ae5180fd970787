package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Jaket405/equity-research-copilot/pkg/models"
)

// FilingRepo handles the company and filing catalog tables.
type FilingRepo struct{}

// NewFilingRepo creates a new repository instance.
func NewFilingRepo() *FilingRepo {
	return &FilingRepo{}
}

// toDate parses a "2006-01-02" string into a nullable date for insertion.
func toDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func fromDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// UpsertCompany inserts or refreshes a company and returns its id.
func (r *FilingRepo) UpsertCompany(ctx context.Context, company models.Company) (int, error) {
	pool := GetPool()
	if pool == nil {
		return 0, fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO companies (symbol, cik, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol)
		DO UPDATE SET
			cik = COALESCE(NULLIF(EXCLUDED.cik, ''), companies.cik),
			name = COALESCE(NULLIF(EXCLUDED.name, ''), companies.name)
		RETURNING id;
	`
	var id int
	if err := pool.QueryRow(ctx, query, company.Symbol, company.CIK, company.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert company: %w", err)
	}
	return id, nil
}

// CompanyID looks up a company by symbol. The second return is false when
// the symbol is not covered yet.
func (r *FilingRepo) CompanyID(ctx context.Context, symbol string) (int, bool, error) {
	pool := GetPool()
	if pool == nil {
		return 0, false, fmt.Errorf("database pool not initialized")
	}

	var id int
	err := pool.QueryRow(ctx, `SELECT id FROM companies WHERE symbol = $1`, symbol).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to look up company: %w", err)
	}
	return id, true, nil
}

// CIKForAccession finds the CIK of the company that filed the given
// accession. The second return is false when the filing is not on record.
func (r *FilingRepo) CIKForAccession(ctx context.Context, accession string) (string, bool, error) {
	pool := GetPool()
	if pool == nil {
		return "", false, fmt.Errorf("database pool not initialized")
	}

	var cik string
	err := pool.QueryRow(ctx, `
		SELECT c.cik FROM filings f
		JOIN companies c ON c.id = f.company_id
		WHERE f.accession = $1`, accession).Scan(&cik)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up filing: %w", err)
	}
	return cik, true, nil
}

// UpsertFilings inserts the given filings, skipping accessions already
// present. Returns how many rows were inserted and how many skipped.
func (r *FilingRepo) UpsertFilings(ctx context.Context, companyID int, filings []models.Filing) (int, int, error) {
	pool := GetPool()
	if pool == nil {
		return 0, 0, fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO filings (company_id, accession, form_type, period_end, filed_at, parse_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (accession) DO NOTHING;
	`
	inserted, skipped := 0, 0
	for _, f := range filings {
		status := f.ParseStatus
		if status == "" {
			status = "imported"
		}
		tag, err := pool.Exec(ctx, query, companyID, f.Accession, f.Form, toDate(f.PeriodEnd), toDate(f.FiledAt), status)
		if err != nil {
			return inserted, skipped, fmt.Errorf("failed to insert filing %s: %w", f.Accession, err)
		}
		if tag.RowsAffected() > 0 {
			inserted++
		} else {
			skipped++
		}
	}
	return inserted, skipped, nil
}

// ListFilings returns the filing catalog for a symbol, newest filed first.
// An unknown symbol yields an empty catalog, not an error.
func (r *FilingRepo) ListFilings(ctx context.Context, symbol string) ([]models.Filing, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT f.accession, f.form_type, f.period_end, f.filed_at, COALESCE(f.parse_status, 'seed')
		FROM filings f
		JOIN companies c ON c.id = f.company_id
		WHERE c.symbol = $1
		ORDER BY f.filed_at DESC NULLS LAST;
	`
	rows, err := pool.Query(ctx, query, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings: %w", err)
	}
	defer rows.Close()

	var filings []models.Filing
	for rows.Next() {
		var (
			f         models.Filing
			periodEnd *time.Time
			filedAt   *time.Time
		)
		if err := rows.Scan(&f.Accession, &f.Form, &periodEnd, &filedAt, &f.ParseStatus); err != nil {
			return nil, fmt.Errorf("failed to scan filing: %w", err)
		}
		f.PeriodEnd = fromDate(periodEnd)
		f.FiledAt = fromDate(filedAt)
		filings = append(filings, f)
	}
	return filings, rows.Err()
}
