package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Jaket405/equity-research-copilot/pkg/core/edgar"
	"github.com/Jaket405/equity-research-copilot/pkg/core/metrics"
)

// MetricRepo handles the metric and metric point tables.
type MetricRepo struct{}

// NewMetricRepo creates a new repository instance.
func NewMetricRepo() *MetricRepo {
	return &MetricRepo{}
}

// UpsertSeries persists extracted series for a company. Points are keyed by
// (metric, period_end); a restated value overwrites the older one. Each
// point is linked to its source filing by accession when that filing is in
// the catalog, otherwise by the company's 10-K with a matching period-end.
func (r *MetricRepo) UpsertSeries(ctx context.Context, companyID int, series []edgar.ExtractedSeries) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	metricQuery := `
		INSERT INTO metrics (company_id, metric_key, unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id, metric_key)
		DO UPDATE SET unit = COALESCE(metrics.unit, EXCLUDED.unit)
		RETURNING id;
	`
	pointQuery := `
		INSERT INTO metric_points (metric_id, period_end, value, source_filing_id)
		VALUES ($1, $2, $3, COALESCE(
			(SELECT id FROM filings WHERE accession = $4),
			(SELECT id FROM filings WHERE company_id = $5 AND form_type = '10-K' AND period_end = $2)
		))
		ON CONFLICT (metric_id, period_end)
		DO UPDATE SET
			value = EXCLUDED.value,
			source_filing_id = COALESCE(EXCLUDED.source_filing_id, metric_points.source_filing_id);
	`

	for _, es := range series {
		var metricID int
		if err := pool.QueryRow(ctx, metricQuery, companyID, string(es.Key), es.Unit).Scan(&metricID); err != nil {
			return fmt.Errorf("failed to upsert metric %s: %w", es.Key, err)
		}
		for _, row := range es.Rows {
			end := toDate(row.End)
			if end == nil {
				continue
			}
			if _, err := pool.Exec(ctx, pointQuery, metricID, *end, row.Value, row.Accession, companyID); err != nil {
				return fmt.Errorf("failed to upsert point %s@%s: %w", es.Key, row.End, err)
			}
		}
	}
	return nil
}

// LoadSeriesStore reads every series for a symbol into an immutable
// snapshot for the comparison engine. Each call builds a fresh store;
// refreshing the data never mutates a snapshot a caller already holds.
func (r *MetricRepo) LoadSeriesStore(ctx context.Context, symbol string) (*metrics.Store, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT m.metric_key, COALESCE(m.unit, ''), p.period_end, p.value
		FROM metrics m
		JOIN companies c ON c.id = m.company_id
		JOIN metric_points p ON p.metric_id = m.id
		WHERE c.symbol = $1
		ORDER BY m.metric_key, p.period_end ASC;
	`
	rows, err := pool.Query(ctx, query, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to load series: %w", err)
	}
	defer rows.Close()

	byKey := make(map[metrics.Key]*metrics.Series)
	var order []metrics.Key
	for rows.Next() {
		var (
			key   string
			unit  string
			end   time.Time
			value float64
		)
		if err := rows.Scan(&key, &unit, &end, &value); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		k := metrics.Key(key)
		sr, ok := byKey[k]
		if !ok {
			sr = &metrics.Series{Key: k, Unit: unit}
			byKey[k] = sr
			order = append(order, k)
		}
		sr.Points = append(sr.Points, metrics.Point{Date: end.Format("2006-01-02"), Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	series := make([]metrics.Series, 0, len(order))
	for _, k := range order {
		series = append(series, *byKey[k])
	}
	return metrics.NewStore(series)
}
