// Package store persists the filing catalog and metric series in Postgres.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the database connection pool using the DATABASE_URL environment variable
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

// GetPool returns the database connection pool
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the database connection pool
func Close() {
	if pool != nil {
		pool.Close()
	}
}

// EnsureSchema creates the tables if they do not exist yet. The seed binary
// runs this on startup so a fresh database is usable immediately.
func EnsureSchema(ctx context.Context) error {
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id SERIAL PRIMARY KEY,
			symbol TEXT UNIQUE NOT NULL,
			cik TEXT,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS filings (
			id SERIAL PRIMARY KEY,
			company_id INT NOT NULL REFERENCES companies(id),
			accession TEXT UNIQUE NOT NULL,
			form_type TEXT NOT NULL,
			period_end DATE,
			filed_at DATE,
			parse_status TEXT DEFAULT 'seed'
		)`,
		`CREATE TABLE IF NOT EXISTS metrics (
			id SERIAL PRIMARY KEY,
			company_id INT NOT NULL REFERENCES companies(id),
			metric_key TEXT NOT NULL,
			unit TEXT,
			UNIQUE (company_id, metric_key)
		)`,
		`CREATE TABLE IF NOT EXISTS metric_points (
			id SERIAL PRIMARY KEY,
			metric_id INT NOT NULL REFERENCES metrics(id),
			period_end DATE NOT NULL,
			value DOUBLE PRECISION NOT NULL,
			source_filing_id INT REFERENCES filings(id),
			UNIQUE (metric_id, period_end)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
