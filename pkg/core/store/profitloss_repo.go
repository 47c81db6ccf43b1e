package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"franchise_dashboard/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoProfitLoss is returned when a restaurant has no stored P&L years.
var ErrNoProfitLoss = errors.New("no profit and loss data for restaurant")

// ProfitLossStore persists parsed P&L years per restaurant site.
type ProfitLossStore interface {
	// SaveYears upserts one row per (site, year).
	SaveYears(ctx context.Context, siteNumber string, years []models.YearlyData, source string) error
	// LoadYears returns the stored years in ascending order.
	LoadYears(ctx context.Context, siteNumber string) ([]models.YearlyData, error)
}

// NewProfitLossStore picks Postgres when a pool is available and falls back
// to a local SQLite file otherwise.
func NewProfitLossStore(pool *pgxpool.Pool, sqlitePath string) (ProfitLossStore, error) {
	if pool != nil {
		return NewPostgresProfitLossRepo(pool), nil
	}
	log.Printf("[STORE] No database pool, using SQLite at %s", sqlitePath)
	return NewSQLiteProfitLossRepo(sqlitePath)
}

// PostgresProfitLossRepo stores years as JSONB in profit_loss_data.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS profit_loss_data (
//	  site_number TEXT NOT NULL,
//	  year INTEGER NOT NULL,
//	  data JSONB NOT NULL,
//	  source TEXT NOT NULL DEFAULT '',
//	  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	  PRIMARY KEY (site_number, year)
//	);
type PostgresProfitLossRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresProfitLossRepo(pool *pgxpool.Pool) *PostgresProfitLossRepo {
	return &PostgresProfitLossRepo{pool: pool}
}

func (r *PostgresProfitLossRepo) SaveYears(ctx context.Context, siteNumber string, years []models.YearlyData, source string) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO profit_loss_data (site_number, year, data, source, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (site_number, year)
		DO UPDATE SET
			data = EXCLUDED.data,
			source = EXCLUDED.source,
			updated_at = EXCLUDED.updated_at;
	`
	now := time.Now()
	for _, y := range years {
		data, err := json.Marshal(y)
		if err != nil {
			return fmt.Errorf("failed to marshal year %d: %w", y.Year, err)
		}
		if _, err := tx.Exec(ctx, query, siteNumber, y.Year, data, source, now); err != nil {
			return fmt.Errorf("failed to save year %d: %w", y.Year, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profit and loss: %w", err)
	}
	return nil
}

func (r *PostgresProfitLossRepo) LoadYears(ctx context.Context, siteNumber string) ([]models.YearlyData, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := r.pool.Query(ctx, `SELECT data FROM profit_loss_data WHERE site_number = $1 ORDER BY year ASC`, siteNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load profit and loss: %w", err)
	}
	defer rows.Close()

	var years []models.YearlyData
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var y models.YearlyData
		if err := json.Unmarshal(data, &y); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, ErrNoProfitLoss
	}
	return years, nil
}
