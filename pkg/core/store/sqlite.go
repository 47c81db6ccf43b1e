package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"franchise_dashboard/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteProfitLossRepo is the local fallback used when no Postgres database
// is configured.
type SQLiteProfitLossRepo struct {
	db *sql.DB
}

// NewSQLiteProfitLossRepo opens (and creates if needed) the database at dbPath.
func NewSQLiteProfitLossRepo(dbPath string) (*SQLiteProfitLossRepo, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &SQLiteProfitLossRepo{db: db}, nil
}

func (r *SQLiteProfitLossRepo) SaveYears(ctx context.Context, siteNumber string, years []models.YearlyData, source string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO profit_loss_data (site_number, year, data, source, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (site_number, year)
		DO UPDATE SET data = excluded.data, source = excluded.source, updated_at = excluded.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, y := range years {
		data, err := json.Marshal(y)
		if err != nil {
			return fmt.Errorf("failed to marshal year %d: %w", y.Year, err)
		}
		if _, err := stmt.ExecContext(ctx, siteNumber, y.Year, string(data), source); err != nil {
			return fmt.Errorf("failed to save year %d: %w", y.Year, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteProfitLossRepo) LoadYears(ctx context.Context, siteNumber string) ([]models.YearlyData, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM profit_loss_data WHERE site_number = ? ORDER BY year ASC`, siteNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load profit and loss: %w", err)
	}
	defer rows.Close()

	var years []models.YearlyData
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var y models.YearlyData
		if err := json.Unmarshal([]byte(data), &y); err != nil {
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

// Close closes the database connection.
func (r *SQLiteProfitLossRepo) Close() error {
	return r.db.Close()
}
