package store

import (
	"context"
	"errors"
	"fmt"

	"franchise_dashboard/pkg/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProfileNotFound is returned when no profile matches the id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepo stores dashboard users in the profiles table.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not initialized")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, full_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Email, p.FullName, string(p.Role), p.PasswordHash, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// ListByRoles returns profiles with any of the roles, newest first.
func (r *ProfileRepo) ListByRoles(ctx context.Context, roles []models.Role) ([]models.Profile, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, email, COALESCE(full_name, ''), role, created_at
		FROM profiles
		WHERE role = ANY($1)
		ORDER BY created_at DESC`, names)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []models.Profile
	for rows.Next() {
		var p models.Profile
		var role string
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &role, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		p.Role = models.Role(role)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*models.Profile, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	var p models.Profile
	var role string
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, COALESCE(full_name, ''), role, created_at
		FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, &p.Email, &p.FullName, &role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	p.Role = models.Role(role)
	return &p, nil
}

func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not initialized")
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
