package store

import (
	"context"
	"fmt"
	"strings"

	"franchise_dashboard/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrquestRepo reads the Orquest mirror tables written by the sync function.
type OrquestRepo struct {
	pool *pgxpool.Pool
}

func NewOrquestRepo(pool *pgxpool.Pool) *OrquestRepo {
	return &OrquestRepo{pool: pool}
}

// ListServices returns services, newest update first. An empty franchiseeID
// returns every franchisee's services.
func (r *OrquestRepo) ListServices(ctx context.Context, franchiseeID string) ([]models.OrquestService, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	query := `
		SELECT id, COALESCE(franchisee_id::text, ''), COALESCE(nombre, ''), COALESCE(zona_horaria, ''),
		       latitud, longitud, updated_at
		FROM servicios_orquest
		WHERE ($1 = '' OR franchisee_id::text = $1)
		ORDER BY updated_at DESC NULLS LAST`
	rows, err := r.pool.Query(ctx, query, franchiseeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orquest services: %w", err)
	}
	defer rows.Close()

	var out []models.OrquestService
	for rows.Next() {
		var s models.OrquestService
		if err := rows.Scan(&s.ID, &s.FranchiseeID, &s.Name, &s.Zone, &s.Latitude, &s.Longitude, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan orquest service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListEmployees returns employees, newest update first.
func (r *OrquestRepo) ListEmployees(ctx context.Context, franchiseeID string) ([]models.OrquestEmployee, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	query := `
		SELECT id, service_id, COALESCE(franchisee_id::text, ''), nombre, apellidos, email, telefono,
		       puesto, departamento, fecha_alta::text, fecha_baja::text, estado, datos_completos, updated_at
		FROM orquest_employees
		WHERE ($1 = '' OR franchisee_id::text = $1)
		ORDER BY updated_at DESC NULLS LAST`
	rows, err := r.pool.Query(ctx, query, franchiseeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orquest employees: %w", err)
	}
	defer rows.Close()

	var out []models.OrquestEmployee
	for rows.Next() {
		var e models.OrquestEmployee
		var raw []byte
		if err := rows.Scan(&e.ID, &e.ServiceID, &e.FranchiseeID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
			&e.Position, &e.Department, &e.HireDate, &e.LeaveDate, &e.Status, &raw, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan orquest employee: %w", err)
		}
		e.RawData = raw
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateService applies the non-nil fields of upd to the service.
func (r *OrquestRepo) UpdateService(ctx context.Context, id string, upd models.OrquestServiceUpdate) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	var sets []string
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		add("nombre", *upd.Name)
	}
	if upd.Zone != nil {
		add("zona_horaria", *upd.Zone)
	}
	if upd.Latitude != nil {
		add("latitud", *upd.Latitude)
	}
	if upd.Longitude != nil {
		add("longitud", *upd.Longitude)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE servicios_orquest SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args))
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update orquest service %s: %w", id, err)
	}
	return nil
}
