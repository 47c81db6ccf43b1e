package store

import (
	"context"
	"fmt"
	"time"

	"franchise_dashboard/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RestaurantRepo reads the restaurants assigned to franchisees.
type RestaurantRepo struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepo(pool *pgxpool.Pool) *RestaurantRepo {
	return &RestaurantRepo{pool: pool}
}

// ListByFranchisee returns the franchisee's restaurants with their base
// restaurant data when it exists.
func (r *RestaurantRepo) ListByFranchisee(ctx context.Context, franchiseeID string) ([]models.FranchiseeRestaurant, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT fr.id, fr.franchisee_id, fr.franchise_start_date, fr.franchise_end_date,
		       COALESCE(fr.status, ''), fr.last_year_revenue, fr.monthly_rent,
		       br.id, br.site_number, br.restaurant_name, br.address, br.city, br.restaurant_type
		FROM franchisee_restaurants fr
		LEFT JOIN base_restaurants br ON br.id = fr.base_restaurant_id
		WHERE fr.franchisee_id = $1
		ORDER BY br.site_number
	`
	rows, err := r.pool.Query(ctx, query, franchiseeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var out []models.FranchiseeRestaurant
	for rows.Next() {
		var (
			fr                                  models.FranchiseeRestaurant
			start, end                          *time.Time
			baseID, site, name, addr, city, typ *string
		)
		if err := rows.Scan(&fr.ID, &fr.FranchiseeID, &start, &end,
			&fr.Status, &fr.LastYearRevenue, &fr.MonthlyRent,
			&baseID, &site, &name, &addr, &city, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		fr.FranchiseStartDate = start
		fr.FranchiseEndDate = end
		if baseID != nil {
			fr.BaseRestaurant = &models.BaseRestaurant{
				ID:             *baseID,
				SiteNumber:     deref(site),
				RestaurantName: deref(name),
				Address:        deref(addr),
				City:           deref(city),
				RestaurantType: deref(typ),
			}
		}
		out = append(out, fr)
	}
	return out, rows.Err()
}

// GetFranchisee returns the franchisee record.
func (r *RestaurantRepo) GetFranchisee(ctx context.Context, franchiseeID string) (*models.Franchisee, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	var f models.Franchisee
	err := r.pool.QueryRow(ctx, `SELECT id, franchisee_name FROM franchisees WHERE id = $1`, franchiseeID).
		Scan(&f.ID, &f.FranchiseeName)
	if err != nil {
		return nil, fmt.Errorf("failed to load franchisee %s: %w", franchiseeID, err)
	}
	return &f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
