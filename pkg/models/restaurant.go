package models

import (
	"time"
)

type BaseRestaurant struct {
	ID             string `json:"id"`
	SiteNumber     string `json:"site_number"`
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	RestaurantType string `json:"restaurant_type"` // 'traditional', 'mall', 'drive_thru'...
}

// FranchiseeRestaurant is a restaurant assigned to a franchisee. BaseRestaurant
// is nil when the assignment points at a restaurant that no longer exists.
type FranchiseeRestaurant struct {
	ID                 string          `json:"id"`
	FranchiseeID       string          `json:"franchisee_id"`
	BaseRestaurant     *BaseRestaurant `json:"base_restaurant,omitempty"`
	FranchiseStartDate *time.Time      `json:"franchise_start_date,omitempty"`
	FranchiseEndDate   *time.Time      `json:"franchise_end_date,omitempty"`
	Status             string          `json:"status"`
	LastYearRevenue    *float64        `json:"last_year_revenue,omitempty"`
	MonthlyRent        *float64        `json:"monthly_rent,omitempty"`
}

type Franchisee struct {
	ID             string `json:"id"`
	FranchiseeName string `json:"franchisee_name"`
}
