// Package dashboard builds the franchisee summary shown on the landing page.
package dashboard

import (
	"fmt"
	"math"
	"time"

	"franchise_dashboard/pkg/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayRestaurant is a restaurant with every display field filled in.
type DisplayRestaurant struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Location           string     `json:"location"`
	City               string     `json:"city"`
	Address            string     `json:"address"`
	SiteNumber         string     `json:"site_number"`
	FranchiseeName     string     `json:"franchisee_name"`
	FranchiseStartDate *time.Time `json:"franchise_start_date,omitempty"`
	FranchiseEndDate   *time.Time `json:"franchise_end_date,omitempty"`
	RestaurantType     string     `json:"restaurant_type"`
	Status             string     `json:"status"`
	LastYearRevenue    float64    `json:"last_year_revenue"`
	BaseRent           float64    `json:"base_rent"`
}

// Metrics aggregates the franchisee's restaurants.
type Metrics struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalAnnualRent  float64 `json:"total_annual_rent"`
	OperatingMargin  float64 `json:"operating_margin"`
	AverageROI       float64 `json:"average_roi"`
	TotalRestaurants int     `json:"total_restaurants"`
}

// Summary is the dashboard payload.
type Summary struct {
	FranchiseeName string              `json:"franchisee_name"`
	Restaurants    []DisplayRestaurant `json:"restaurants"`
	Metrics        Metrics             `json:"metrics"`
	Formatted      map[string]string   `json:"formatted"`
}

// BuildDisplayRestaurants applies display defaults to missing restaurant data.
func BuildDisplayRestaurants(franchiseeName string, restaurants []models.FranchiseeRestaurant) []DisplayRestaurant {
	if franchiseeName == "" {
		franchiseeName = "Franquiciado"
	}

	out := make([]DisplayRestaurant, 0, len(restaurants))
	for i, r := range restaurants {
		d := DisplayRestaurant{
			ID:                 r.ID,
			Name:               "Restaurante",
			Location:           "Ubicación",
			City:               "Ciudad",
			Address:            "Dirección",
			SiteNumber:         "N/A",
			FranchiseeName:     franchiseeName,
			FranchiseStartDate: r.FranchiseStartDate,
			FranchiseEndDate:   r.FranchiseEndDate,
			RestaurantType:     "traditional",
			Status:             "active",
		}
		if d.ID == "" {
			d.ID = fmt.Sprintf("restaurant-%d", i)
		}
		if r.Status != "" {
			d.Status = r.Status
		}
		if r.LastYearRevenue != nil {
			d.LastYearRevenue = *r.LastYearRevenue
		}
		if r.MonthlyRent != nil {
			d.BaseRent = *r.MonthlyRent
		}
		if b := r.BaseRestaurant; b != nil {
			d.Name = orDefault(b.RestaurantName, "Restaurante")
			d.City = orDefault(b.City, "Ciudad")
			d.Address = orDefault(b.Address, "Dirección")
			d.Location = d.City + ", " + d.Address
			d.SiteNumber = orDefault(b.SiteNumber, "N/A")
			d.RestaurantType = orDefault(b.RestaurantType, "traditional")
		}
		out = append(out, d)
	}
	return out
}

// CalculateMetrics computes revenue, annualized rent, operating margin and ROI.
// Margin and ROI are percentages and stay at 0 when undefined.
func CalculateMetrics(restaurants []DisplayRestaurant) Metrics {
	var m Metrics
	for _, r := range restaurants {
		m.TotalRevenue += r.LastYearRevenue
		m.TotalAnnualRent += r.BaseRent * 12
	}
	m.TotalRestaurants = len(restaurants)

	if m.TotalRevenue > 0 {
		m.OperatingMargin = (m.TotalRevenue - m.TotalAnnualRent) / m.TotalRevenue * 100
		if m.TotalAnnualRent > 0 {
			m.AverageROI = (m.TotalRevenue - m.TotalAnnualRent) / m.TotalAnnualRent * 100
		}
	}
	return m
}

// BuildSummary assembles the dashboard payload.
func BuildSummary(franchiseeName string, restaurants []models.FranchiseeRestaurant) Summary {
	franchiseeName = orDefault(franchiseeName, "Franquiciado")
	display := BuildDisplayRestaurants(franchiseeName, restaurants)
	metrics := CalculateMetrics(display)
	return Summary{
		FranchiseeName: franchiseeName,
		Restaurants:    display,
		Metrics:        metrics,
		Formatted: map[string]string{
			"total_revenue":    FormatCurrency(metrics.TotalRevenue),
			"operating_margin": FormatPercent(metrics.OperatingMargin),
			"average_roi":      FormatPercent(metrics.AverageROI),
		},
	}
}

// FormatCurrency renders whole euros the way the es-ES locale does ("1.234.567 €").
func FormatCurrency(v float64) string {
	return message.NewPrinter(language.Spanish).Sprintf("%v €", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// FormatPercent renders a percentage with one decimal ("12,5 %").
func FormatPercent(v float64) string {
	return message.NewPrinter(language.Spanish).Sprintf("%v %%", number.Decimal(v, number.MaxFractionDigits(1), number.MinFractionDigits(1)))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
