package dashboard

import (
	"math"
	"strings"
	"testing"

	"franchise_dashboard/pkg/models"
)

func ptr(f float64) *float64 { return &f }

func TestBuildDisplayRestaurants_Defaults(t *testing.T) {
	got := BuildDisplayRestaurants("", []models.FranchiseeRestaurant{{}})
	if len(got) != 1 {
		t.Fatalf("len = %d", len(got))
	}
	d := got[0]
	if d.ID != "restaurant-0" || d.Name != "Restaurante" || d.City != "Ciudad" || d.SiteNumber != "N/A" ||
		d.RestaurantType != "traditional" || d.Status != "active" || d.FranchiseeName != "Franquiciado" {
		t.Errorf("defaults not applied: %+v", d)
	}
}

func TestBuildDisplayRestaurants_FromBase(t *testing.T) {
	got := BuildDisplayRestaurants("Hostelería Norte", []models.FranchiseeRestaurant{{
		ID:              "r1",
		Status:          "closed",
		LastYearRevenue: ptr(2500000),
		MonthlyRent:     ptr(15000),
		BaseRestaurant: &models.BaseRestaurant{
			SiteNumber:     "1234",
			RestaurantName: "Gran Vía",
			City:           "Madrid",
			Address:        "Gran Vía 1",
		},
	}})

	d := got[0]
	if d.Name != "Gran Vía" || d.Location != "Madrid, Gran Vía 1" || d.SiteNumber != "1234" {
		t.Errorf("base restaurant not used: %+v", d)
	}
	if d.Status != "closed" || d.LastYearRevenue != 2500000 || d.BaseRent != 15000 {
		t.Errorf("franchise data not used: %+v", d)
	}
	if d.RestaurantType != "traditional" || d.FranchiseeName != "Hostelería Norte" {
		t.Errorf("unexpected: %+v", d)
	}
}

func TestCalculateMetrics(t *testing.T) {
	tests := []struct {
		name        string
		restaurants []DisplayRestaurant
		want        Metrics
	}{
		{"Empty", nil, Metrics{}},
		{
			"Revenue without rent",
			[]DisplayRestaurant{{LastYearRevenue: 1000}},
			Metrics{TotalRevenue: 1000, OperatingMargin: 100, TotalRestaurants: 1},
		},
		{
			"Two restaurants",
			[]DisplayRestaurant{
				{LastYearRevenue: 1000000, BaseRent: 10000},
				{LastYearRevenue: 500000, BaseRent: 2500},
			},
			Metrics{
				TotalRevenue:     1500000,
				TotalAnnualRent:  150000,
				OperatingMargin:  90,
				AverageROI:       900,
				TotalRestaurants: 2,
			},
		},
		{
			"Rent without revenue",
			[]DisplayRestaurant{{BaseRent: 100}},
			Metrics{TotalAnnualRent: 1200, TotalRestaurants: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMetrics(tt.restaurants)
			if got.TotalRevenue != tt.want.TotalRevenue || got.TotalAnnualRent != tt.want.TotalAnnualRent ||
				got.TotalRestaurants != tt.want.TotalRestaurants {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.OperatingMargin-tt.want.OperatingMargin) > 1e-9 || math.Abs(got.AverageROI-tt.want.AverageROI) > 1e-9 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1234567.4)
	if !strings.HasSuffix(got, " €") || !strings.HasPrefix(got, "1") || strings.Contains(got, ",") {
		t.Errorf("FormatCurrency = %q", got)
	}
	if !strings.Contains(got, "234") || !strings.Contains(got, "567") {
		t.Errorf("FormatCurrency = %q lost digits", got)
	}
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary("Norte", []models.FranchiseeRestaurant{{ID: "a", LastYearRevenue: ptr(100)}})
	if s.Metrics.TotalRestaurants != 1 || len(s.Restaurants) != 1 {
		t.Errorf("summary = %+v", s)
	}
	for _, key := range []string{"total_revenue", "operating_margin", "average_roi"} {
		if s.Formatted[key] == "" {
			t.Errorf("formatted[%s] empty", key)
		}
	}
}

func TestBuildSummary_DefaultFranchiseeName(t *testing.T) {
	s := BuildSummary("", []models.FranchiseeRestaurant{{ID: "a"}})
	if s.FranchiseeName != "Franquiciado" {
		t.Errorf("summary franchisee name = %q, want Franquiciado", s.FranchiseeName)
	}
	if s.Restaurants[0].FranchiseeName != s.FranchiseeName {
		t.Errorf("restaurant name %q differs from summary %q", s.Restaurants[0].FranchiseeName, s.FranchiseeName)
	}
}
