package restaurants

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"franchise_dashboard/pkg/core/dashboard"
	"franchise_dashboard/pkg/models"
)

type fakeSource struct {
	restaurants []models.FranchiseeRestaurant
	name        string
	listErr     error
}

func (f *fakeSource) ListByFranchisee(ctx context.Context, franchiseeID string) ([]models.FranchiseeRestaurant, error) {
	return f.restaurants, f.listErr
}

func (f *fakeSource) GetFranchisee(ctx context.Context, franchiseeID string) (*models.Franchisee, error) {
	if f.name == "" {
		return nil, errors.New("not found")
	}
	return &models.Franchisee{ID: franchiseeID, FranchiseeName: f.name}, nil
}

func floatPtr(f float64) *float64 { return &f }

func newMux(src Source) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(src).Register(mux)
	return mux
}

func TestHandleDashboard(t *testing.T) {
	src := &fakeSource{
		name: "Grupo Norte",
		restaurants: []models.FranchiseeRestaurant{
			{
				ID:              "fr-1",
				BaseRestaurant:  &models.BaseRestaurant{ID: "b-1", SiteNumber: "101", RestaurantName: "Gran Vía", City: "Madrid"},
				LastYearRevenue: floatPtr(1_000_000),
				MonthlyRent:     floatPtr(10_000),
			},
			{ID: "fr-2", LastYearRevenue: floatPtr(500_000)},
		},
	}
	rec := httptest.NewRecorder()
	newMux(src).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard?franchisee_id=f-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var got dashboard.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Metrics.TotalRestaurants != 2 || got.Metrics.TotalRevenue != 1_500_000 || got.Metrics.TotalAnnualRent != 120_000 {
		t.Errorf("metrics = %+v", got.Metrics)
	}
	if got.Restaurants[0].FranchiseeName != "Grupo Norte" {
		t.Errorf("franchisee name = %q", got.Restaurants[0].FranchiseeName)
	}
}

func TestHandleList(t *testing.T) {
	src := &fakeSource{restaurants: []models.FranchiseeRestaurant{{ID: "fr-9"}}}
	rec := httptest.NewRecorder()
	newMux(src).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants?franchisee_id=f-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []dashboard.DisplayRestaurant
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Restaurante" || got[0].FranchiseeName != "Franquiciado" {
		t.Errorf("restaurants = %+v", got)
	}
}

func TestHandlers_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		src        *fakeSource
		wantStatus int
	}{
		{"List missing id", "/api/restaurants", &fakeSource{}, http.StatusBadRequest},
		{"Dashboard missing id", "/api/dashboard", &fakeSource{}, http.StatusBadRequest},
		{"List store error", "/api/restaurants?franchisee_id=x", &fakeSource{listErr: errors.New("down")}, http.StatusInternalServerError},
		{"Dashboard store error", "/api/dashboard?franchisee_id=x", &fakeSource{listErr: errors.New("down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newMux(tt.src).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
