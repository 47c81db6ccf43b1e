package restaurants

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"franchise_dashboard/pkg/core/dashboard"
	"franchise_dashboard/pkg/models"
)

// Source reads a franchisee's restaurants; store.RestaurantRepo satisfies it.
type Source interface {
	ListByFranchisee(ctx context.Context, franchiseeID string) ([]models.FranchiseeRestaurant, error)
	GetFranchisee(ctx context.Context, franchiseeID string) (*models.Franchisee, error)
}

// Handler holds dependencies for restaurant and dashboard endpoints
type Handler struct {
	Source Source
}

func NewHandler(src Source) *Handler {
	return &Handler{Source: src}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/restaurants", h.HandleList)
	mux.HandleFunc("GET /api/dashboard", h.HandleDashboard)
}

// HandleList returns the franchisee's restaurants with display defaults applied.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	franchiseeID := r.URL.Query().Get("franchisee_id")
	if franchiseeID == "" {
		http.Error(w, "franchisee_id is required", http.StatusBadRequest)
		return
	}

	list, err := h.Source.ListByFranchisee(r.Context(), franchiseeID)
	if err != nil {
		log.Printf("[API] Failed to list restaurants for %s: %v", franchiseeID, err)
		http.Error(w, "failed to load restaurants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard.BuildDisplayRestaurants(h.franchiseeName(r.Context(), franchiseeID), list))
}

// HandleDashboard returns restaurants plus aggregate metrics.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	franchiseeID := r.URL.Query().Get("franchisee_id")
	if franchiseeID == "" {
		http.Error(w, "franchisee_id is required", http.StatusBadRequest)
		return
	}

	list, err := h.Source.ListByFranchisee(r.Context(), franchiseeID)
	if err != nil {
		log.Printf("[API] Failed to build dashboard for %s: %v", franchiseeID, err)
		http.Error(w, "failed to load restaurants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard.BuildSummary(h.franchiseeName(r.Context(), franchiseeID), list))
}

// franchiseeName falls back to the display default when the lookup fails.
func (h *Handler) franchiseeName(ctx context.Context, id string) string {
	f, err := h.Source.GetFranchisee(ctx, id)
	if err != nil {
		log.Printf("[API] Franchisee %s lookup failed: %v", id, err)
		return ""
	}
	return f.FranchiseeName
}
