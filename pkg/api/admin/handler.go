package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"franchise_dashboard/pkg/core/store"
	"franchise_dashboard/pkg/core/users"
)

// Handler holds dependencies for admin endpoints
type Handler struct {
	Users *users.Service
}

func NewHandler(svc *users.Service) *Handler {
	return &Handler{Users: svc}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/admin/advisors", h.HandleListAdvisors)
	mux.HandleFunc("POST /api/admin/users", h.HandleCreateUser)
	mux.HandleFunc("DELETE /api/admin/advisors/{id}", h.HandleDeleteAdvisor)
	mux.HandleFunc("OPTIONS /api/admin/", h.handleOptions)
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID")
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) HandleListAdvisors(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	advisors, err := h.Users.ListAdvisors(r.Context())
	if err != nil {
		log.Printf("[API] Failed to list advisors: %v", err)
		http.Error(w, "failed to load advisors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, advisors)
}

func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	var req users.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.Users.CreateUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingFields), errors.Is(err, users.ErrWeakPassword),
			errors.Is(err, users.ErrInvalidEmail), errors.Is(err, users.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("[API] Failed to create user: %v", err)
			http.Error(w, "failed to create user", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleDeleteAdvisor deletes a profile. The acting user id comes from X-User-ID.
func (h *Handler) HandleDeleteAdvisor(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	err := h.Users.DeleteAdvisor(r.Context(), r.Header.Get("X-User-ID"), r.PathValue("id"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, users.ErrSelfDelete):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, store.ErrProfileNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("[API] Failed to delete advisor %s: %v", r.PathValue("id"), err)
		http.Error(w, "failed to delete advisor", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
