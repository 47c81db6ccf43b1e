package orquest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	core "franchise_dashboard/pkg/core/orquest"
	"franchise_dashboard/pkg/models"
)

type SyncRequest struct {
	FranchiseeID string      `json:"franchiseeId"`
	Action       core.Action `json:"action"`
}

type SyncResult struct {
	Success          bool   `json:"success"`
	ServicesUpdated  int    `json:"services_updated"`
	EmployeesUpdated int    `json:"employees_updated"`
	Message          string `json:"message"`
}

// Handler holds dependencies for Orquest endpoints
type Handler struct {
	Sync *core.Service
}

func NewHandler(svc *core.Service) *Handler {
	return &Handler{Sync: svc}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/orquest/services", h.HandleServices)
	mux.HandleFunc("GET /api/orquest/employees", h.HandleEmployees)
	mux.HandleFunc("POST /api/orquest/sync", h.HandleSync)
	mux.HandleFunc("PATCH /api/orquest/services/{id}", h.HandleUpdateService)
	mux.HandleFunc("OPTIONS /api/orquest/", func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		w.WriteHeader(http.StatusOK)
	})
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleServices lists services. Without franchisee_id every franchisee is listed.
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	franchiseeID := r.URL.Query().Get("franchisee_id")

	services, err := h.Sync.Services(r.Context(), franchiseeID)
	if err != nil {
		log.Printf("[API] Failed to list Orquest services for %s: %v", franchiseeID, err)
		http.Error(w, "failed to load services", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []models.OrquestService{}
	}
	writeJSON(w, http.StatusOK, services)
}

// HandleEmployees lists employees. Without franchisee_id every franchisee is listed.
func (h *Handler) HandleEmployees(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	franchiseeID := r.URL.Query().Get("franchisee_id")

	employees, err := h.Sync.Employees(r.Context(), franchiseeID)
	if err != nil {
		log.Printf("[API] Failed to list Orquest employees for %s: %v", franchiseeID, err)
		http.Error(w, "failed to load employees", http.StatusInternalServerError)
		return
	}
	if employees == nil {
		employees = []models.OrquestEmployee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

// HandleSync triggers a sync. An empty action means sync_all.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	var req SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var (
		resp *core.SyncResponse
		err  error
	)
	switch req.Action {
	case "", core.ActionSyncAll:
		resp, err = h.Sync.SyncAll(r.Context(), req.FranchiseeID)
	case core.ActionSyncEmployees:
		resp, err = h.Sync.SyncEmployees(r.Context(), req.FranchiseeID)
	default:
		http.Error(w, "unknown action: "+string(req.Action), http.StatusBadRequest)
		return
	}

	if err != nil {
		if errors.Is(err, core.ErrFranchiseeRequired) || errors.Is(err, core.ErrInvalidFranchisee) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, SyncResult{
		Success:          true,
		ServicesUpdated:  resp.ServicesUpdated,
		EmployeesUpdated: resp.EmployeesUpdated,
		Message:          resp.Message(),
	})
}

func (h *Handler) HandleUpdateService(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	var upd models.OrquestServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := h.Sync.UpdateService(r.Context(), id, upd); err != nil {
		log.Printf("[API] Failed to update Orquest service %s: %v", id, err)
		http.Error(w, "failed to update service", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
