package config

import (
	"encoding/json"
	"net/http"

	appconfig "franchise_dashboard/pkg/core/config"
)

// Response exposes the non-secret runtime configuration to the frontend.
type Response struct {
	Storage         string   `json:"storage"`
	OrquestEnabled  bool     `json:"orquest_enabled"`
	EmailEnabled    bool     `json:"email_enabled"`
	AppURL          string   `json:"app_url,omitempty"`
	SupportedImport []string `json:"supported_import"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Cfg     *appconfig.Config
	Storage string
}

// NewHandler creates a new config handler. storage names the active P&L backend.
func NewHandler(cfg *appconfig.Config, storage string) *Handler {
	return &Handler{
		Cfg:     cfg,
		Storage: storage,
	}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Storage:         h.Storage,
		OrquestEnabled:  h.Cfg.Orquest.FunctionsURL != "",
		EmailEnabled:    h.Cfg.Email.Enabled(),
		AppURL:          h.Cfg.Email.AppURL,
		SupportedImport: []string{"text", "xlsx", "html"},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
