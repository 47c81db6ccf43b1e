package profitloss

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"franchise_dashboard/pkg/core/ingest"
	pnl "franchise_dashboard/pkg/core/profitloss"
	"franchise_dashboard/pkg/core/report"
	"franchise_dashboard/pkg/core/store"
	"franchise_dashboard/pkg/models"
)

const maxUploadBytes = 10 << 20

type ParseRequest struct {
	Text string `json:"text"`
}

type ImportResponse struct {
	SiteNumber  string              `json:"site_number"`
	Source      string              `json:"source"`
	Years       []models.YearlyData `json:"years"`
	Diagnostics pnl.Diagnostics     `json:"diagnostics"`
}

// Handler holds dependencies for P&L endpoints
type Handler struct {
	Store store.ProfitLossStore
}

// NewHandler creates a new P&L handler
func NewHandler(s store.ProfitLossStore) *Handler {
	return &Handler{Store: s}
}

// Register mounts the P&L routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/profitloss/parse", h.HandleParse)
	mux.HandleFunc("OPTIONS /api/profitloss/parse", h.HandleParse)
	mux.HandleFunc("POST /api/profitloss/{site}/import", h.HandleImport)
	mux.HandleFunc("OPTIONS /api/profitloss/{site}/import", h.HandleImport)
	mux.HandleFunc("GET /api/profitloss/{site}", h.HandleGet)
	mux.HandleFunc("GET /api/profitloss/{site}/report", h.HandleReport)
}

func setCORS(w http.ResponseWriter, methods string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleParse parses pasted report text without storing it.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := parseText(req.Text)
	if err != nil {
		writeParseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleImport parses an uploaded or pasted report and stores it under the site.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	site := r.PathValue("site")
	if site == "" {
		http.Error(w, "site is required", http.StatusBadRequest)
		return
	}

	text, source, err := readReport(r)
	if err != nil {
		if errors.Is(err, ingest.ErrNoTable) || errors.Is(err, ingest.ErrNoSheet) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := parseText(text)
	if err != nil {
		writeParseError(w, err)
		return
	}

	if err := h.Store.SaveYears(r.Context(), site, res.Years, source); err != nil {
		log.Printf("[API] Failed to save P&L for site %s: %v", site, err)
		http.Error(w, "failed to save data", http.StatusInternalServerError)
		return
	}
	log.Printf("[API] Imported %d years for site %s from %s", len(res.Years), site, source)

	writeJSON(w, http.StatusOK, ImportResponse{
		SiteNumber:  site,
		Source:      source,
		Years:       res.Years,
		Diagnostics: res.Diagnostics,
	})
}

// HandleGet returns the stored years of a site.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")

	years, ok := h.loadYears(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, years)
}

// HandleReport renders the stored years of a site as an HTML table.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")

	years, ok := h.loadYears(w, r)
	if !ok {
		return
	}
	html, err := report.RenderHTML(r.PathValue("site"), years)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (h *Handler) loadYears(w http.ResponseWriter, r *http.Request) ([]models.YearlyData, bool) {
	site := r.PathValue("site")
	years, err := h.Store.LoadYears(r.Context(), site)
	if errors.Is(err, store.ErrNoProfitLoss) {
		http.Error(w, fmt.Sprintf("no P&L data for site %s", site), http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Printf("[API] Failed to load P&L for site %s: %v", site, err)
		http.Error(w, "failed to load data", http.StatusInternalServerError)
		return nil, false
	}
	return years, true
}

// =============================================================================
// HELPERS
// =============================================================================

// readReport extracts report text from a multipart upload ("file" field) or
// a JSON {text} body. The second return value names the source format.
func readReport(r *http.Request) (string, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", "", fmt.Errorf("invalid upload: %w", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", "", fmt.Errorf("file is required: %w", err)
		}
		defer file.Close()

		format := ingest.Detect(header.Filename, header.Header.Get("Content-Type"))
		switch format {
		case ingest.FormatXLSX:
			text, err := ingest.XLSXToText(file, r.FormValue("sheet"))
			return text, string(format), err
		default:
			data, err := io.ReadAll(file)
			if err != nil {
				return "", "", err
			}
			return textFromFormat(string(data), format)
		}
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", fmt.Errorf("invalid request body: %w", err)
	}
	return textFromFormat(req.Text, ingest.SniffText(req.Text))
}

func textFromFormat(data string, format ingest.Format) (string, string, error) {
	if format == ingest.FormatText && ingest.SniffText(data) == ingest.FormatHTML {
		format = ingest.FormatHTML
	}
	if format == ingest.FormatHTML {
		text, err := ingest.HTMLTableToText(data)
		return text, string(format), err
	}
	return data, string(ingest.FormatText), nil
}

func parseText(text string) (*pnl.Result, error) {
	if ingest.SniffText(text) == ingest.FormatHTML {
		converted, err := ingest.HTMLTableToText(text)
		if err != nil {
			return nil, err
		}
		text = converted
	}
	return pnl.Parse(text)
}

func writeParseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pnl.ErrInsufficientLines), errors.Is(err, pnl.ErrNoYears), errors.Is(err, ingest.ErrNoTable):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
