package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appconfig "franchise_dashboard/pkg/core/config"
	"franchise_dashboard/pkg/core/notify"
)

func TestHandleConfig(t *testing.T) {
	cfg := &appconfig.Config{
		Orquest: appconfig.OrquestConfig{FunctionsURL: "https://fn.example.com", APIKey: "top-secret"},
		Email:   notify.EmailConfig{SMTPPass: "hunter2"},
	}
	rec := httptest.NewRecorder()
	NewHandler(cfg, "sqlite").HandleConfig(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	var got Response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Storage != "sqlite" || !got.OrquestEnabled || got.EmailEnabled {
		t.Errorf("response = %+v", got)
	}
	if strings.Contains(rec.Body.String(), "top-secret") || strings.Contains(rec.Body.String(), "hunter2") {
		t.Errorf("config response leaks secrets: %s", rec.Body.String())
	}
}
