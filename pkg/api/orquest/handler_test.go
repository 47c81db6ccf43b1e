package orquest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	core "franchise_dashboard/pkg/core/orquest"
	"franchise_dashboard/pkg/models"
)

const franchiseeID = "3f2b8c1e-9a4d-4e6b-8f1a-2c3d4e5f6a7b"

type fakeRepo struct {
	services   []models.OrquestService
	updated    map[string]models.OrquestServiceUpdate
	lastFilter *string
}

func (f *fakeRepo) ListServices(_ context.Context, franchiseeID string) ([]models.OrquestService, error) {
	f.lastFilter = &franchiseeID
	return f.services, nil
}

func (f *fakeRepo) ListEmployees(context.Context, string) ([]models.OrquestEmployee, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateService(_ context.Context, id string, upd models.OrquestServiceUpdate) error {
	f.updated[id] = upd
	return nil
}

// newTestMux wires the handler to a real client talking to a stub sync function.
func newTestMux(t *testing.T) (*http.ServeMux, *fakeRepo) {
	t.Helper()
	fn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action string `json:"action"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Action == "sync_employees" {
			w.Write([]byte(`{"success": true, "services_updated": 0, "employees_updated": 12}`))
			return
		}
		w.Write([]byte(`{"success": true, "services_updated": 3, "employees_updated": 0}`))
	}))
	t.Cleanup(fn.Close)

	repo := &fakeRepo{
		services: []models.OrquestService{{ID: "svc-1", FranchiseeID: franchiseeID, Name: "Gran Vía"}},
		updated:  map[string]models.OrquestServiceUpdate{},
	}
	mux := http.NewServeMux()
	NewHandler(core.NewService(core.NewClient(fn.URL, "key"), repo)).Register(mux)
	return mux, repo
}

func TestHandleSync(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"Default action", `{"franchiseeId":"` + franchiseeID + `"}`, http.StatusOK, "3 servicios actualizados"},
		{"Employees", `{"franchiseeId":"` + franchiseeID + `","action":"sync_employees"}`, http.StatusOK, "0 servicios y 12 empleados actualizados"},
		{"Missing franchisee", `{"action":"sync_all"}`, http.StatusBadRequest, ""},
		{"Invalid franchisee", `{"franchiseeId":"abc"}`, http.StatusBadRequest, ""},
		{"Unknown action", `{"franchiseeId":"` + franchiseeID + `","action":"wipe"}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := newTestMux(t)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orquest/sync", strings.NewReader(tt.body)))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantMessage == "" {
				return
			}
			var got SyncResult
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if !got.Success || got.Message != tt.wantMessage {
				t.Errorf("result = %+v, want message %q", got, tt.wantMessage)
			}
		})
	}
}

func TestHandleServicesAndEmployees(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orquest/services?franchisee_id="+franchiseeID, nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"nombre":"Gran Vía"`) {
		t.Errorf("services: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orquest/employees?franchisee_id="+franchiseeID, nil))
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("employees: status %d body %s", rec.Code, rec.Body.String())
	}

}

func TestHandleServices_AllFranchisees(t *testing.T) {
	mux, repo := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orquest/services", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.lastFilter == nil || *repo.lastFilter != "" {
		t.Errorf("repository filter = %v, want empty franchisee id", repo.lastFilter)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orquest/employees", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("employees status = %d, want 200", rec.Code)
	}
}

func TestHandleUpdateService(t *testing.T) {
	mux, repo := newTestMux(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/orquest/services/svc-1", bytes.NewBufferString(`{"nombre":"Gran Vía 2","latitud":40.42}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	upd, ok := repo.updated["svc-1"]
	if !ok || upd.Name == nil || *upd.Name != "Gran Vía 2" || upd.Latitude == nil || *upd.Latitude != 40.42 || upd.Zone != nil {
		t.Errorf("update = %+v", upd)
	}
}
