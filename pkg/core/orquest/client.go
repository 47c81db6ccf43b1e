// Package orquest syncs workforce data (services and employees) from the
// Orquest scheduling platform through the hosted orquest-sync function.
package orquest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"franchise_dashboard/pkg/core/utils"
)

// Action selects what the sync function refreshes.
type Action string

const (
	ActionSyncAll       Action = "sync_all"
	ActionSyncEmployees Action = "sync_employees"
)

// SyncResponse is the summary returned by the sync function.
type SyncResponse struct {
	Success          bool   `json:"success"`
	ServicesUpdated  int    `json:"services_updated"`
	EmployeesUpdated int    `json:"employees_updated"`
	Error            string `json:"error,omitempty"`
}

// Message is the user-facing summary of a sync.
func (r SyncResponse) Message() string {
	if r.EmployeesUpdated > 0 {
		return fmt.Sprintf("%d servicios y %d empleados actualizados", r.ServicesUpdated, r.EmployeesUpdated)
	}
	return fmt.Sprintf("%d servicios actualizados", r.ServicesUpdated)
}

type syncRequest struct {
	Action       Action `json:"action"`
	FranchiseeID string `json:"franchiseeId"`
}

// Client invokes the orquest-sync function over HTTP.
type Client struct {
	functionsURL string
	apiKey       string
	httpClient   *http.Client
}

// NewClient creates a client for the functions base URL
// (e.g. https://<project>.supabase.co/functions/v1).
func NewClient(functionsURL, apiKey string) *Client {
	return &Client{
		functionsURL: strings.TrimRight(functionsURL, "/"),
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: 2 * time.Minute},
	}
}

// Invoke runs one sync action for a franchisee.
func (c *Client) Invoke(ctx context.Context, action Action, franchiseeID string) (*SyncResponse, error) {
	if c.functionsURL == "" {
		return nil, fmt.Errorf("orquest functions url not configured")
	}

	payload, err := json.Marshal(syncRequest{Action: action, FranchiseeID: franchiseeID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.functionsURL+"/orquest-sync", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("apikey", c.apiKey)
	}

	log.Printf("[ORQUEST] Invoking %s for franchisee %s", action, franchiseeID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orquest-sync request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read orquest-sync response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("orquest-sync returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out SyncResponse
	if err := utils.SmartParse(string(body), &out); err != nil {
		return nil, fmt.Errorf("failed to decode orquest-sync response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("orquest-sync: %s", out.Error)
	}
	return &out, nil
}
