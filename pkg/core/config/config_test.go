package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	yamlData := `
addr: ":9000"
sqlite_path: "/tmp/pnl.db"
orquest:
  functions_url: "https://example.supabase.co/functions/v1"
email:
  smtp_server: "smtp.example.com"
  from_email: "no-reply@example.com"
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORQUEST_API_KEY", "secret")
	t.Setenv("PORT", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_FROM", "")
	t.Setenv("ORQUEST_FUNCTIONS_URL", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.SQLitePath != "/tmp/pnl.db" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Orquest.FunctionsURL != "https://example.supabase.co/functions/v1" || cfg.Orquest.APIKey != "secret" {
		t.Errorf("orquest = %+v", cfg.Orquest)
	}
	if !cfg.Email.Enabled() || cfg.Email.SMTPPort != 587 {
		t.Errorf("email = %+v", cfg.Email)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("SQLITE_PATH", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7000" || cfg.SQLitePath != "data/franchise.db" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
