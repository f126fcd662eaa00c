package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScriptsDir != "scripts" {
		t.Fatalf("expected default scripts dir, got %q", cfg.ScriptsDir)
	}
	if cfg.Reload.PollIntervalSeconds != 1 {
		t.Fatalf("expected default poll interval 1, got %d", cfg.Reload.PollIntervalSeconds)
	}
}

func TestLoadReadsFileValues(t *testing.T) {
	path := writeConfig(t, `
tenant_url: https://tenant.eu.qlikcloud.com/api/v1
api_key: abc123
scripts_dir: /tmp/qlik-scripts
reload:
  weight: 3
  partial: true
  poll_interval_seconds: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TenantURL != "https://tenant.eu.qlikcloud.com/api/v1" {
		t.Fatalf("unexpected tenant url %q", cfg.TenantURL)
	}
	if cfg.APIKey != "abc123" {
		t.Fatalf("unexpected api key %q", cfg.APIKey)
	}
	if cfg.ScriptsDir != "/tmp/qlik-scripts" {
		t.Fatalf("unexpected scripts dir %q", cfg.ScriptsDir)
	}
	if cfg.Reload.Weight != 3 || !cfg.Reload.Partial || cfg.Reload.PollIntervalSeconds != 2 {
		t.Fatalf("unexpected reload config %+v", cfg.Reload)
	}
}

func TestLoadBindsEnvironment(t *testing.T) {
	t.Setenv("QLIK_TENANT_URL", "https://env.example.com/api/v1/")
	t.Setenv("QLIK_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TenantURL != "https://env.example.com/api/v1" {
		t.Fatalf("expected trimmed env tenant url, got %q", cfg.TenantURL)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("expected env api key, got %q", cfg.APIKey)
	}
}

func TestLoadAcceptsLegacyEnvNames(t *testing.T) {
	t.Setenv("_QLIK_TENANT_URL_", "https://legacy.example.com")
	t.Setenv("_QLIK_API_KEY_", "legacy-key")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TenantURL != "https://legacy.example.com" || cfg.APIKey != "legacy-key" {
		t.Fatalf("legacy env names not honored: %+v", cfg)
	}
}

func TestLoadRejectsInvalidTenantURL(t *testing.T) {
	path := writeConfig(t, "tenant_url: not-a-url\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "tenant_url must include scheme and host") {
		t.Fatalf("expected tenant_url error, got %v", err)
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	path := writeConfig(t, "reload:\n  poll_interval_seconds: 0\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "poll_interval_seconds") {
		t.Fatalf("expected interval error, got %v", err)
	}
}

func TestValidateRemote(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateRemote(); err == nil {
		t.Fatalf("expected error for missing tenant url")
	}
	cfg.TenantURL = "https://tenant.example.com"
	if err := cfg.ValidateRemote(); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	cfg.APIKey = "k"
	if err := cfg.ValidateRemote(); err != nil {
		t.Fatalf("validate remote: %v", err)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("write default: %v", err)
	}
	if written != path {
		t.Fatalf("expected %q, got %q", path, written)
	}
	if _, err := WriteDefault(path, false); err == nil {
		t.Fatalf("expected error overwriting existing config")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load written default: %v", err)
	}
	if cfg.ScriptsDir != DefaultConfig().ScriptsDir {
		t.Fatalf("written default did not round-trip: %+v", cfg)
	}
}
