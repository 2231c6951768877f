package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"app": {"name": "rewoo", "workspace": "./ws"},
		"providers": {"openai": {"api_key": "k", "model": "m", "enabled": true}},
		"tools": {"search": true, "calc": true},
		"trace": {"path": "trace.db"}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.App.Name != "rewoo" {
		t.Errorf("unexpected app name %q", cfg.App.Name)
	}
	name, p := cfg.GetDefaultProvider()
	if name != "openai" || p.Model != "m" {
		t.Errorf("unexpected provider: %s %+v", name, p)
	}
	if !cfg.Tools.Search || !cfg.Tools.Calc || cfg.Tools.Shell {
		t.Errorf("unexpected tool toggles: %+v", cfg.Tools)
	}
	if cfg.Trace.Path != "trace.db" {
		t.Errorf("unexpected trace path %q", cfg.Trace.Path)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
app:
  name: rewoo
gateways:
  telegram:
    token: tok
    enabled: true
providers:
  openrouter:
    api_key: k
    model: m
    base_url: https://openrouter.ai/api/v1
    enabled: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if _, ok := cfg.GetGateway("telegram"); !ok {
		t.Error("telegram gateway should be enabled")
	}
	if _, ok := cfg.GetGateway("discord"); ok {
		t.Error("discord gateway should be absent")
	}
	name, p := cfg.GetDefaultProvider()
	if name != "openrouter" || p.BaseURL == "" {
		t.Errorf("unexpected provider: %s %+v", name, p)
	}
}
