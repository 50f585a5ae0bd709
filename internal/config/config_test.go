package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Channel != "stable" {
		t.Errorf("Channel: got %q, want stable", cfg.Channel)
	}
	if cfg.Branch != "master" {
		t.Errorf("Branch: got %q, want master", cfg.Branch)
	}
	if cfg.Components != "panel+agent" {
		t.Errorf("Components: got %q, want panel+agent", cfg.Components)
	}
	if cfg.PanelPort != 8888 {
		t.Errorf("PanelPort: got %d, want 8888", cfg.PanelPort)
	}
	if cfg.AdminUser != "admin" {
		t.Errorf("AdminUser: got %q, want admin", cfg.AdminUser)
	}
}

func TestHasAgent(t *testing.T) {
	cfg := Default()
	if !cfg.HasAgent() {
		t.Error("default config should include the agent")
	}
	cfg.Components = "panel"
	if cfg.HasAgent() {
		t.Error("panel-only config should not include the agent")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	store := &Store{
		Dir:  tmpDir,
		Path: filepath.Join(tmpDir, "bootstrap.json"),
	}

	cfg := Default()
	cfg.PanelVersion = "v1.4.2"
	cfg.AgentVersion = "v0.9.1"
	cfg.OSName = "ubuntu"
	cfg.OSMajor = "20"
	cfg.AdminPasswordHash = "$2a$10$fakehash"

	if err := store.Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.PanelVersion != "v1.4.2" {
		t.Errorf("PanelVersion: got %q", loaded.PanelVersion)
	}
	if loaded.OSName != "ubuntu" || loaded.OSMajor != "20" {
		t.Errorf("OS: got %s %s", loaded.OSName, loaded.OSMajor)
	}
	if loaded.AdminPasswordHash != cfg.AdminPasswordHash {
		t.Error("password hash did not round-trip")
	}
}

func TestStoreSaveFilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store := &Store{Dir: tmpDir, Path: filepath.Join(tmpDir, "bootstrap.json")}

	if err := store.Save(Default()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(store.Path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions: got %o, want 0600", perm)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := &Store{Dir: t.TempDir(), Path: "/nonexistent/bootstrap.json"}
	if _, err := store.Load(); err == nil {
		t.Error("expected error loading nonexistent file")
	}
}

func TestStoreLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bootstrap.json")
	os.WriteFile(path, []byte("not json"), 0o600)

	store := &Store{Dir: tmpDir, Path: path}
	if _, err := store.Load(); err == nil {
		t.Error("expected error loading invalid JSON")
	}
}

func TestOmitEmptySecrets(t *testing.T) {
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	raw := map[string]any{}
	json.Unmarshal(data, &raw)
	if _, exists := raw["admin_password_hash"]; exists {
		t.Error("empty password hash should be omitted from JSON")
	}
}

func TestRenderEnvSortedAndQuoted(t *testing.T) {
	out := RenderEnv(map[string]string{
		"B_KEY": "plain",
		"A_KEY": "has 'quote'",
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "A_KEY=") {
		t.Errorf("keys not sorted: %v", lines)
	}
	if lines[1] != "B_KEY='plain'" {
		t.Errorf("got %q", lines[1])
	}
	if !strings.Contains(lines[0], `'\''`) {
		t.Errorf("single quotes not escaped: %q", lines[0])
	}
}

func TestExportEnv(t *testing.T) {
	cfg := Default()
	cfg.PanelVersion = "v1.0.0"
	cfg.OSName = "debian"
	cfg.OSVersion = "11.6"
	cfg.OSMajor = "11"

	dir := t.TempDir()
	if err := cfg.ExportEnv(dir); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("VP_PANEL_VERSION"); got != "v1.0.0" {
		t.Errorf("VP_PANEL_VERSION: got %q", got)
	}
	if got := os.Getenv("VP_OS_NAME"); got != "debian" {
		t.Errorf("VP_OS_NAME: got %q", got)
	}
	if got := os.Getenv("VP_OS_MAJOR"); got != "11" {
		t.Errorf("VP_OS_MAJOR: got %q", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bootstrap.env"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"VP_PANEL_VERSION='v1.0.0'",
		"VP_OS_MAJOR='11'",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("env file missing %q: %s", want, data)
		}
	}
}

func TestEnvVarsCarryFullOSDescriptor(t *testing.T) {
	cfg := Default()
	cfg.OSName = "ubuntu"
	cfg.OSVersion = "20.04"
	cfg.OSMajor = "20"
	cfg.OSArch = "x86_64"

	vars := cfg.EnvVars()
	want := map[string]string{
		"VP_OS_NAME":    "ubuntu",
		"VP_OS_VERSION": "20.04",
		"VP_OS_MAJOR":   "20",
		"VP_OS_ARCH":    "x86_64",
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s: got %q, want %q", k, vars[k], v)
		}
	}
}

func TestWriteAgent(t *testing.T) {
	dir := t.TempDir()
	agent := &Agent{
		PanelAddr:   "https://127.0.0.1:8888",
		Version:     "v0.9.1",
		DownloadURL: "https://example.com/agent.zip",
		LogLevel:    "info",
	}
	if err := WriteAgent(dir, agent); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "agent.yml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"panel_addr: https://127.0.0.1:8888",
		"version: v0.9.1",
		"log_level: info",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("agent.yml missing %q:\n%s", want, data)
		}
	}
}
