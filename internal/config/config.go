// Package config persists the bootstrap results consumed by the
// panel install scripts: a JSON state file, the agent's YAML
// configuration, and a KEY=VALUE environment file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// Dir is where all bootstrap output lives on the host.
	Dir = "/etc/vantagepanel"

	stateFile = "bootstrap.json"
)

// Bootstrap is the state collected by the bootstrapper. It is
// written once at the end of a successful run and read by the
// install scripts that follow.
type Bootstrap struct {
	Channel    string `json:"channel"`    // "stable" or "beta"
	Branch     string `json:"branch"`     // source branch marker
	Components string `json:"components"` // "panel" or "panel+agent"
	PanelPort  int    `json:"panel_port"`

	AdminUser         string `json:"admin_user"`
	AdminEmail        string `json:"admin_email"`
	AdminPasswordHash string `json:"admin_password_hash,omitempty"`

	PanelVersion string `json:"panel_version"`
	AgentVersion string `json:"agent_version,omitempty"`

	PanelURL   string `json:"panel_url"`
	AgentURL   string `json:"agent_url,omitempty"`
	ScriptsURL string `json:"scripts_url"`

	OSName    string `json:"os_name"`
	OSVersion string `json:"os_version"`
	OSMajor   string `json:"os_major"`
	OSArch    string `json:"os_arch"`
}

// Default returns the baseline configuration before any input is
// collected.
func Default() *Bootstrap {
	return &Bootstrap{
		Channel:    "stable",
		Branch:     "master",
		Components: "panel+agent",
		PanelPort:  8888,
		AdminUser:  "admin",
	}
}

// HasAgent reports whether the node agent is part of the install.
func (b *Bootstrap) HasAgent() bool {
	return b.Components == "panel+agent"
}

// Store reads and writes the bootstrap state file. Paths are
// injectable for tests.
type Store struct {
	Dir  string
	Path string
}

// DefaultStore returns a Store rooted at the system config dir.
func DefaultStore() *Store {
	return &Store{
		Dir:  Dir,
		Path: filepath.Join(Dir, stateFile),
	}
}

// Load reads the state file.
func (s *Store) Load() (*Bootstrap, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var cfg Bootstrap
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the state file with owner-only permissions; it holds
// the admin password hash.
func (s *Store) Save(cfg *Bootstrap) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}
