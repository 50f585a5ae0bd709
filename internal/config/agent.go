package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Agent is the configuration rendered for the node agent. The agent
// reads this file on startup; the bootstrapper only writes it.
type Agent struct {
	PanelAddr   string `yaml:"panel_addr"`
	Version     string `yaml:"version"`
	DownloadURL string `yaml:"download_url"`
	LogLevel    string `yaml:"log_level"`
}

// WriteAgent renders the agent configuration as YAML into dir.
func WriteAgent(dir string, agent *Agent) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(agent)
	if err != nil {
		return fmt.Errorf("marshal agent config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "agent.yml"), data, 0o640)
}
