package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvVars flattens the bootstrap state into the variables the
// sibling install scripts consume.
func (b *Bootstrap) EnvVars() map[string]string {
	vars := map[string]string{
		"VP_BRANCH":        b.Branch,
		"VP_CHANNEL":       b.Channel,
		"VP_PANEL_URL":     b.PanelURL,
		"VP_AGENT_URL":     b.AgentURL,
		"VP_SCRIPTS_URL":   b.ScriptsURL,
		"VP_OS_NAME":       b.OSName,
		"VP_OS_VERSION":    b.OSVersion,
		"VP_OS_MAJOR":      b.OSMajor,
		"VP_OS_ARCH":       b.OSArch,
		"VP_PANEL_VERSION": b.PanelVersion,
		"VP_AGENT_VERSION": b.AgentVersion,
	}
	return vars
}

// ExportEnv sets the variables in the current process environment so
// child processes inherit them, and writes them to bootstrap.env in
// dir for scripts that run later.
func (b *Bootstrap) ExportEnv(dir string) error {
	vars := b.EnvVars()
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "bootstrap.env"),
		[]byte(RenderEnv(vars)), 0o644)
}

// RenderEnv renders variables as sorted KEY=VALUE lines. Values are
// single-quoted so the file can be sourced by a shell.
func RenderEnv(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s='%s'\n", k, strings.ReplaceAll(vars[k], "'", `'\''`))
	}
	return b.String()
}
