package installer

import "fmt"

const (
	githubBase = "https://github.com"

	// PanelRepo and AgentRepo are the tracked release projects.
	PanelRepo = "vantagepanel/panel"
	AgentRepo = "vantagepanel/agent"
)

// branchForChannel maps the release channel to the source branch
// marker the install scripts check out.
func branchForChannel(channel string) string {
	if channel == "beta" {
		return "dev"
	}
	return "master"
}

// panelArchiveURL is the packaged panel archive for a release tag.
func panelArchiveURL(version string) string {
	return fmt.Sprintf("%s/%s/releases/download/%s/panel-%s-linux.tar.gz",
		githubBase, PanelRepo, version, version)
}

// agentArchiveURL is the platform-specific agent archive, suffixed
// with the Go architecture name the agent project publishes under.
func agentArchiveURL(version, arch string) string {
	return fmt.Sprintf("%s/%s/releases/download/%s/agent_linux_%s.zip",
		githubBase, AgentRepo, version, goArch(arch))
}

// scriptsURL is the deploy-scripts tarball for the selected branch.
func scriptsURL(branch string) string {
	return fmt.Sprintf("%s/%s/archive/refs/heads/%s.tar.gz",
		githubBase, PanelRepo, branch)
}

// goArch translates a uname -m machine name into the architecture
// suffix used in published archive names.
func goArch(arch string) string {
	switch arch {
	case "x86_64":
		return "amd64"
	case "aarch64", "arm64":
		return "arm64"
	case "armv7l":
		return "arm"
	default:
		return arch
	}
}
