// Package osinfo detects the host Linux distribution and decides
// whether the bootstrapper supports it.
//
// Detection probes well-known descriptor files in strict priority
// order; the first probe that yields a distribution wins and later
// probes are not consulted.
package osinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vantagepanel/bootstrap/internal/system"
)

// Info describes the detected operating system. It is constructed
// once during startup and passed to every component that needs it.
type Info struct {
	ID           string // lowercased distribution id, e.g. "ubuntu"
	Version      string // full version string, e.g. "20.04"
	VersionMajor string // text before the first dot, e.g. "20"
	Arch         string // machine architecture, e.g. "x86_64"
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s)", i.ID, i.Version, i.Arch)
}

// Detector probes the filesystem and a few commands to build an Info.
// Root and RunCommand are injectable for tests; the zero value probes
// the real host.
type Detector struct {
	Root       string
	RunCommand func(name string, args ...string) (string, error)
}

func (d *Detector) root() string {
	if d.Root == "" {
		return "/"
	}
	return d.Root
}

func (d *Detector) run(name string, args ...string) (string, error) {
	if d.RunCommand != nil {
		return d.RunCommand(name, args...)
	}
	return system.Output(name, args...)
}

func (d *Detector) readFile(path string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(d.root(), path))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Detect determines the OS id, version and architecture. The probe
// order is fixed: os-release file, lsb_release command, legacy
// lsb-release file, Debian version file, SUSE marker, Red Hat marker,
// kernel name/release as last resort.
func (d *Detector) Detect() Info {
	info := d.probe()

	info.ID = strings.ToLower(strings.TrimSpace(info.ID))
	info.Version = strings.TrimSpace(info.Version)
	info.VersionMajor = majorVersion(info.Version)
	info.Arch = d.arch()

	return info
}

func (d *Detector) probe() Info {
	if data, ok := d.readFile("etc/os-release"); ok {
		if info, ok := parseOSRelease(data); ok {
			return info
		}
	}

	if id, err := d.run("lsb_release", "-si"); err == nil && id != "" {
		version, _ := d.run("lsb_release", "-sr")
		return Info{ID: id, Version: version}
	}

	if data, ok := d.readFile("etc/lsb-release"); ok {
		if info, ok := parseLSBRelease(data); ok {
			return info
		}
	}

	if data, ok := d.readFile("etc/debian_version"); ok {
		return Info{ID: "debian", Version: strings.TrimSpace(data)}
	}

	if data, ok := d.readFile("etc/SuSe-release"); ok {
		return Info{ID: "suse", Version: parseSuseVersion(data)}
	}

	if data, ok := d.readFile("etc/redhat-release"); ok {
		return parseRedhatRelease(data)
	}

	// Kernel self-report, the probe of last resort.
	name, err := d.run("uname", "-s")
	if err != nil {
		name = runtime.GOOS
	}
	release, _ := d.run("uname", "-r")
	return Info{ID: name, Version: release}
}

func (d *Detector) arch() string {
	if arch, err := d.run("uname", "-m"); err == nil && arch != "" {
		return arch
	}
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}

func majorVersion(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}
