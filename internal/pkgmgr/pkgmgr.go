// Package pkgmgr abstracts the native package manager of the
// distributions the bootstrapper supports. A Manager is selected
// once at startup from the detected OS and handed to the bootstrap
// sequence; callers pass structured package lists, never
// pre-formatted shell strings.
package pkgmgr

import (
	"context"
	"fmt"

	"github.com/google/shlex"

	"github.com/vantagepanel/bootstrap/internal/osinfo"
	"github.com/vantagepanel/bootstrap/internal/system"
)

// Manager installs packages and refreshes repository metadata.
type Manager interface {
	// Name identifies the underlying tool ("apt", "dnf", "yum").
	Name() string
	// Update refreshes the repository metadata. For RPM-family
	// managers whose install command refreshes on its own this is
	// a no-op.
	Update(ctx context.Context) error
	// Install installs the given packages. Entries may carry
	// version pins in the manager's native syntax. Any non-zero
	// exit from the underlying tool is returned as an error and
	// is fatal to the bootstrap.
	Install(ctx context.Context, packages ...string) error
}

// runFunc matches system.RunContextEnv and is injectable for tests.
// env pairs apply to that command only, never the whole process.
type runFunc func(ctx context.Context, env []string, name string, args ...string) error

// For returns the Manager for the detected OS. When quiet is set the
// underlying tool runs with its quiet flags. The OS is expected to
// have already passed the support gate; anything else is an error.
func For(info osinfo.Info, quiet bool) (Manager, error) {
	return newManager(info, quiet, system.RunContextEnv)
}

func newManager(info osinfo.Info, quiet bool, run runFunc) (Manager, error) {
	switch info.ID {
	case "ubuntu", "debian":
		return &Apt{quiet: quiet, run: run}, nil
	case "rocky", "almalinux":
		return &Dnf{quiet: quiet, run: run}, nil
	case "centos":
		return &Yum{quiet: quiet, run: run}, nil
	default:
		return nil, fmt.Errorf("no package manager for %q", info.ID)
	}
}

// Split turns a pre-formatted specifier string ("curl wget tar=1.34")
// into a package list using shell word-splitting rules, so callers
// holding a single string do not have to concatenate it back into a
// shell command line.
func Split(s string) ([]string, error) {
	packages, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("split package list %q: %w", s, err)
	}
	return packages, nil
}
