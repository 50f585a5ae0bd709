package pkgmgr

import (
	"context"
	"fmt"
)

// Apt drives apt-get for the Debian family. Install refreshes the
// repository metadata first; Debian mirrors routinely serve stale
// indexes to hosts that never ran an update.
type Apt struct {
	quiet   bool
	updated bool
	run     runFunc
}

func (a *Apt) Name() string { return "apt" }

func (a *Apt) Update(ctx context.Context) error {
	args := []string{"update"}
	if a.quiet {
		args = append(args, "-qq")
	}
	if err := a.aptGet(ctx, args...); err != nil {
		return fmt.Errorf("apt-get update: %w", err)
	}
	a.updated = true
	return nil
}

func (a *Apt) Install(ctx context.Context, packages ...string) error {
	if !a.updated {
		if err := a.Update(ctx); err != nil {
			return err
		}
	}
	args := []string{"install", "-y"}
	if a.quiet {
		args = append(args, "-qq")
	}
	args = append(args, packages...)
	if err := a.aptGet(ctx, args...); err != nil {
		return fmt.Errorf("apt-get install: %w", err)
	}
	return nil
}

func (a *Apt) aptGet(ctx context.Context, args ...string) error {
	// Suppress dpkg's configuration prompts; the bootstrap has no
	// way to answer them. Scoped to the apt-get invocation so the
	// process environment stays clean.
	env := []string{"DEBIAN_FRONTEND=noninteractive"}
	return a.run(ctx, env, "apt-get", args...)
}
