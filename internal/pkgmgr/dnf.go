package pkgmgr

import (
	"context"
	"fmt"
)

// Dnf drives dnf for Rocky Linux and AlmaLinux. dnf refreshes its
// metadata as part of install, so Update is a no-op.
type Dnf struct {
	quiet bool
	run   runFunc
}

func (d *Dnf) Name() string { return "dnf" }

func (d *Dnf) Update(_ context.Context) error { return nil }

func (d *Dnf) Install(ctx context.Context, packages ...string) error {
	args := []string{"install", "-y"}
	if d.quiet {
		args = append(args, "-q")
	}
	args = append(args, packages...)
	if err := d.run(ctx, nil, "dnf", args...); err != nil {
		return fmt.Errorf("dnf install: %w", err)
	}
	return nil
}
