package pkgmgr

import (
	"context"
	"fmt"
)

// Yum drives yum for CentOS. Like dnf, install refreshes metadata
// on its own.
type Yum struct {
	quiet bool
	run   runFunc
}

func (y *Yum) Name() string { return "yum" }

func (y *Yum) Update(_ context.Context) error { return nil }

func (y *Yum) Install(ctx context.Context, packages ...string) error {
	args := []string{"install", "-y"}
	if y.quiet {
		args = append(args, "-q")
	}
	args = append(args, packages...)
	if err := y.run(ctx, nil, "yum", args...); err != nil {
		return fmt.Errorf("yum install: %w", err)
	}
	return nil
}
