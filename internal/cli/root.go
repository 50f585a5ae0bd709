// Package cli wires the cobra command surface of vpboot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vantagepanel/bootstrap/internal/installer"
	"github.com/vantagepanel/bootstrap/internal/logger"
	"github.com/vantagepanel/bootstrap/internal/version"
)

const installLogPath = "/var/log/vantagepanel/bootstrap.log"

var (
	flagQuiet    bool
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vpboot",
		Short: "Bootstrap a Linux host for Vantage Panel",
		Long: "vpboot validates the host OS, installs prerequisite packages,\n" +
			"resolves the latest panel and agent releases, and collects the\n" +
			"administrator account before the panel install scripts run.",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level, ok := logger.ParseLogLevel(flagLogLevel)
			if !ok && flagLogLevel != "" {
				fmt.Fprintf(os.Stderr, "unknown log level %q, using warn\n", flagLogLevel)
			}
			logger.SetLevel(level)
		},
		RunE: runInstall,
	}

	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"pass quiet flags to the package manager")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn",
		"diagnostic log level (debug, info, warn, error)")

	root.AddCommand(newInstallCmd(), newCheckCmd(), newVersionCmd())
	return root
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Run the full bootstrap sequence",
		RunE:  runInstall,
	}
}

func runInstall(cmd *cobra.Command, _ []string) error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("bootstrap must run as root")
	}

	// Record the run in the install log; fall back to console-only
	// logging when the log directory is not writable.
	level, _ := logger.ParseLogLevel(flagLogLevel)
	if fileLog, err := logger.NewWithFile(level, installLogPath); err == nil {
		logger.SetLogger(fileLog)
	}

	b := installer.New(installer.Options{Quiet: flagQuiet})
	return b.Run(cmd.Context())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Detect the OS and verify it is supported, without changing anything",
		RunE: func(*cobra.Command, []string) error {
			b := installer.New(installer.Options{})
			return b.Check()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the full build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

// Execute runs the CLI and returns the process exit code. Failures
// the installer already printed are not repeated here.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !installer.IsReported(err) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		return 1
	}
	return 0
}
