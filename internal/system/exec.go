// Package system wraps external command execution for the bootstrapper.
// Every call blocks until the command finishes; a non-zero exit is
// returned as an error carrying the combined output.
package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/vantagepanel/bootstrap/internal/logger"
)

// Run executes a command and returns an error with output on failure.
func Run(name string, args ...string) error {
	logger.Logger().Debugf("exec: %s", CommandLine(name, args...))
	cmd := exec.Command(name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %s: %s", CommandLine(name, args...), err, output)
	}
	return nil
}

// RunContext executes a command under the given context and returns
// an error with output on failure.
func RunContext(ctx context.Context, name string, args ...string) error {
	return RunContextEnv(ctx, nil, name, args...)
}

// RunContextEnv is RunContext with extra KEY=VALUE pairs appended to
// the command's environment. The process environment itself is not
// touched.
func RunContextEnv(ctx context.Context, extraEnv []string, name string, args ...string) error {
	logger.Logger().Debugf("exec: %s", CommandLine(name, args...))
	cmd := exec.CommandContext(ctx, name, args...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %s: %s", CommandLine(name, args...), err, output)
	}
	return nil
}

// Output executes a command and returns trimmed stdout.
func Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = nil
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", CommandLine(name, args...), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// OutputTimeout executes a command with a timeout and returns trimmed stdout.
func OutputTimeout(timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = nil
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", CommandLine(name, args...), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// HasCommand reports whether the named command is on PATH.
func HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Download fetches a URL to a local path using wget or curl.
func Download(ctx context.Context, url, dest string) error {
	if HasCommand("wget") {
		return RunContext(ctx, "wget", "-q", "-O", dest, url)
	}
	return RunContext(ctx, "curl", "-sL", "-o", dest, url)
}

// CommandLine renders a command and its arguments as a single
// shell-quoted string for error messages and the install log.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}
