package system

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestCommandLineQuoting(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"apt-get", []string{"install", "-y", "curl"}, "apt-get install -y curl"},
		{"echo", []string{"two words"}, "echo 'two words'"},
		{"true", nil, "true"},
	}
	for _, tt := range tests {
		if got := CommandLine(tt.name, tt.args...); got != tt.want {
			t.Errorf("CommandLine(%q, %v): got %q, want %q",
				tt.name, tt.args, got, tt.want)
		}
	}
}

func TestRunFailureIncludesOutput(t *testing.T) {
	err := Run("sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should carry command output, got: %v", err)
	}
}

func TestOutputTrims(t *testing.T) {
	out, err := Output("sh", "-c", "echo '  hello  '")
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello" {
		t.Errorf("got %q, want %q", out, "hello")
	}
}

func TestRunContextEnvScopesVariables(t *testing.T) {
	ctx := context.Background()

	err := RunContextEnv(ctx, []string{"VPBOOT_TEST_FLAG=1"},
		"sh", "-c", `test "$VPBOOT_TEST_FLAG" = 1`)
	if err != nil {
		t.Errorf("extra env not visible to the command: %v", err)
	}

	// The variable lives on the command, not the process.
	if got := os.Getenv("VPBOOT_TEST_FLAG"); got != "" {
		t.Errorf("process environment polluted: %q", got)
	}
	err = RunContext(ctx, "sh", "-c", `test -z "$VPBOOT_TEST_FLAG"`)
	if err != nil {
		t.Errorf("variable leaked into later commands: %v", err)
	}
}

func TestHasCommand(t *testing.T) {
	if !HasCommand("sh") {
		t.Error("sh should be on PATH")
	}
	if HasCommand("definitely-not-a-command-xyz") {
		t.Error("nonexistent command reported present")
	}
}
