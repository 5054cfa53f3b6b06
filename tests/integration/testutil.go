// Package integration provides CLI integration tests for nodelist.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// nodelistBin is the path to the built nodelist binary.
	nodelistBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// CmdResult holds the result of a nodelist command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunNodelist executes the nodelist binary with the given arguments.
func RunNodelist(t *testing.T, args ...string) CmdResult {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build nodelist: %v", buildErr)
	}
	if nodelistBin == "" {
		t.Fatal("nodelist binary not built (nodelistBin is empty)")
	}

	cmd := exec.Command(nodelistBin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run nodelist: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunNodelist executes nodelist and fails the test on a non-zero exit.
func MustRunNodelist(t *testing.T, args ...string) CmdResult {
	t.Helper()
	result := RunNodelist(t, args...)
	if result.ExitCode != 0 {
		t.Fatalf("nodelist %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
