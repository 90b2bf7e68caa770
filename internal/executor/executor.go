// Package executor invokes the external build executor against a generated
// build description.
package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/vk/glyphforge/internal/ctxlog"
)

// Ninja runs the external build executor for one build directory.
//
// The executor owns all parallelism and incremental-rebuild bookkeeping;
// this wrapper's only obligations are to start it and to propagate a
// non-zero exit unmodified. Per-edge failures are ninja's to diagnose.
type Ninja struct {
	// Program is the executor binary, "ninja" unless overridden.
	Program string

	// BuildDir is passed via -C so the executor runs against the generated
	// description regardless of the invocation working directory.
	BuildDir string

	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Ninja for the given build directory.
func New(buildDir string, stdout, stderr io.Writer) *Ninja {
	return &Ninja{Program: "ninja", BuildDir: buildDir, Stdout: stdout, Stderr: stderr}
}

// Command returns the argv Run executes.
func (n *Ninja) Command() []string {
	program := n.Program
	if program == "" {
		program = "ninja"
	}
	return []string{program, "-C", n.BuildDir}
}

// CommandLine returns the command as one printable string.
func (n *Ninja) CommandLine() string {
	return strings.Join(n.Command(), " ")
}

// Run executes the build and blocks until it finishes. The returned error
// wraps *exec.ExitError on a non-zero exit, so callers can surface the
// executor's own exit code.
func (n *Ninja) Run(ctx context.Context) error {
	argv := n.Command()
	ctxlog.FromContext(ctx).Debug("Starting build executor.", "command", n.CommandLine())

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = n.Stdout
	cmd.Stderr = n.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", argv[0], err)
	}
	return nil
}
