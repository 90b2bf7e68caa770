package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/glyphforge/internal/app"
	"github.com/vk/glyphforge/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a pipeline test run.
type HarnessResult struct {
	Output   string
	Err      error
	SrcDir   string
	BuildDir string
}

// RunPipeline provides a standardized harness for running the app end to
// end against a temporary directory. It creates one SVG fixture per name
// (order preserved), disables executor invocation, and applies mutate, when
// non-nil, to the config before the run.
func RunPipeline(t *testing.T, svgNames []string, mutate func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "svg")
	buildDir := filepath.Join(tmpDir, "build")
	require.NoError(t, os.Mkdir(srcDir, 0755))

	inputs := make([]string, len(svgNames))
	for i, name := range svgNames {
		path := filepath.Join(srcDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("<svg/>"), 0644))
		inputs[i] = path
	}

	cfg := &app.Config{
		Inputs:    inputs,
		BuildDir:  buildDir,
		GenNinja:  true,
		ExecNinja: false,
		Font: config.Model{
			Family:      "An Emoji Family",
			ColorFormat: "glyf_colr_1",
			Output:      "font",
			Upem:        1024,
			Diffs:       config.Diffs{Resolution: 256},
		},
		LogFormat: "text",
		LogLevel:  "debug",
	}
	if mutate != nil {
		mutate(cfg)
	}

	output := &SafeBuffer{}
	err := app.NewApp(output, cfg).Run(context.Background())

	return &HarnessResult{
		Output:   output.String(),
		Err:      err,
		SrcDir:   srcDir,
		BuildDir: buildDir,
	}
}

// ReadBuildFile returns the generated build description, failing the test
// when it is missing.
func ReadBuildFile(t *testing.T, result *HarnessResult) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(result.BuildDir, "build.ninja"))
	require.NoError(t, err)
	return string(data)
}
