package pipeline_behavior

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/glyphforge/internal/app"
	"github.com/vk/glyphforge/internal/graph"
	"github.com/vk/glyphforge/internal/testutil"
)

func TestDuplicateBasenamesAbortBeforeAnyWrite(t *testing.T) {
	t.Parallel()

	// Same basename in two different directories.
	result := testutil.RunPipeline(t, []string{"a/x.svg", "b/x.svg"}, nil)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, graph.ErrDuplicateInput)

	// Validation failed before the driver touched the filesystem: not even
	// the build directory exists.
	_, err := os.Stat(result.BuildDir)
	assert.True(t, os.IsNotExist(err), "build directory created despite failed validation")
}

func TestMissingInputFails(t *testing.T) {
	t.Parallel()

	result := testutil.RunPipeline(t, nil, func(cfg *app.Config) {
		cfg.Inputs = []string{"/definitely/not/here.svg"}
	})

	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "cannot access input")
}
