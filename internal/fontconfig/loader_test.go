package fontconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full settings file", func(t *testing.T) {
		path := writeSettings(t, `
font {
  family           = "Test"
  color_format     = "glyf_colr_1"
  upem             = 2048
  keep_glyph_names = true
  output           = "font"
  output_file      = "out/Test.ttf"
}

diffs {
  enabled    = true
  resolution = 512
}
`)
		file, err := Load(context.Background(), path)
		require.NoError(t, err)

		require.NotNil(t, file.Family)
		assert.Equal(t, "Test", *file.Family)
		require.NotNil(t, file.Upem)
		assert.Equal(t, 2048, *file.Upem)
		require.NotNil(t, file.KeepGlyphNames)
		assert.True(t, *file.KeepGlyphNames)
		require.NotNil(t, file.OutputFile)
		assert.Equal(t, "out/Test.ttf", *file.OutputFile)
		require.NotNil(t, file.DiffsEnabled)
		assert.True(t, *file.DiffsEnabled)
		require.NotNil(t, file.DiffResolution)
		assert.Equal(t, 512, *file.DiffResolution)
	})

	t.Run("absent attributes stay nil", func(t *testing.T) {
		path := writeSettings(t, `
font {
  family = "Sparse"
}
`)
		file, err := Load(context.Background(), path)
		require.NoError(t, err)

		require.NotNil(t, file.Family)
		assert.Equal(t, "Sparse", *file.Family)
		assert.Nil(t, file.ColorFormat)
		assert.Nil(t, file.Upem)
		assert.Nil(t, file.DiffsEnabled)
	})

	t.Run("empty file decodes to all-nil", func(t *testing.T) {
		path := writeSettings(t, "")
		file, err := Load(context.Background(), path)
		require.NoError(t, err)
		assert.Nil(t, file.Family)
		assert.Nil(t, file.DiffResolution)
	})

	t.Run("environment values are visible to expressions", func(t *testing.T) {
		t.Setenv("GLYPHFORGE_TEST_FAMILY", "FromEnv")
		path := writeSettings(t, `
font {
  family = "${env.GLYPHFORGE_TEST_FAMILY} Emoji"
}
`)
		file, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.NotNil(t, file.Family)
		assert.Equal(t, "FromEnv Emoji", *file.Family)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
		assert.Error(t, err)
	})

	t.Run("invalid syntax is an error", func(t *testing.T) {
		path := writeSettings(t, "font {")
		_, err := Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to parse settings file")
	})
}
