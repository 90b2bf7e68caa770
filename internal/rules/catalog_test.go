package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/glyphforge/internal/config"
)

func baseModel() *config.Model {
	return &config.Model{
		Family:      "Test",
		ColorFormat: "glyf_colr_1",
		Output:      "font",
		Upem:        1024,
		Diffs:       config.Diffs{Resolution: 256},
	}
}

func ruleNames(catalog []Rule) []string {
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.Name
	}
	return names
}

func findRule(t *testing.T, catalog []Rule, name string) Rule {
	t.Helper()
	for _, r := range catalog {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not in catalog", name)
	return Rule{}
}

func TestCatalogOrder(t *testing.T) {
	t.Parallel()

	t.Run("without diffs", func(t *testing.T) {
		catalog := Catalog(baseModel())
		assert.Equal(t, []string{Picosvg, WriteCodepoints, WriteFea, WriteFont}, ruleNames(catalog))
	})

	t.Run("with diffs", func(t *testing.T) {
		model := baseModel()
		model.Diffs.Enabled = true
		catalog := Catalog(model)
		assert.Equal(t, []string{
			Picosvg, WriteCodepoints, WriteFea, WriteFont,
			WriteSVG2PNG, WriteFont2PNG, WritePNGDiff, WriteDiffReport,
		}, ruleNames(catalog))
	})
}

func TestCatalogCommands(t *testing.T) {
	t.Parallel()

	model := baseModel()
	model.Diffs.Enabled = true
	catalog := Catalog(model)

	t.Run("picosvg pipes input to output", func(t *testing.T) {
		r := findRule(t, catalog, Picosvg)
		assert.Equal(t, "picosvg $in > $out", r.Command.String())
		assert.Empty(t, r.Rspfile)
	})

	t.Run("codepoints fan-in goes through a response file", func(t *testing.T) {
		r := findRule(t, catalog, WriteCodepoints)
		assert.Equal(t, "write-codepoints @$out.rsp > $out", r.Command.String())
		assert.Equal(t, "$out.rsp", r.Rspfile)
		assert.Equal(t, "$in", r.RspfileContent)
	})

	t.Run("font command carries every setting exactly once", func(t *testing.T) {
		r := findRule(t, catalog, WriteFont)
		assert.Equal(t,
			`write-font --upem 1024 --family "Test" --color_format glyf_colr_1 `+
				`--output font --nokeep_glyph_names --output_file $out @$out.rsp`,
			r.Command.String())
		assert.Equal(t, "$out.rsp", r.Rspfile)
	})

	t.Run("rasterizers honor the diff resolution", func(t *testing.T) {
		r := findRule(t, catalog, WriteSVG2PNG)
		assert.Equal(t, "resvg -h 256 -w 256 $in $out", r.Command.String())

		r = findRule(t, catalog, WriteFont2PNG)
		assert.Equal(t, "write-font2png --height 256 --width 256 --output_file $out $in", r.Command.String())
	})

	t.Run("diff report compares the two png directories", func(t *testing.T) {
		r := findRule(t, catalog, WriteDiffReport)
		assert.Equal(t,
			"write-diffreport --lhs_dir resvg_png --rhs_dir skia_png --output_file $out @$out.rsp",
			r.Command.String())
		assert.Equal(t, "$out.rsp", r.Rspfile)
	})
}

func TestCatalogParameterization(t *testing.T) {
	t.Parallel()

	t.Run("keep glyph names toggles the flag form", func(t *testing.T) {
		model := baseModel()
		model.KeepGlyphNames = true
		r := findRule(t, Catalog(model), WriteFont)
		assert.Contains(t, r.Command.Args, "--keep_glyph_names")
		assert.NotContains(t, r.Command.Args, "--nokeep_glyph_names")
	})

	t.Run("family names with spaces stay one argument", func(t *testing.T) {
		model := baseModel()
		model.Family = "An Emoji Family"
		r := findRule(t, Catalog(model), WriteFont)
		assert.Contains(t, r.Command.Args, `"An Emoji Family"`)
	})

	t.Run("catalog is pure", func(t *testing.T) {
		model := baseModel()
		first := Catalog(model)
		second := Catalog(model)
		require.Equal(t, first, second)
	})
}
