package ninja

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/glyphforge/internal/buildpath"
	"github.com/vk/glyphforge/internal/config"
	"github.com/vk/glyphforge/internal/graph"
)

func scenarioGraph(t *testing.T, diffs bool) *graph.Graph {
	t.Helper()
	model := &config.Model{
		Family:      "Test",
		ColorFormat: "glyf_colr_1",
		Output:      "font",
		Upem:        1024,
		Diffs:       config.Diffs{Enabled: diffs, Resolution: 256},
	}
	resolver, err := buildpath.NewResolver("/out")
	require.NoError(t, err)
	g, err := graph.Build(context.Background(),
		[]string{"/src/smile.svg", "/src/frown.svg"}, model, resolver)
	require.NoError(t, err)
	return g
}

const scenarioDescription = `# Generated by glyphforge

rule picosvg
  command = picosvg $in > $out
rule write-codepoints
  command = write-codepoints @$out.rsp > $out
  rspfile = $out.rsp
  rspfile_content = $in
rule write-fea
  command = write-fea $in > $out
rule write-font
  command = write-font --upem 1024 --family "Test" --color_format $
      glyf_colr_1 --output font --nokeep_glyph_names --output_file $out $
      @$out.rsp
  rspfile = $out.rsp
  rspfile_content = $in

build picosvg/smile.svg: picosvg /src/smile.svg
build picosvg/frown.svg: picosvg /src/frown.svg

build codepointmap.csv: write-codepoints /src/smile.svg /src/frown.svg

build features.fea: write-fea codepointmap.csv

build Test.ttf: write-font codepointmap.csv features.fea picosvg/smile.svg $
    picosvg/frown.svg

`

func TestEmitScenario(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, scenarioGraph(t, false)))
	assert.Equal(t, scenarioDescription, buf.String())
}

func TestEmitIdempotence(t *testing.T) {
	t.Parallel()

	g := scenarioGraph(t, true)

	var first, second bytes.Buffer
	require.NoError(t, Emit(&first, g))
	require.NoError(t, Emit(&second, g))
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()),
		"two emissions of the same graph differ")
}

func TestEmitDiffBranchPresence(t *testing.T) {
	t.Parallel()

	var without bytes.Buffer
	require.NoError(t, Emit(&without, scenarioGraph(t, false)))
	for _, fragment := range []string{"write-svg2png", "write-font2png", "write-pngdiff", "write-diffreport", "resvg"} {
		assert.NotContains(t, without.String(), fragment)
	}

	var with bytes.Buffer
	require.NoError(t, Emit(&with, scenarioGraph(t, true)))
	for _, fragment := range []string{
		"rule write-svg2png",
		"rule write-font2png",
		"rule write-pngdiff",
		"rule write-diffreport",
		"build diffs.html: write-diffreport diff_png/smile.png diff_png/frown.png",
	} {
		assert.Contains(t, with.String(), fragment)
	}
}

func TestEmitRulesPrecedeEdges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, scenarioGraph(t, true)))

	out := buf.String()
	lastRule := 0
	firstBuild := len(out)
	for i := 0; i < len(out); i++ {
		if i == 0 || out[i-1] == '\n' {
			switch {
			case len(out) > i+5 && out[i:i+5] == "rule ":
				lastRule = i
			case len(out) > i+6 && out[i:i+6] == "build " && i < firstBuild:
				firstBuild = i
			}
		}
	}
	assert.Less(t, lastRule, firstBuild, "a rule was declared after the first edge")
}
