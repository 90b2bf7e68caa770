package rules

import (
	"strconv"

	"github.com/vk/glyphforge/internal/config"
	"github.com/vk/glyphforge/internal/target"
)

// Stage names, in pipeline order. These double as the ninja rule names.
const (
	Picosvg         = "picosvg"
	WriteCodepoints = "write-codepoints"
	WriteFea        = "write-fea"
	WriteFont       = "write-font"
	WriteSVG2PNG    = "write-svg2png"
	WriteFont2PNG   = "write-font2png"
	WritePNGDiff    = "write-pngdiff"
	WriteDiffReport = "write-diffreport"
)

// Rule is a named build-step template. A rule is immutable once built: the
// catalog parameterizes each command exactly once per run, so a
// configuration value can never partially apply across the edges of a
// stage.
//
// Rspfile, when set, declares a response file holding the edge's input list.
// Fan-in stages take the whole input set on one command line, which can
// exceed the platform argument-length limit for large N; that is why
// response-file support is a first-class rule attribute.
type Rule struct {
	Name           string
	Command        Command
	Rspfile        string
	RspfileContent string
}

// Catalog returns the fixed, ordered rule set for one run. With diffs
// disabled the four diff-branch rules are omitted entirely.
func Catalog(model *config.Model) []Rule {
	catalog := []Rule{
		{
			Name:    Picosvg,
			Command: Command{Program: "picosvg", Args: []string{"$in", ">", "$out"}},
		},
		{
			Name:           WriteCodepoints,
			Command:        Command{Program: WriteCodepoints, Args: []string{"@$out.rsp", ">", "$out"}},
			Rspfile:        "$out.rsp",
			RspfileContent: "$in",
		},
		{
			Name:    WriteFea,
			Command: Command{Program: WriteFea, Args: []string{"$in", ">", "$out"}},
		},
		{
			Name:           WriteFont,
			Command:        fontCommand(model),
			Rspfile:        "$out.rsp",
			RspfileContent: "$in",
		},
	}

	if !model.Diffs.Enabled {
		return catalog
	}

	resolution := strconv.Itoa(model.Diffs.Resolution)
	return append(catalog,
		Rule{
			Name: WriteSVG2PNG,
			Command: Command{
				Program: "resvg",
				Args:    []string{"-h", resolution, "-w", resolution, "$in", "$out"},
			},
		},
		Rule{
			Name: WriteFont2PNG,
			Command: Command{
				Program: WriteFont2PNG,
				Args:    []string{"--height", resolution, "--width", resolution, "--output_file", "$out", "$in"},
			},
		},
		Rule{
			Name:    WritePNGDiff,
			Command: Command{Program: WritePNGDiff, Args: []string{"--output_file", "$out", "$in"}},
		},
		Rule{
			Name: WriteDiffReport,
			Command: Command{
				Program: WriteDiffReport,
				Args: []string{
					"--lhs_dir", target.ResvgPNGDir,
					"--rhs_dir", target.SkiaPNGDir,
					"--output_file", "$out",
					"@$out.rsp",
				},
			},
			Rspfile:        "$out.rsp",
			RspfileContent: "$in",
		},
	)
}

// fontCommand builds the assembler invocation from the model.
func fontCommand(model *config.Model) Command {
	keepGlyphNames := "--keep_glyph_names"
	if !model.KeepGlyphNames {
		keepGlyphNames = "--nokeep_glyph_names"
	}
	return Command{
		Program: WriteFont,
		Args: []string{
			"--upem", strconv.Itoa(model.Upem),
			"--family", strconv.Quote(model.Family),
			"--color_format", model.ColorFormat,
			"--output", model.Output,
			keepGlyphNames,
			"--output_file", "$out",
			"@$out.rsp",
		},
	}
}
