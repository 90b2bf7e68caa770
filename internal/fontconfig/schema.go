package fontconfig

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a settings file. Both blocks are
// optional; unknown blocks are rejected by the decoder.
type fileRoot struct {
	Font  *fontBlock  `hcl:"font,block"`
	Diffs *diffsBlock `hcl:"diffs,block"`
}

type fontBlock struct {
	Family         *string  `hcl:"family,optional"`
	ColorFormat    *string  `hcl:"color_format,optional"`
	Upem           *int     `hcl:"upem,optional"`
	KeepGlyphNames *bool    `hcl:"keep_glyph_names,optional"`
	Output         *string  `hcl:"output,optional"`
	OutputFile     *string  `hcl:"output_file,optional"`
	Remain         hcl.Body `hcl:",remain"`
}

type diffsBlock struct {
	Enabled    *bool    `hcl:"enabled,optional"`
	Resolution *int     `hcl:"resolution,optional"`
	Remain     hcl.Body `hcl:",remain"`
}

// File holds the values read from a settings file. A nil field was absent
// from the file and must not override anything.
type File struct {
	Family         *string
	ColorFormat    *string
	Upem           *int
	KeepGlyphNames *bool
	Output         *string
	OutputFile     *string

	DiffsEnabled   *bool
	DiffResolution *int
}
