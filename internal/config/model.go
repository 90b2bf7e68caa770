package config

// Model holds the font build settings shared by the rule catalog, the
// target namer and the graph builder. It is constructed once per run, from
// flags and the optional settings file, and passed by reference from there
// on. A value can therefore never partially apply across the edges of a
// stage: the catalog reads it exactly once.
type Model struct {
	// Family is the font family name, e.g. "An Emoji Family".
	Family string

	// ColorFormat selects the color table format the assembler produces,
	// e.g. "glyf_colr_1".
	ColorFormat string

	// Output is the output kind: "font" or "ufo".
	Output string

	// OutputFile, when non-empty, overrides the derived font artifact path.
	OutputFile string

	// Upem is the units-per-em value passed to the assembler.
	Upem int

	// KeepGlyphNames controls whether the assembler retains glyph names.
	KeepGlyphNames bool

	// Diffs configures the optional visual-regression branch.
	Diffs Diffs
}

// Diffs configures the svg-vs-font render comparison sub-graph.
type Diffs struct {
	// Enabled turns the rasterize/diff/report stages on.
	Enabled bool

	// Resolution is the render size, in pixels, for both rasterizers.
	Resolution int
}
