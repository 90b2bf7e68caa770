// Package target maps pipeline stages and input files to their output
// artifact paths. Every function here is pure and deterministic: the same
// stage and input always yield the byte-identical destination, with no
// hidden counters or enumeration-order dependence.
package target

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/glyphforge/internal/config"
)

// Singleton artifacts with fixed names, relative to the build root.
const (
	CodepointMap = "codepointmap.csv"
	Features     = "features.fea"
	DiffReport   = "diffs.html"
)

// Stage directories for the per-input artifact kinds.
const (
	PicosvgDir  = "picosvg"
	ResvgPNGDir = "resvg_png"
	SkiaPNGDir  = "skia_png"
	DiffPNGDir  = "diff_png"
)

// PicosvgDest returns the normalized-SVG destination for an input SVG.
func PicosvgDest(inputSVG string) string {
	return filepath.Join(PicosvgDir, filepath.Base(inputSVG))
}

// ResvgPNGDest returns the destination for the rasterized source SVG.
func ResvgPNGDest(inputSVG string) string {
	return pngDest(ResvgPNGDir, inputSVG)
}

// SkiaPNGDest returns the destination for the glyph rasterized out of the
// assembled font.
func SkiaPNGDest(inputSVG string) string {
	return pngDest(SkiaPNGDir, inputSVG)
}

// DiffPNGDest returns the destination for the comparison image of one input.
func DiffPNGDest(inputSVG string) string {
	return pngDest(DiffPNGDir, inputSVG)
}

// FontDest returns the font artifact path: the explicit override when one
// is configured, otherwise a name derived from the family and output kind,
// relative to the build root.
func FontDest(model *config.Model) (string, error) {
	if model.OutputFile != "" {
		abs, err := filepath.Abs(model.OutputFile)
		if err != nil {
			return "", fmt.Errorf("cannot resolve output file %s: %w", model.OutputFile, err)
		}
		return abs, nil
	}

	name := strings.ReplaceAll(model.Family, " ", "")
	ext := ".ttf"
	if model.Output == "ufo" {
		ext = ".ufo"
	}
	return name + ext, nil
}

func pngDest(stageDir, inputSVG string) string {
	base := filepath.Base(inputSVG)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	return filepath.Join(stageDir, base)
}
