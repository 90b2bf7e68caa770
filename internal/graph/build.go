package graph

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/glyphforge/internal/buildpath"
	"github.com/vk/glyphforge/internal/config"
	"github.com/vk/glyphforge/internal/ctxlog"
	"github.com/vk/glyphforge/internal/rules"
	"github.com/vk/glyphforge/internal/target"
)

// ErrDuplicateInput marks the fatal validation failure for two input files
// sharing a basename. Per-input artifacts are keyed by basename, so a
// collision would give two edges the same output.
var ErrDuplicateInput = errors.New("input svgs must have unique basenames")

// Build constructs the complete, validated build graph for the given input
// SVGs.
//
// Inputs keep their caller-supplied order throughout; validation happens
// before any node is created, so a failing input set never yields a partial
// graph.
func Build(ctx context.Context, svgFiles []string, model *config.Model, resolver *buildpath.Resolver) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.", "inputs", len(svgFiles))

	if err := validateUniqueBasenames(svgFiles); err != nil {
		return nil, err
	}

	fontDest, err := target.FontDest(model)
	if err != nil {
		return nil, err
	}

	relSources := make([]string, len(svgFiles))
	for i, f := range svgFiles {
		rel, err := resolver.RelBuild(f)
		if err != nil {
			return nil, err
		}
		relSources[i] = rel.String()
	}

	g := &Graph{Rules: rules.Catalog(model)}

	// One normalize edge per input.
	picosvgs := make([]string, len(svgFiles))
	for i, f := range svgFiles {
		picosvgs[i] = target.PicosvgDest(f)
		g.add(Edge{
			Outputs: []string{picosvgs[i]},
			Rule:    rules.Picosvg,
			Inputs:  []string{relSources[i]},
		})
	}

	// Every source fans in to the codepoint map, in input order.
	g.add(Edge{
		Outputs: []string{target.CodepointMap},
		Rule:    rules.WriteCodepoints,
		Inputs:  clone(relSources),
	})

	g.add(Edge{
		Outputs: []string{target.Features},
		Rule:    rules.WriteFea,
		Inputs:  []string{target.CodepointMap},
	})

	// The assembly edge lists 2+N inputs: the two singleton artifacts, then
	// every normalized svg in input order.
	fontInputs := append([]string{target.CodepointMap, target.Features}, picosvgs...)
	g.add(Edge{
		Outputs: []string{fontDest},
		Rule:    rules.WriteFont,
		Inputs:  fontInputs,
	})

	if model.Diffs.Enabled {
		buildDiffBranch(g, svgFiles, relSources, fontDest)
	}

	if err := g.validate(relSources); err != nil {
		return nil, fmt.Errorf("error validating build graph: %w", err)
	}

	logger.Debug("Build: graph construction successful.", "edges", len(g.Edges))
	return g, nil
}

// buildDiffBranch appends the visual-regression sub-graph: rasterize each
// source, rasterize each glyph out of the font, diff the pairs, then fan
// all diff images into one report.
func buildDiffBranch(g *Graph, svgFiles, relSources []string, fontDest string) {
	for i, f := range svgFiles {
		g.add(Edge{
			Outputs: []string{target.ResvgPNGDest(f)},
			Rule:    rules.WriteSVG2PNG,
			Inputs:  []string{relSources[i]},
		})
	}

	for i, f := range svgFiles {
		g.add(Edge{
			Outputs: []string{target.SkiaPNGDest(f)},
			Rule:    rules.WriteFont2PNG,
			Inputs:  []string{fontDest, relSources[i]},
		})
	}

	for _, f := range svgFiles {
		g.add(Edge{
			Outputs: []string{target.DiffPNGDest(f)},
			Rule:    rules.WritePNGDiff,
			Inputs:  []string{target.ResvgPNGDest(f), target.SkiaPNGDest(f)},
		})
	}

	diffPNGs := make([]string, len(svgFiles))
	for i, f := range svgFiles {
		diffPNGs[i] = target.DiffPNGDest(f)
	}
	g.add(Edge{
		Outputs: []string{target.DiffReport},
		Rule:    rules.WriteDiffReport,
		Inputs:  diffPNGs,
	})
}

func validateUniqueBasenames(svgFiles []string) error {
	seen := make(map[string]string, len(svgFiles))
	for _, f := range svgFiles {
		base := filepath.Base(f)
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateInput, f, prev)
		}
		seen[base] = f
	}
	return nil
}

func clone(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}
