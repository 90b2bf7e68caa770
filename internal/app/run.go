package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/glyphforge/internal/buildpath"
	"github.com/vk/glyphforge/internal/ctxlog"
	"github.com/vk/glyphforge/internal/executor"
	"github.com/vk/glyphforge/internal/fsutil"
	"github.com/vk/glyphforge/internal/graph"
	"github.com/vk/glyphforge/internal/ninja"
	"github.com/vk/glyphforge/internal/target"
)

// Run executes the pipeline: expand the inputs, synthesize and validate the
// build graph, write the build description, then hand off to the external
// executor.
//
// Input validation happens before any directory or file is created, so a
// rejected input set leaves the filesystem untouched.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	svgFiles, err := a.expandInputs()
	if err != nil {
		return err
	}
	a.logger.Debug("Inputs expanded.", "count", len(svgFiles))

	resolver, err := buildpath.NewResolver(a.config.BuildDir)
	if err != nil {
		return err
	}

	g, err := graph.Build(ctx, svgFiles, &a.config.Font, resolver)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "edge_count", len(g.Edges))

	if err := a.createBuildDirs(resolver); err != nil {
		return err
	}

	buildFile := resolver.Resolve("build.ninja")
	if a.config.GenNinja {
		a.logger.Info("Generating build description.", "path", buildFile)
		if err := a.writeBuildFile(buildFile, g); err != nil {
			return err
		}
	}

	nj := executor.New(resolver.BuildDir(), a.outW, a.outW)
	if !a.config.ExecNinja {
		fmt.Fprintln(a.outW, "To run:", nj.CommandLine())
		return nil
	}

	a.logger.Info("Running build executor.", "command", nj.CommandLine())
	if err := nj.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Build finished.")
	return nil
}

// expandInputs resolves the configured inputs to an ordered list of
// absolute SVG paths. Files keep their argument position; a directory
// contributes its .svg files, in the finder's deterministic order, at the
// directory's position.
func (a *App) expandInputs() ([]string, error) {
	var svgFiles []string
	for _, input := range a.config.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("cannot access input %s: %w", input, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(input, ".svg")
			if err != nil {
				return nil, fmt.Errorf("cannot search input directory %s: %w", input, err)
			}
			svgFiles = append(svgFiles, found...)
			continue
		}
		svgFiles = append(svgFiles, input)
	}

	for i, f := range svgFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve input %s: %w", f, err)
		}
		svgFiles[i] = abs
	}
	return svgFiles, nil
}

// createBuildDirs makes the build directory, plus the rasterizer and diff
// output directories when the diff branch is enabled. The normalize stage
// needs no pre-created directory; the executor creates output directories
// for declared edges.
func (a *App) createBuildDirs(resolver *buildpath.Resolver) error {
	dirs := []string{resolver.BuildDir()}
	if a.config.Font.Diffs.Enabled {
		for _, sub := range []string{target.ResvgPNGDir, target.SkiaPNGDir, target.DiffPNGDir} {
			dirs = append(dirs, filepath.Join(resolver.BuildDir(), sub))
		}
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create build directory %s: %w", dir, err)
		}
	}
	return nil
}

// writeBuildFile serializes the graph wholesale; the description is always
// regenerated, never patched.
func (a *App) writeBuildFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create build description %s: %w", path, err)
	}
	if err := ninja.Emit(f, g); err != nil {
		f.Close()
		return fmt.Errorf("cannot write build description %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write build description %s: %w", path, err)
	}
	return nil
}
