// Package fontconfig loads the optional HCL settings file that can stand in
// for font-related command-line flags.
package fontconfig

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/glyphforge/internal/ctxlog"
)

// Load parses the settings file at path. Expressions in the file are
// evaluated with the process environment exposed as the `env` object, so a
// value can be derived from the invoking environment:
//
//	font {
//	  family = "${env.USER} Emoji"
//	}
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	file := &File{}
	if root.Font != nil {
		file.Family = root.Font.Family
		file.ColorFormat = root.Font.ColorFormat
		file.Upem = root.Font.Upem
		file.KeepGlyphNames = root.Font.KeepGlyphNames
		file.Output = root.Font.Output
		file.OutputFile = root.Font.OutputFile
	}
	if root.Diffs != nil {
		file.DiffsEnabled = root.Diffs.Enabled
		file.DiffResolution = root.Diffs.Resolution
	}

	logger.Debug("Settings file loaded.", "path", path)
	return file, nil
}

// evalContext exposes the process environment to settings expressions as
// the `env` object value.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
