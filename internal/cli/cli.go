package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/glyphforge/internal/app"
	"github.com/vk/glyphforge/internal/config"
	"github.com/vk/glyphforge/internal/fontconfig"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
//
// Precedence for font settings is flag over settings file over default: a
// value from the optional HCL settings file applies only to flags the user
// left unset.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("glyphforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Glyphforge - build an emoji font from a set of SVGs.

Usage:
  glyphforge [options] SVG_FILES...

Arguments:
  SVG_FILES
    SVG input files, or directories searched for .svg files. Order matters:
    it determines glyph ordering in the assembled font.

Options:
`)
		flagSet.PrintDefaults()
	}

	buildDirFlag := flagSet.String("build-dir", "build/", "Where the build runs.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	genNinjaFlag := flagSet.Bool("gen-ninja", true, "Whether to regenerate build.ninja.")
	execNinjaFlag := flagSet.Bool("exec-ninja", true, "Whether to run ninja.")
	familyFlag := flagSet.String("family", "An Emoji Family", "Font family name.")
	colorFormatFlag := flagSet.String("color-format", "glyf_colr_1", "Color table format for the font.")
	outputFlag := flagSet.String("output", "font", "Output kind. Options: 'font' or 'ufo'.")
	outputFileFlag := flagSet.String("output-file", "", "Explicit font output path, overriding the derived name.")
	upemFlag := flagSet.Int("upem", 1024, "Units per em.")
	keepGlyphNamesFlag := flagSet.Bool("keep-glyph-names", false, "Keep glyph names in the assembled font.")
	diffsFlag := flagSet.Bool("diffs", false, "Whether to generate svg vs font render diffs.")
	diffResolutionFlag := flagSet.Int("diff-resolution", 256, "Render resolution for diff images.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No input files provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *outputFlag != "font" && *outputFlag != "ufo" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'font' or 'ufo'"}
	}
	slog.Debug("CLI parameter validation complete.")

	fontModel := config.Model{
		Family:         *familyFlag,
		ColorFormat:    *colorFormatFlag,
		Output:         *outputFlag,
		OutputFile:     *outputFileFlag,
		Upem:           *upemFlag,
		KeepGlyphNames: *keepGlyphNamesFlag,
		Diffs: config.Diffs{
			Enabled:    *diffsFlag,
			Resolution: *diffResolutionFlag,
		},
	}

	if *configFlag != "" {
		set := make(map[string]bool)
		flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

		file, err := fontconfig.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applySettingsFile(&fontModel, file, set)
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	cfg, err := app.NewConfig(app.Config{
		Inputs:    flagSet.Args(),
		BuildDir:  *buildDirFlag,
		GenNinja:  *genNinjaFlag,
		ExecNinja: *execNinjaFlag,
		Font:      fontModel,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return cfg, false, nil
}

// applySettingsFile fills every font setting the user did not pass on the
// command line from the settings file. The set map records which flag names
// were given explicitly.
func applySettingsFile(m *config.Model, f *fontconfig.File, set map[string]bool) {
	if f.Family != nil && !set["family"] {
		m.Family = *f.Family
	}
	if f.ColorFormat != nil && !set["color-format"] {
		m.ColorFormat = *f.ColorFormat
	}
	if f.Output != nil && !set["output"] {
		m.Output = *f.Output
	}
	if f.OutputFile != nil && !set["output-file"] {
		m.OutputFile = *f.OutputFile
	}
	if f.Upem != nil && !set["upem"] {
		m.Upem = *f.Upem
	}
	if f.KeepGlyphNames != nil && !set["keep-glyph-names"] {
		m.KeepGlyphNames = *f.KeepGlyphNames
	}
	if f.DiffsEnabled != nil && !set["diffs"] {
		m.Diffs.Enabled = *f.DiffsEnabled
	}
	if f.DiffResolution != nil && !set["diff-resolution"] {
		m.Diffs.Resolution = *f.DiffResolution
	}
}
