package app

import (
	"errors"

	"github.com/vk/glyphforge/internal/config"
)

// Config holds everything one App invocation needs.
type Config struct {
	// Inputs are the SVG files or directories to build from, in argument
	// order. Directories expand to their .svg files during Run.
	Inputs []string

	// BuildDir is where the build runs and where build.ninja is written.
	BuildDir string

	// GenNinja controls whether build.ninja is (re)generated.
	GenNinja bool

	// ExecNinja controls whether the external executor is invoked; when
	// false the command that would run is printed instead.
	ExecNinja bool

	// Font holds the settings that parameterize the generated rules.
	Font config.Model

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one input SVG file or directory is required")
	}
	if cfg.BuildDir == "" {
		return nil, errors.New("BuildDir is a required configuration field and cannot be empty")
	}
	if cfg.Font.Diffs.Enabled && cfg.Font.Diffs.Resolution <= 0 {
		return nil, errors.New("diff resolution must be positive when diffs are enabled")
	}

	return &cfg, nil
}
