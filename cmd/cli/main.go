package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/vk/glyphforge/internal/app"
	"github.com/vk/glyphforge/internal/cli"
)

// main is the entrypoint for the glyphforge application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. When the external build executor fails, its own exit status is
// surfaced unmodified.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	glyphforgeApp := app.NewApp(outW, appConfig)
	if err := glyphforgeApp.Run(context.Background()); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &cli.ExitError{Code: exitErr.ExitCode(), Message: err.Error()}
		}
		return err
	}
	return nil
}
