// Command marsrover runs the Mars Rover Simulator.
//
// It supports three modes:
//  1. "run" (default) – reads the plateau and rover lines from stdin and prints final positions
//  2. "mcp" – serves the simulator as MCP tools over stdio
//  3. "validate" – checks transcript files and reports every problem found
//
// Flags select a settings file, debug logging, the log format and the
// optional plateau and start position checks. Logs always go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/marsrover/game/config"
	"github.com/wricardo/mcp-training/marsrover/game/service"
	"github.com/wricardo/mcp-training/marsrover/logging"
	"github.com/wricardo/mcp-training/marsrover/transport/console"
	"github.com/wricardo/mcp-training/marsrover/transport/mcp"
	"github.com/wricardo/mcp-training/marsrover/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Mars Rover Simulator"
)

// errRunFailed is returned once a failed run has already been reported
var errRunFailed = errors.New("run failed")

func init() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintf(cmd.Root().Writer, "%s v%s\n", AppName, cmd.Root().Version)
	}
}

func main() {
	// Load .env file if it exists
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newCommand builds the command tree around the given streams
func newCommand(in io.Reader, out, errOut io.Writer) *cli.Command {
	runAction := func(ctx context.Context, cmd *cli.Command) error {
		return runConsole(ctx, cmd, in, out, errOut)
	}

	return &cli.Command{
		Name:      "marsrover",
		Usage:     "simulate rovers exploring a rectangular plateau",
		Version:   Version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file (json, yaml or toml)",
				Sources: cli.EnvVars("ROVER_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: console or json",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print every executed command",
			},
			&cli.BoolFlag{
				Name:  "multi-digit-plateau",
				Usage: "read plateau coordinates with more than one digit",
			},
			&cli.BoolFlag{
				Name:  "reject-negative-start",
				Usage: "reject start positions left of or below the plateau",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "read rovers from stdin and print their final positions (default)",
				Action: runAction,
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "serve the simulator as MCP tools over stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serveMCP(cmd, errOut)
				},
			},
			{
				Name:      "validate",
				Usage:     "check transcript files without running them",
				ArgsUsage: "<file>...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return validateFiles(cmd, out, errOut)
				},
			},
		},
	}
}

// app holds what every mode needs after settings are resolved
type app struct {
	settings config.Settings
	logger   zerolog.Logger
	svc      service.RoverService
}

// setup loads settings, applies flag overrides and wires the logger and
// rover service
func setup(cmd *cli.Command, errOut io.Writer) (*app, error) {
	manager, err := config.NewManager(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	overrides := map[string]interface{}{}
	if cmd.Bool("debug") {
		overrides["logLevel"] = "debug"
	}
	if format := cmd.String("log-format"); format != "" {
		overrides["logFormat"] = format
	}
	if cmd.Bool("trace") {
		overrides["trace"] = true
	}
	if cmd.Bool("multi-digit-plateau") {
		overrides["plateau.multiDigit"] = true
	}
	if cmd.Bool("reject-negative-start") {
		overrides["start.rejectNegative"] = true
	}
	for key, value := range overrides {
		if err := manager.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply %s override: %w", key, err)
		}
	}

	settings := manager.Settings()
	logger := logging.New(errOut, settings.LogLevel, settings.LogFormat)
	if file := manager.ConfigFile(); file != "" {
		logger.Debug().Str("file", file).Msg("settings loaded")
	}

	svc := service.NewRoverService(service.Settings{
		MultiDigitPlateau:   settings.Plateau.MultiDigit,
		RejectNegativeStart: settings.Start.RejectNegative,
		Trace:               settings.Trace,
	}, logger)

	return &app{settings: settings, logger: logger, svc: svc}, nil
}

// runConsole collects lines until the sentinel, runs them and prints the
// final positions or the error
func runConsole(ctx context.Context, cmd *cli.Command, in io.Reader, out, errOut io.Writer) error {
	a, err := setup(cmd, errOut)
	if err != nil {
		return err
	}

	console.Banner(out, a.settings.Sentinel)
	lines, err := console.CollectLines(in, out, a.settings.Sentinel)
	if err != nil {
		return err
	}

	result, err := a.svc.RunTranscript(ctx, lines, service.RunOptions{})
	if err != nil {
		fmt.Fprintln(out)
		console.PrintError(out, err)
		return errRunFailed
	}

	console.PrintPositions(out, result.Rovers)
	console.PrintSteps(out, result.Steps)
	return nil
}

// serveMCP runs the MCP stdio server until stdin closes
func serveMCP(cmd *cli.Command, errOut io.Writer) error {
	a, err := setup(cmd, errOut)
	if err != nil {
		return err
	}

	a.logger.Info().Str("version", Version).Msg("MCP stdio server ready")
	if err := mcp.NewServer(a.svc).Serve(); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// validateFiles reports on each transcript file and fails if any is invalid
func validateFiles(cmd *cli.Command, out, errOut io.Writer) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("no transcript files given")
	}

	a, err := setup(cmd, errOut)
	if err != nil {
		return err
	}

	opts := validate.Options{
		Sentinel:            a.settings.Sentinel,
		MultiDigitPlateau:   a.settings.Plateau.MultiDigit,
		RejectNegativeStart: a.settings.Start.RejectNegative,
	}

	allValid := true
	for _, file := range files {
		result := validate.ValidateFile(file, opts)
		a.logger.Debug().Str("file", file).Bool("valid", result.Valid).Int("errors", len(result.Errors)).Msg("transcript checked")
		if !validate.Report(out, result) {
			allValid = false
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
	if !allValid {
		fmt.Fprintln(out, "❌ Some transcripts have errors")
		return errRunFailed
	}
	fmt.Fprintln(out, "✅ All transcripts are valid!")
	return nil
}
