// Package validate checks rover transcript files without printing a run.
//
// A transcript is the same input the console reads: the plateau line, then a
// commands line and a start line per rover, optionally ended by the sentinel.
// Unlike a run, which stops at the first error, validation reports:
//   - the plateau line, when it cannot be read
//   - a missing start line for the last rover
//   - every rover whose start line, heading or commands are unusable
//   - the first movement or collision failure of a dry run, once the input is clean
//
// Valid files get informational lines instead, ending with the final positions.
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
	"github.com/wricardo/mcp-training/marsrover/transport/console"
)

// DefaultSentinel ends a transcript when Options.Sentinel is empty
const DefaultSentinel = "d"

// Options mirror the settings that change how input is read
type Options struct {
	Sentinel            string
	MultiDigitPlateau   bool
	RejectNegativeStart bool
}

// ValidationResult captures the outcome of validating a single file.
// Errors is empty when Valid is true; Info is only filled for valid files.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Info   []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidateFile reads a transcript file and validates it
func ValidateFile(path string, opts Options) ValidationResult {
	result := ValidationResult{File: filepath.Base(path), Valid: true}
	if opts.Sentinel == "" {
		opts.Sentinel = DefaultSentinel
	}

	f, err := os.Open(path)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}
	defer f.Close()

	lines, err := console.CollectLines(f, nil, opts.Sentinel)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	lines = dropTrailingBlank(lines)
	checked := ValidateLines(lines, opts)
	checked.File = result.File
	return checked
}

// ValidateLines validates transcript lines already collected
func ValidateLines(lines []string, opts Options) ValidationResult {
	result := ValidationResult{Valid: true}

	if len(lines) == 0 {
		result.fail("line 1: %s: %s", engine.KindOf(engine.ErrInvalidPlateau), "file is empty")
		return result
	}

	plateau, err := parsePlateau(lines[0], opts)
	plateauOK := err == nil
	if !plateauOK {
		result.fail("line 1: %s: %s", engine.KindOf(err), engine.Hint(err))
	}

	rest := lines[1:]
	if len(rest) == 0 {
		result.fail("%s: %s", engine.KindOf(engine.ErrInvalidNumberOfCommandsForRover), "no rovers after the plateau line")
		return result
	}
	if len(rest)%2 != 0 {
		result.fail("line %d: %s: rover %d has commands but no start line",
			len(lines), engine.KindOf(engine.ErrInvalidNumberOfCommandsForRover), len(rest)/2+1)
	}

	var engineOpts []engine.Option
	if opts.RejectNegativeStart {
		engineOpts = append(engineOpts, engine.WithNegativeStartCheck(true))
	}

	batch := engine.Batch{Plateau: plateau}
	for i := 0; i+1 < len(rest); i += 2 {
		rover := i/2 + 1
		commandsLine := i + 2
		startLine := i + 3

		start, err := engine.ParseStart(rest[i+1])
		if err != nil {
			result.fail("rover %d, line %d: %s: %s", rover, startLine, engine.KindOf(err), engine.Hint(err))
			continue
		}

		d := engine.Deployment{Start: start, Commands: rest[i]}
		if !plateauOK {
			// Without a plateau only heading and commands can be checked
			if h := engine.NormalizeHeading(start.Heading); !h.Valid() {
				result.fail("rover %d, line %d: %s: %s", rover, startLine, engine.KindOf(engine.ErrInvalidHeading), engine.Hint(engine.ErrInvalidHeading))
			}
			if !engine.ValidCommands(engine.CleanCommands(d.Commands)) {
				result.fail("rover %d, line %d: %s: %s", rover, commandsLine, engine.KindOf(engine.ErrInvalidMove), engine.Hint(engine.ErrInvalidMove))
			}
			continue
		}

		single := engine.Batch{Plateau: plateau, Rovers: []engine.Deployment{d}}
		if _, err := engine.NormalizeBatch(single, engineOpts...); err != nil {
			line := startLine
			if engine.KindOf(err) == engine.KindOf(engine.ErrInvalidMove) {
				line = commandsLine
			}
			result.fail("rover %d, line %d: %s: %s", rover, line, engine.KindOf(err), engine.Hint(err))
			continue
		}
		batch.Rovers = append(batch.Rovers, d)
	}

	if !result.Valid {
		return result
	}

	// Input is clean, so a dry run can only fail on movement or collision
	final, err := engine.NewSimulator(engineOpts...).Run(batch)
	if err != nil {
		result.fail("%s: %v", engine.KindOf(err), err)
		return result
	}

	positions := make([]string, len(final))
	for i, s := range final {
		positions[i] = s.String()
	}
	result.Info = append(result.Info,
		fmt.Sprintf("✓ Plateau: (0,0) to (%d,%d)", plateau.MaxX, plateau.MaxY),
		fmt.Sprintf("✓ Rovers: %d", len(final)),
		fmt.Sprintf("✓ Final positions: %s", strings.Join(positions, ", ")),
	)
	return result
}

func parsePlateau(line string, opts Options) (engine.Bound, error) {
	if opts.MultiDigitPlateau {
		return engine.ParsePlateauMultiDigit(line)
	}
	return engine.ParsePlateau(line)
}

// dropTrailingBlank ignores blank lines at the end of a file so they do not
// count as rover lines
func dropTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Report prints one result the way the validate command shows it and
// reports whether the file was valid
func Report(w io.Writer, result ValidationResult) bool {
	fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

	if result.Valid {
		fmt.Fprintln(w, "✅ VALID")
		for _, info := range result.Info {
			fmt.Fprintln(w, "  "+info)
		}
		return true
	}

	fmt.Fprintln(w, "❌ INVALID")
	for _, err := range result.Errors {
		fmt.Fprintln(w, "  ❌ "+err)
	}
	return false
}
