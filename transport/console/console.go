package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

// Banner prints the greeting and input instructions
func Banner(w io.Writer, sentinel string) {
	fmt.Fprintln(w, "Mars Rover Simulator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Enter the plateau's upper-right corner first, e.g. \"5 5\".")
	fmt.Fprintln(w, "Then, for each rover, enter its commands (L, R, M) followed by its")
	fmt.Fprintln(w, "start position and heading, e.g. \"LMLMLMLMM\" then \"1 2 N\".")
	fmt.Fprintf(w, "Enter %q on its own line when done.\n\n", sentinel)
}

// CollectLines reads lines from r until a line equal to sentinel or EOF.
// The sentinel itself is not returned. A prompt is written to w before each
// line when w is non-nil.
func CollectLines(r io.Reader, w io.Writer, sentinel string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string

	for {
		if w != nil {
			fmt.Fprint(w, prompt(len(lines)))
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == sentinel {
			break
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// prompt labels the next expected line. n is the number of lines read so far.
func prompt(n int) string {
	if n == 0 {
		return "plateau> "
	}
	rover := (n-1)/2 + 1
	if (n-1)%2 == 0 {
		return fmt.Sprintf("rover %d commands> ", rover)
	}
	return fmt.Sprintf("rover %d start> ", rover)
}

// PrintPositions writes one "x y H" line per rover
func PrintPositions(w io.Writer, states []engine.RoverState) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final rover position(s):")
	fmt.Fprintln(w)
	for _, s := range states {
		fmt.Fprintln(w, s.String())
	}
}

// PrintError reports the error kind and a hint on how to fix the input
func PrintError(w io.Writer, err error) {
	kind := engine.KindOf(err)
	if kind == "" {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Error: %s (%v)\n", kind, err)
	if hint := engine.Hint(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// PrintSteps writes every executed command of a traced run
func PrintSteps(w io.Writer, steps []engine.MoveRecord) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Steps:")
	for _, s := range steps {
		fmt.Fprintf(w, "  rover %d #%d %s: %s -> %s\n", s.Rover, s.Index, s.Command, s.From, s.To)
	}
}
