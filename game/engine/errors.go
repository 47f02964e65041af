package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlateau                  = errors.New("invalid plateau")
	ErrInvalidNumberOfCommandsForRover = errors.New("invalid number of commands for rover")
	ErrInvalidStartPosition            = errors.New("invalid start position")
	ErrInvalidStartMove                = errors.New("invalid start move")
	ErrStartOutOfBounds                = errors.New("start out of bounds")
	ErrInvalidHeading                  = errors.New("invalid heading")
	ErrInvalidMove                     = errors.New("invalid move")
	ErrOutOfBounds                     = errors.New("out of bounds")
	ErrCollision                       = errors.New("collision")
)

var errorKinds = []struct {
	err  error
	name string
	hint string
}{
	{ErrInvalidPlateau, "InvalidPlateau", "the plateau line needs two digits for the upper-right corner, e.g. \"5 5\""},
	{ErrInvalidNumberOfCommandsForRover, "InvalidNumberOfCommandsForRover", "every rover needs a command line followed by a start position line"},
	{ErrInvalidStartPosition, "InvalidStartPosition", "a start position is two digits and a heading, e.g. \"1 2 N\""},
	{ErrInvalidStartMove, "InvalidStartMove", "start coordinates must be single digits 0-9"},
	{ErrStartOutOfBounds, "StartOutOfBounds", "the rover must start inside the plateau"},
	{ErrInvalidHeading, "InvalidHeading", "the heading must be one of N, E, S or W"},
	{ErrInvalidMove, "InvalidMove", "commands may only contain L, R and M"},
	{ErrOutOfBounds, "OutOfBounds", "a move would take the rover off the plateau"},
	{ErrCollision, "Collision", "the rover would stop on a cell already taken by an earlier rover"},
}

// KindOf returns the name of the error kind wrapped by err, or "" if err is
// not a rover error.
func KindOf(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// Hint returns a human-readable suggestion for err
func Hint(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.hint
		}
	}
	return ""
}

// RunError locates a rover error within a batch
type RunError struct {
	Err   error    // one of the Err* kinds
	Rover int      // 1-based rover number
	Step  int      // 1-based command index, 0 when the failure is not tied to a command
	At    Position // rover position when the error was raised
}

func (e *RunError) Error() string {
	if e.Step > 0 {
		return fmt.Sprintf("rover %d, command %d at %s: %v", e.Rover, e.Step, e.At, e.Err)
	}
	return fmt.Sprintf("rover %d at %s: %v", e.Rover, e.At, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
