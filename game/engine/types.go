package engine

import (
	"fmt"
	"unicode/utf8"
)

// Heading is the direction a rover faces
type Heading rune

const (
	North Heading = 'N'
	East  Heading = 'E'
	South Heading = 'S'
	West  Heading = 'W'
)

// Command is a single rover instruction
type Command rune

const (
	Left    Command = 'L'
	Right   Command = 'R'
	Forward Command = 'M'
)

// Valid reports whether h is one of the four canonical headings
func (h Heading) Valid() bool {
	switch h {
	case North, East, South, West:
		return true
	}
	return false
}

func (h Heading) String() string {
	return string(h)
}

// MarshalText encodes the heading as its single letter
func (h Heading) MarshalText() ([]byte, error) {
	return []byte(string(h)), nil
}

// UnmarshalText decodes a single-rune heading. The value is not validated here.
func (h *Heading) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if size == 0 || size != len(text) {
		return fmt.Errorf("heading must be a single character, got %q", text)
	}
	*h = Heading(r)
	return nil
}

func (c Command) String() string {
	return string(c)
}

// Position represents x,y coordinates on the plateau
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bound is the inclusive upper-right corner of the plateau.
// The lower-left corner is always (0,0).
type Bound struct {
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Contains reports whether p lies inside the plateau
func (b Bound) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= b.MaxX && p.Y <= b.MaxY
}

// RoverState is a rover's pose
type RoverState struct {
	Position
	Heading Heading `json:"heading"`
}

// String formats the state the way results are reported: "x y H"
func (s RoverState) String() string {
	return fmt.Sprintf("%d %d %s", s.X, s.Y, s.Heading)
}

// Deployment pairs a starting pose with the command string the rover runs
type Deployment struct {
	Start    RoverState `json:"start"`
	Commands string     `json:"commands"`
}

// Batch is every rover of one run, in the order they are simulated
type Batch struct {
	Plateau Bound        `json:"plateau"`
	Rovers  []Deployment `json:"rovers"`
}

// MoveRecord describes one executed command
type MoveRecord struct {
	Rover   int        `json:"rover"` // 1-based
	Index   int        `json:"index"` // 1-based position in the cleaned command string
	Command Command    `json:"command"`
	From    RoverState `json:"from"`
	To      RoverState `json:"to"`
}

// MarshalText encodes the command as its single letter
func (c Command) MarshalText() ([]byte, error) {
	return []byte(string(c)), nil
}
