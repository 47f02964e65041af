package service

import (
	"time"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

// RunOptions configures a single simulation
type RunOptions struct {
	// Trace records every executed command in SimulationResult.Steps
	Trace bool `json:"trace"`
}

// SimulationResult contains the outcome of a successful run
type SimulationResult struct {
	RunID    string              `json:"run_id"`
	Plateau  engine.Bound        `json:"plateau"`
	Rovers   []engine.RoverState `json:"rovers"`
	Steps    []engine.MoveRecord `json:"steps,omitempty"`
	Duration time.Duration       `json:"duration"`
}

// Settings is the subset of configuration the service depends on
type Settings struct {
	MultiDigitPlateau   bool
	RejectNegativeStart bool
	Trace               bool // trace every run regardless of RunOptions
}
