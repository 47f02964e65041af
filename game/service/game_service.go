package service

import (
	"context"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

// RoverService defines all rover simulation operations shared by the
// console and MCP front ends
type RoverService interface {
	// Parsing
	ParsePlateau(ctx context.Context, line string) (engine.Bound, error)
	ParseRovers(ctx context.Context, plateau engine.Bound, lines []string) (engine.Batch, error)

	// Simulation
	Simulate(ctx context.Context, batch engine.Batch, opts RunOptions) (*SimulationResult, error)
	RunTranscript(ctx context.Context, lines []string, opts RunOptions) (*SimulationResult, error)
}
