// Package service provides the application layer for the Mars Rover Simulator.
//
// The service package implements:
//   - Plateau and rover line parsing with the configured plateau mode
//   - Simulation runs tagged with a unique run ID
//   - Optional per-command tracing
//   - Structured logging of each run's lifecycle
//
// Core Interfaces:
//
// RoverService is the interface shared by the console and MCP front ends.
// It wraps the engine package without changing its results: errors come back
// exactly as the engine raised them, so engine.KindOf and errors.Is keep
// working on them.
//
// Usage:
//
//	svc := service.NewRoverService(service.Settings{}, logger)
//
//	result, err := svc.RunTranscript(ctx, []string{
//		"5 5",
//		"LMLMLMLMM", "1 2 N",
//		"MMRMMRMRRM", "3 3 E",
//	}, service.RunOptions{})
//	if err != nil {
//		fmt.Println(engine.KindOf(err))
//	}
//
// Runs are independent: the service holds no per-run state, so concurrent
// calls from different front ends never interfere.
package service
