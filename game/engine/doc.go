// Package engine provides the rover command interpreter for the Mars Rover Simulator.
//
// The engine package implements:
//   - Tolerant parsing of the plateau line and rover start lines
//   - Normalization and validation of headings and command strings
//   - Rotation and forward movement with plateau boundary checks
//   - Collision detection between rovers that have finished moving
//   - Sequential, fail-fast simulation of a whole batch
//
// Core Types:
//
// Bound is the plateau's inclusive upper-right corner (the lower-left corner
// is always 0,0). RoverState is a position plus a Heading. A Deployment pairs
// a starting RoverState with its command string, and a Batch holds every
// deployment of a run in order. Simulator implements the Engine interface.
//
// Usage:
//
//	plateau, err := engine.ParsePlateau("5 5")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	batch, err := engine.ParseRoverBatch(plateau, []string{"LMLMLMLMM", "1 2 N"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	final, err := engine.NewSimulator().Run(batch)
//	// final[0] is "1 3 N"
//
// Rules:
//
// L and R turn the rover 90 degrees in place; M moves it one cell forward.
// A move that would leave the plateau fails the whole run with
// ErrOutOfBounds. Rovers run one after another, and a rover that finishes on
// a cell already held by an earlier rover fails the run with ErrCollision.
// There are no partial results: a run either returns every final position or
// exactly one error.
//
// Known limitation: ParsePlateau reads each digit as a whole coordinate, so
// plateaus are limited to 0-9 per axis. ParsePlateauMultiDigit lifts this.
package engine
