// Package mcp provides a Model Context Protocol server for the Mars Rover Simulator.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - simulate_rovers: run a plateau and a list of {start, commands} rovers
//   - run_transcript: run raw console lines
//   - parse_plateau: show how a plateau line is read
//   - rover_instructions: command reference and error kinds
//
// Failed runs are returned as tool errors naming the error kind and a hint,
// not as protocol errors, so the agent can correct its input and retry.
//
// Usage:
//
//	svc := service.NewRoverService(settings, logger)
//	if err := mcp.NewServer(svc).Serve(); err != nil {
//		log.Fatal(err)
//	}
//
// Serve speaks MCP over stdin/stdout, so logs must go to stderr.
package mcp
