package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/marsrover/game/engine"
	"github.com/wricardo/mcp-training/marsrover/game/service"
)

// ServerName and ServerVersion identify the MCP server to clients
const (
	ServerName    = "Mars Rover Simulator"
	ServerVersion = "1.0.0"
)

// Server exposes the rover service as MCP tools
type Server struct {
	svc       service.RoverService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server backed by svc
func NewServer(svc service.RoverService) *Server {
	s := &Server{svc: svc}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mars Rover Simulator - MCP Interface

Rovers land on a rectangular plateau whose lower-left corner is (0,0).
Each rover has a start position, a heading (N, E, S, W) and a command string:
L turns left, R turns right, M moves one cell forward.

Rovers are simulated one after another. A move off the plateau, or a rover
stopping on a cell where an earlier rover stopped, fails the whole run.

AVAILABLE TOOLS:
- simulate_rovers: Run a batch of rovers and get their final positions
- run_transcript: Run raw console lines (plateau, then commands/start pairs)
- parse_plateau: Check how a plateau line is read
- rover_instructions: Command reference and error kinds`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "simulate_rovers",
		Description: "Simulate rovers on a plateau and return their final positions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"plateau": map[string]interface{}{
					"type":        "string",
					"description": "Upper-right corner of the plateau, e.g. \"5 5\"",
				},
				"rovers": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"start": map[string]interface{}{
								"type":        "string",
								"description": "Start position and heading, e.g. \"1 2 N\"",
							},
							"commands": map[string]interface{}{
								"type":        "string",
								"description": "Command string made of L, R and M",
							},
						},
						"required": []string{"start", "commands"},
					},
					"description": "Rovers in the order they move",
				},
				"trace": map[string]interface{}{
					"type":        "boolean",
					"description": "Include every executed command in the result",
				},
			},
			Required: []string{"plateau", "rovers"},
		},
	}, s.handleSimulateRovers)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "run_transcript",
		Description: "Run console input lines: the plateau first, then each rover's commands followed by its start position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lines": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Input lines without the terminating \"d\"",
				},
				"trace": map[string]interface{}{
					"type":        "boolean",
					"description": "Include every executed command in the result",
				},
			},
			Required: []string{"lines"},
		},
	}, s.handleRunTranscript)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "parse_plateau",
		Description: "Show how a plateau line is read",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"plateau": map[string]interface{}{
					"type":        "string",
					"description": "Plateau line, e.g. \"5 5\"",
				},
			},
			Required: []string{"plateau"},
		},
	}, s.handleParsePlateau)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "rover_instructions",
		Description: "Get the command reference and the list of error kinds",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleInstructions)
}

// GetMCPServer returns the underlying MCP server
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve runs the MCP server over stdin/stdout until the input closes
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

func (s *Server) handleSimulateRovers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	plateau, _ := args["plateau"].(string)
	roversRaw, _ := args["rovers"].([]interface{})
	trace, _ := args["trace"].(bool)

	// Build the same lines the console would collect
	lines := []string{plateau}
	for i, raw := range roversRaw {
		rover, ok := raw.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("rover %d must be an object with start and commands", i+1)), nil
		}
		start, ok := rover["start"].(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("rover %d: start must be a string", i+1)), nil
		}
		commands, ok := rover["commands"].(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("rover %d: commands must be a string", i+1)), nil
		}
		lines = append(lines, commands, start)
	}

	result, err := s.svc.RunTranscript(ctx, lines, service.RunOptions{Trace: trace})
	if err != nil {
		return mcp.NewToolResultError(formatError(err)), nil
	}
	return mcp.NewToolResultText(formatResult(result)), nil
}

func (s *Server) handleRunTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	linesRaw, _ := args["lines"].([]interface{})
	trace, _ := args["trace"].(bool)

	lines := make([]string, 0, len(linesRaw))
	for i, l := range linesRaw {
		line, ok := l.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("line %d must be a string", i+1)), nil
		}
		lines = append(lines, line)
	}

	result, err := s.svc.RunTranscript(ctx, lines, service.RunOptions{Trace: trace})
	if err != nil {
		return mcp.NewToolResultError(formatError(err)), nil
	}
	return mcp.NewToolResultText(formatResult(result)), nil
}

func (s *Server) handleParsePlateau(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	line, _ := args["plateau"].(string)

	bound, err := s.svc.ParsePlateau(ctx, line)
	if err != nil {
		return mcp.NewToolResultError(formatError(err)), nil
	}

	result := fmt.Sprintf("Plateau: (0,0) to (%d,%d)\nCells: %d x %d\n",
		bound.MaxX, bound.MaxY, bound.MaxX+1, bound.MaxY+1)
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("MARS ROVER COMMANDS\n\n")
	b.WriteString("L  turn 90 degrees left (N->W->S->E->N)\n")
	b.WriteString("R  turn 90 degrees right (N->E->S->W->N)\n")
	b.WriteString("M  move one cell forward (N: y+1, E: x+1, S: y-1, W: x-1)\n\n")
	b.WriteString("INPUT CLEANUP\n\n")
	b.WriteString("- Plateau: every non-digit is ignored; the first two digits are the corner\n")
	b.WriteString("- Start: only letters and digits are kept; exactly x, y and heading must remain\n")
	b.WriteString("- Commands and headings are upper-cased; non-letters in commands are dropped\n\n")
	b.WriteString("ERROR KINDS\n\n")
	for _, kind := range []error{
		engine.ErrInvalidPlateau,
		engine.ErrInvalidNumberOfCommandsForRover,
		engine.ErrInvalidStartPosition,
		engine.ErrInvalidStartMove,
		engine.ErrStartOutOfBounds,
		engine.ErrInvalidHeading,
		engine.ErrInvalidMove,
		engine.ErrOutOfBounds,
		engine.ErrCollision,
	} {
		fmt.Fprintf(&b, "- %s: %s\n", engine.KindOf(kind), engine.Hint(kind))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func formatResult(result *service.SimulationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run: %s\n", result.RunID)
	fmt.Fprintf(&b, "Plateau: (0,0) to (%d,%d)\n\n", result.Plateau.MaxX, result.Plateau.MaxY)
	b.WriteString("Final rover position(s):\n")
	for _, r := range result.Rovers {
		b.WriteString(r.String())
		b.WriteString("\n")
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range result.Steps {
			fmt.Fprintf(&b, "rover %d #%d %s: %s -> %s\n",
				step.Rover, step.Index, step.Command, step.From, step.To)
		}
	}
	return b.String()
}

func formatError(err error) string {
	kind := engine.KindOf(err)
	if kind == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: %v\nHint: %s", kind, err, engine.Hint(err))
}
