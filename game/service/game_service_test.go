package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

func newTestService(settings Settings) (RoverService, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	return NewRoverService(settings, logger), &buf
}

func givenTranscript() []string {
	return []string{
		"5 5",
		"LMLMLMLMM", "1 2 N",
		"MMRMMRMRRM", "3 3 E",
	}
}

func TestRunTranscript_GivenScenario(t *testing.T) {
	svc, _ := newTestService(Settings{})

	result, err := svc.RunTranscript(context.Background(), givenTranscript(), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, engine.Bound{MaxX: 5, MaxY: 5}, result.Plateau)
	require.Len(t, result.Rovers, 2)
	assert.Equal(t, "1 3 N", result.Rovers[0].String())
	assert.Equal(t, "5 1 E", result.Rovers[1].String())
	assert.Empty(t, result.Steps, "steps are only kept when tracing")

	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err, "run ID should be a UUID")
}

func TestRunTranscript_UniqueRunIDs(t *testing.T) {
	svc, _ := newTestService(Settings{})

	first, err := svc.RunTranscript(context.Background(), givenTranscript(), RunOptions{})
	require.NoError(t, err)
	second, err := svc.RunTranscript(context.Background(), givenTranscript(), RunOptions{})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunTranscript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr error
	}{
		{"no lines", nil, engine.ErrInvalidPlateau},
		{"bad plateau", []string{"4", "M", "1 2 N"}, engine.ErrInvalidPlateau},
		{"plateau only", []string{"5 5"}, engine.ErrInvalidNumberOfCommandsForRover},
		{"odd lines", []string{"5 5", "M"}, engine.ErrInvalidNumberOfCommandsForRover},
		{"bad start", []string{"5 5", "M", "12"}, engine.ErrInvalidStartPosition},
		{"out of bounds", []string{"5 5", "MMMMMMM", "1 2 N"}, engine.ErrOutOfBounds},
		{"collision", []string{"5 5", "LMLMLMLMM", "1 2 N", "LMLMLMLMM", "1 2 N"}, engine.ErrCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(Settings{})
			result, err := svc.RunTranscript(context.Background(), tt.lines, RunOptions{})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunTranscript_MultiDigitPlateau(t *testing.T) {
	lines := []string{"10 10", "MMMMMMMM", "1 2 N"}

	// Default: "10 10" is a 1x0 plateau and the start is outside it
	svc, _ := newTestService(Settings{})
	_, err := svc.RunTranscript(context.Background(), lines, RunOptions{})
	assert.ErrorIs(t, err, engine.ErrStartOutOfBounds)

	svc, _ = newTestService(Settings{MultiDigitPlateau: true})
	result, err := svc.RunTranscript(context.Background(), lines, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1 10 N", result.Rovers[0].String())
}

func TestSimulate_RejectNegativeStart(t *testing.T) {
	batch := engine.Batch{
		Plateau: engine.Bound{MaxX: 5, MaxY: 5},
		Rovers: []engine.Deployment{
			{Start: engine.RoverState{Position: engine.Position{X: -1, Y: 0}, Heading: engine.East}, Commands: "M"},
		},
	}

	svc, _ := newTestService(Settings{})
	result, err := svc.Simulate(context.Background(), batch, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "0 0 E", result.Rovers[0].String())

	svc, _ = newTestService(Settings{RejectNegativeStart: true})
	_, err = svc.Simulate(context.Background(), batch, RunOptions{})
	assert.ErrorIs(t, err, engine.ErrStartOutOfBounds)
}

func TestSimulate_Trace(t *testing.T) {
	svc, _ := newTestService(Settings{})
	batch, err := svc.ParseRovers(context.Background(), engine.Bound{MaxX: 5, MaxY: 5}, []string{"LMR", "1 2 N"})
	require.NoError(t, err)

	result, err := svc.Simulate(context.Background(), batch, RunOptions{Trace: true})
	require.NoError(t, err)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, engine.Left, result.Steps[0].Command)
	assert.Equal(t, "0 2 W", result.Steps[1].To.String())
	assert.Equal(t, 3, result.Steps[2].Index)
}

func TestSimulate_TraceFromSettings(t *testing.T) {
	svc, _ := newTestService(Settings{Trace: true})
	result, err := svc.RunTranscript(context.Background(), givenTranscript(), RunOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Steps, 19)
}

func TestSimulate_CancelledContext(t *testing.T) {
	svc, _ := newTestService(Settings{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RunTranscript(ctx, givenTranscript(), RunOptions{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSimulate_ErrorsAreUnchanged(t *testing.T) {
	svc, _ := newTestService(Settings{})
	_, err := svc.RunTranscript(context.Background(), []string{"5 5", "M", "5 5 E"}, RunOptions{})
	require.Error(t, err)

	var runErr *engine.RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, 1, runErr.Rover)
	assert.Equal(t, 1, runErr.Step)
	assert.Equal(t, "OutOfBounds", engine.KindOf(err))
}

func TestSimulate_Logging(t *testing.T) {
	svc, buf := newTestService(Settings{})

	_, err := svc.RunTranscript(context.Background(), givenTranscript(), RunOptions{})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"run_id"`)
	assert.Contains(t, out, "simulation finished")
	assert.Contains(t, out, "command executed")

	buf.Reset()
	_, err = svc.RunTranscript(context.Background(), []string{"5 5", "MMMMMMM", "1 2 N"}, RunOptions{})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "simulation failed")
	assert.Contains(t, buf.String(), `"kind":"OutOfBounds"`)
}
