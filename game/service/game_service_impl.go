package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

// roverServiceImpl implements the RoverService interface
type roverServiceImpl struct {
	settings Settings
	logger   zerolog.Logger
}

// NewRoverService creates a new rover service instance
func NewRoverService(settings Settings, logger zerolog.Logger) RoverService {
	return &roverServiceImpl{
		settings: settings,
		logger:   logger.With().Str("component", "rover_service").Logger(),
	}
}

// ParsePlateau reads the plateau line, one digit per axis unless
// multi-digit plateaus are enabled
func (s *roverServiceImpl) ParsePlateau(ctx context.Context, line string) (engine.Bound, error) {
	if err := ctx.Err(); err != nil {
		return engine.Bound{}, err
	}

	if s.settings.MultiDigitPlateau {
		return engine.ParsePlateauMultiDigit(line)
	}
	return engine.ParsePlateau(line)
}

// ParseRovers pairs (commands, start) lines into a batch
func (s *roverServiceImpl) ParseRovers(ctx context.Context, plateau engine.Bound, lines []string) (engine.Batch, error) {
	if err := ctx.Err(); err != nil {
		return engine.Batch{}, err
	}
	return engine.ParseRoverBatch(plateau, lines)
}

// Simulate runs a batch to completion. A run that has started is never
// interrupted; only a context that is already done is rejected.
func (s *roverServiceImpl) Simulate(ctx context.Context, batch engine.Batch, opts RunOptions) (*SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := s.logger.With().Str("run_id", runID).Logger()
	trace := opts.Trace || s.settings.Trace

	var steps []engine.MoveRecord
	observer := func(r engine.MoveRecord) {
		logger.Trace().
			Int("rover", r.Rover).
			Int("index", r.Index).
			Str("command", r.Command.String()).
			Str("from", r.From.String()).
			Str("to", r.To.String()).
			Msg("command executed")
		if trace {
			steps = append(steps, r)
		}
	}

	sim := engine.NewSimulator(
		engine.WithNegativeStartCheck(s.settings.RejectNegativeStart),
		engine.WithObserver(observer),
	)

	logger.Debug().
		Int("rovers", len(batch.Rovers)).
		Int("max_x", batch.Plateau.MaxX).
		Int("max_y", batch.Plateau.MaxY).
		Msg("simulation started")

	started := time.Now()
	final, err := sim.Run(batch)
	elapsed := time.Since(started)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("kind", engine.KindOf(err)).
			Dur("elapsed", elapsed).
			Msg("simulation failed")
		return nil, err
	}

	for i, r := range final {
		logger.Debug().Int("rover", i+1).Str("final", r.String()).Msg("rover finished")
	}
	logger.Info().
		Int("rovers", len(final)).
		Dur("elapsed", elapsed).
		Msg("simulation finished")

	return &SimulationResult{
		RunID:    runID,
		Plateau:  batch.Plateau,
		Rovers:   final,
		Steps:    steps,
		Duration: elapsed,
	}, nil
}

// RunTranscript treats the first line as the plateau and the rest as
// (commands, start) pairs, the order the console collects them in
func (s *roverServiceImpl) RunTranscript(ctx context.Context, lines []string, opts RunOptions) (*SimulationResult, error) {
	if len(lines) == 0 {
		return nil, engine.ErrInvalidPlateau
	}

	plateau, err := s.ParsePlateau(ctx, lines[0])
	if err != nil {
		s.logger.Warn().Err(err).Str("line", lines[0]).Msg("plateau rejected")
		return nil, err
	}

	batch, err := s.ParseRovers(ctx, plateau, lines[1:])
	if err != nil {
		s.logger.Warn().Err(err).Int("lines", len(lines)-1).Msg("rover lines rejected")
		return nil, err
	}

	return s.Simulate(ctx, batch, opts)
}
