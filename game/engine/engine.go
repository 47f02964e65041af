package engine

// Engine runs a batch of rovers to completion
type Engine interface {
	Run(batch Batch) ([]RoverState, error)
}

// Simulator implements the Engine interface
type Simulator struct {
	opts Options
}

// NewSimulator creates a simulator with the given options
func NewSimulator(opts ...Option) *Simulator {
	return &Simulator{opts: buildOptions(opts)}
}

// Run validates the batch and drives each rover in order. A rover that stops
// on a cell taken by an earlier rover fails the run with ErrCollision.
// The first error aborts the run and no positions are returned.
func (s *Simulator) Run(batch Batch) ([]RoverState, error) {
	cleaned, err := normalizeBatch(batch, s.opts)
	if err != nil {
		return nil, err
	}

	settled := make([]RoverState, 0, len(cleaned.Rovers))
	for i, d := range cleaned.Rovers {
		rover := i + 1

		final, err := Drive(rover, d.Start, d.Commands, cleaned.Plateau, s.opts.Observer)
		if err != nil {
			return nil, err
		}

		if err := CheckCollision(final, settled); err != nil {
			return nil, &RunError{Err: err, Rover: rover, At: final.Position}
		}
		settled = append(settled, final)
	}
	return settled, nil
}

// Simulate runs rovers on the plateau with default options
func Simulate(plateau Bound, rovers []Deployment) ([]RoverState, error) {
	return NewSimulator().Run(Batch{Plateau: plateau, Rovers: rovers})
}
