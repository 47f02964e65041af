package engine

// NextHeading returns the heading after applying c to a rover facing h.
// Forward never changes the heading. ok is false for an unknown heading or
// command.
func NextHeading(h Heading, c Command) (next Heading, ok bool) {
	if !h.Valid() {
		return h, false
	}

	switch c {
	case Forward:
		return h, true
	case Left:
		switch h {
		case North:
			return West, true
		case West:
			return South, true
		case South:
			return East, true
		case East:
			return North, true
		}
	case Right:
		switch h {
		case North:
			return East, true
		case East:
			return South, true
		case South:
			return West, true
		case West:
			return North, true
		}
	}
	return h, false
}

// Delta returns the one-cell offset of moving forward while facing h
func Delta(h Heading) (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Apply executes one command and returns the new state. Turning never fails;
// moving forward fails with ErrOutOfBounds when the target cell is off the
// plateau, leaving the receiver unchanged.
func (s RoverState) Apply(c Command, plateau Bound) (RoverState, error) {
	next, ok := NextHeading(s.Heading, c)
	if !ok {
		if !s.Heading.Valid() {
			return s, ErrInvalidHeading
		}
		return s, ErrInvalidMove
	}
	s.Heading = next

	if c != Forward {
		return s, nil
	}

	// Only the axis being travelled is checked, and before stepping so the
	// coordinate never overflows
	var blocked bool
	switch s.Heading {
	case North:
		blocked = s.Y >= plateau.MaxY
	case East:
		blocked = s.X >= plateau.MaxX
	case South:
		blocked = s.Y <= 0
	case West:
		blocked = s.X <= 0
	}
	if blocked {
		return s, ErrOutOfBounds
	}

	dx, dy := Delta(s.Heading)
	s.Position = Position{X: s.X + dx, Y: s.Y + dy}
	return s, nil
}

// Drive runs a cleaned command string from start. rover is the 1-based rover
// number used for records and errors. Every executed command is passed to
// observe when it is non-nil.
func Drive(rover int, start RoverState, commands string, plateau Bound, observe func(MoveRecord)) (RoverState, error) {
	current := start
	index := 0
	for _, r := range commands {
		index++
		c := Command(r)

		next, err := current.Apply(c, plateau)
		if err != nil {
			return current, &RunError{Err: err, Rover: rover, Step: index, At: current.Position}
		}

		if observe != nil {
			observe(MoveRecord{
				Rover:   rover,
				Index:   index,
				Command: c,
				From:    current,
				To:      next,
			})
		}
		current = next
	}
	return current, nil
}
