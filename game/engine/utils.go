package engine

// Occupant returns the index of the first settled rover standing on p, or -1
func Occupant(p Position, settled []RoverState) int {
	for i, s := range settled {
		if s.X == p.X && s.Y == p.Y {
			return i
		}
	}
	return -1
}

// CheckCollision fails with ErrCollision when final shares a cell with any
// rover that has already finished. Headings are ignored.
func CheckCollision(final RoverState, settled []RoverState) error {
	if Occupant(final.Position, settled) >= 0 {
		return ErrCollision
	}
	return nil
}
