package engine

import (
	"strings"
	"unicode"
)

// NormalizeHeading upper-cases a heading so "n" is accepted as North
func NormalizeHeading(h Heading) Heading {
	return Heading(unicode.ToUpper(rune(h)))
}

// CleanCommands upper-cases a command string and drops everything that is
// not a letter. Spaces, digits and punctuation disappear silently; stray
// letters are kept so validation can reject them.
func CleanCommands(commands string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return -1
		}
		return r
	}, strings.ToUpper(commands))
}

// ValidCommands reports whether every rune of a cleaned command string is
// L, R or M
func ValidCommands(commands string) bool {
	for _, c := range commands {
		switch Command(c) {
		case Left, Right, Forward:
		default:
			return false
		}
	}
	return true
}

// NormalizeBatch cleans every deployment and validates it against the
// plateau. Deployments are checked in order and the first failure aborts the
// whole batch. For each rover the checks run as: start inside the plateau,
// heading, then commands.
func NormalizeBatch(batch Batch, opts ...Option) (Batch, error) {
	o := buildOptions(opts)
	return normalizeBatch(batch, o)
}

func normalizeBatch(batch Batch, o Options) (Batch, error) {
	cleaned := Batch{
		Plateau: batch.Plateau,
		Rovers:  make([]Deployment, 0, len(batch.Rovers)),
	}

	for i, d := range batch.Rovers {
		d.Start.Heading = NormalizeHeading(d.Start.Heading)
		d.Commands = CleanCommands(d.Commands)

		if err := validateDeployment(batch.Plateau, d, o); err != nil {
			return Batch{}, &RunError{Err: err, Rover: i + 1, At: d.Start.Position}
		}
		cleaned.Rovers = append(cleaned.Rovers, d)
	}
	return cleaned, nil
}

func validateDeployment(plateau Bound, d Deployment, o Options) error {
	start := d.Start.Position
	if o.RejectNegativeStart {
		if !plateau.Contains(start) {
			return ErrStartOutOfBounds
		}
	} else if start.X > plateau.MaxX || start.Y > plateau.MaxY {
		return ErrStartOutOfBounds
	}
	if !d.Start.Heading.Valid() {
		return ErrInvalidHeading
	}
	if !ValidCommands(d.Commands) {
		return ErrInvalidMove
	}
	return nil
}
