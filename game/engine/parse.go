package engine

import (
	"fmt"
	"strconv"
	"unicode"
)

// ParsePlateau reads the plateau's upper-right corner from a noisy line.
// Every non-digit is dropped and the first two remaining digits are taken as
// (max_x, max_y), so "5 5", "55" and "#5$5..;" all give (5,5).
//
// Each digit is a whole coordinate: "10 10" reads as (1,0). Use
// ParsePlateauMultiDigit for larger plateaus.
func ParsePlateau(line string) (Bound, error) {
	var digits []int
	for _, r := range line {
		if isASCIIDigit(r) {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) < 2 {
		return Bound{}, ErrInvalidPlateau
	}
	return Bound{MaxX: digits[0], MaxY: digits[1]}, nil
}

// ParsePlateauMultiDigit reads the first two runs of consecutive digits as
// (max_x, max_y), so "10 12" gives (10,12).
func ParsePlateauMultiDigit(line string) (Bound, error) {
	var numbers []int
	run := ""
	flush := func() error {
		if run == "" {
			return nil
		}
		n, err := strconv.Atoi(run)
		run = ""
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPlateau, err)
		}
		numbers = append(numbers, n)
		return nil
	}

	for _, r := range line {
		if isASCIIDigit(r) {
			run += string(r)
			continue
		}
		if err := flush(); err != nil {
			return Bound{}, err
		}
	}
	if err := flush(); err != nil {
		return Bound{}, err
	}

	if len(numbers) < 2 {
		return Bound{}, ErrInvalidPlateau
	}
	return Bound{MaxX: numbers[0], MaxY: numbers[1]}, nil
}

// ParseRoverBatch pairs up rover lines. Lines are consumed two at a time as
// (command string, start position); there must be at least one pair.
// Command strings are passed through untouched, NormalizeBatch cleans them.
func ParseRoverBatch(plateau Bound, lines []string) (Batch, error) {
	if len(lines) == 0 || len(lines)%2 != 0 {
		return Batch{}, ErrInvalidNumberOfCommandsForRover
	}

	batch := Batch{
		Plateau: plateau,
		Rovers:  make([]Deployment, 0, len(lines)/2),
	}
	for i := 0; i < len(lines); i += 2 {
		start, err := ParseStart(lines[i+1])
		if err != nil {
			return Batch{}, fmt.Errorf("rover %d: %w", i/2+1, err)
		}
		batch.Rovers = append(batch.Rovers, Deployment{Start: start, Commands: lines[i]})
	}
	return batch, nil
}

// ParseStart reads "x y H" from a noisy line. Only letters and numeric
// characters are kept; exactly three must remain. Non-ASCII numerals such as
// '²' count toward the three but are not usable coordinates. The heading is
// not validated here.
func ParseStart(line string) (RoverState, error) {
	var kept []rune
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			kept = append(kept, r)
		}
	}

	if len(kept) != 3 {
		return RoverState{}, ErrInvalidStartPosition
	}
	if !isASCIIDigit(kept[0]) || !isASCIIDigit(kept[1]) {
		return RoverState{}, ErrInvalidStartMove
	}

	return RoverState{
		Position: Position{X: int(kept[0] - '0'), Y: int(kept[1] - '0')},
		Heading:  Heading(kept[2]),
	}, nil
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
