package engine

import (
	"errors"
	"testing"
)

func TestCleanCommands(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"LMLMLMLMM", "LMLMLMLMM"},
		{"L M LML MLM  M", "LMLMLMLMM"},
		{"LMLM%LM4LM'M", "LMLMLMLMM"},
		{"LMlMLmLMM", "LMLMLMLMM"},
		{"labc", "LABC"},
		{"123 !?", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCommands(tt.input); got != tt.expected {
			t.Errorf("CleanCommands(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestValidCommands(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"LRM", true},
		{"MMMMM", true},
		{"LABC", false},
		{"lrm", false},
		{"L M", false},
	}

	for _, tt := range tests {
		if got := ValidCommands(tt.input); got != tt.expected {
			t.Errorf("ValidCommands(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		input    Heading
		expected Heading
	}{
		{'n', North},
		{'e', East},
		{'s', South},
		{'w', West},
		{'N', North},
		{'x', 'X'},
	}

	for _, tt := range tests {
		if got := NormalizeHeading(tt.input); got != tt.expected {
			t.Errorf("NormalizeHeading(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeBatch_Cleans(t *testing.T) {
	batch := Batch{
		Plateau: Bound{5, 5},
		Rovers: []Deployment{
			{Start: RoverState{Position{1, 2}, 'n'}, Commands: "l m, r"},
		},
	}

	cleaned, err := NormalizeBatch(batch)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cleaned.Rovers[0].Start.Heading != North {
		t.Errorf("Expected heading N, got %s", cleaned.Rovers[0].Start.Heading)
	}
	if cleaned.Rovers[0].Commands != "LMR" {
		t.Errorf("Expected commands LMR, got %q", cleaned.Rovers[0].Commands)
	}

	// The input batch is left untouched
	if batch.Rovers[0].Commands != "l m, r" {
		t.Errorf("Input batch was modified: %q", batch.Rovers[0].Commands)
	}
}

func TestNormalizeBatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		plateau Bound
		start   RoverState
		cmds    string
		wantErr error
	}{
		{"y too large", Bound{2, 2}, RoverState{Position{1, 3}, North}, "LRM", ErrStartOutOfBounds},
		{"x too large", Bound{2, 2}, RoverState{Position{3, 1}, North}, "LRM", ErrStartOutOfBounds},
		{"x and y too large", Bound{2, 2}, RoverState{Position{3, 3}, North}, "LRM", ErrStartOutOfBounds},
		{"bad heading", Bound{5, 5}, RoverState{Position{1, 2}, 'X'}, "LMLMLMLMM", ErrInvalidHeading},
		{"bad move", Bound{5, 5}, RoverState{Position{1, 2}, North}, "LABC", ErrInvalidMove},
		// Bounds are checked before the heading, the heading before the moves
		{"bounds first", Bound{2, 2}, RoverState{Position{3, 3}, 'X'}, "LABC", ErrStartOutOfBounds},
		{"heading before moves", Bound{5, 5}, RoverState{Position{1, 1}, 'X'}, "LABC", ErrInvalidHeading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := Batch{Plateau: tt.plateau, Rovers: []Deployment{{Start: tt.start, Commands: tt.cmds}}}
			_, err := NormalizeBatch(batch)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeBatch_FailFast(t *testing.T) {
	batch := Batch{
		Plateau: Bound{5, 5},
		Rovers: []Deployment{
			{Start: RoverState{Position{1, 2}, North}, Commands: "M"},
			{Start: RoverState{Position{1, 2}, 'Q'}, Commands: "M"},
			{Start: RoverState{Position{9, 9}, North}, Commands: "M"},
		},
	}

	_, err := NormalizeBatch(batch)
	if !errors.Is(err, ErrInvalidHeading) {
		t.Fatalf("Expected the second rover's ErrInvalidHeading, got %v", err)
	}

	var runErr *RunError
	if !errors.As(err, &runErr) || runErr.Rover != 2 {
		t.Errorf("Expected failure attributed to rover 2, got %v", err)
	}
}

func TestNormalizeBatch_NegativeStart(t *testing.T) {
	batch := Batch{
		Plateau: Bound{5, 5},
		Rovers:  []Deployment{{Start: RoverState{Position{-1, 2}, North}, Commands: "M"}},
	}

	// Only the upper bound is checked by default
	if _, err := NormalizeBatch(batch); err != nil {
		t.Errorf("Expected negative start to pass by default, got %v", err)
	}

	if _, err := NormalizeBatch(batch, WithNegativeStartCheck(true)); !errors.Is(err, ErrStartOutOfBounds) {
		t.Errorf("Expected ErrStartOutOfBounds with the check enabled, got %v", err)
	}
}

func TestNormalizeBatch_NegativeStartCheckKeepsUpperBound(t *testing.T) {
	for _, start := range []Position{{6, 0}, {0, 6}, {-1, 6}, {0, -1}} {
		batch := Batch{
			Plateau: Bound{5, 5},
			Rovers:  []Deployment{{Start: RoverState{start, North}, Commands: ""}},
		}
		if _, err := NormalizeBatch(batch, WithNegativeStartCheck(true)); !errors.Is(err, ErrStartOutOfBounds) {
			t.Errorf("Expected ErrStartOutOfBounds for %s, got %v", start, err)
		}
	}

	batch := Batch{
		Plateau: Bound{5, 5},
		Rovers:  []Deployment{{Start: RoverState{Position{5, 5}, North}, Commands: ""}},
	}
	if _, err := NormalizeBatch(batch, WithNegativeStartCheck(true)); err != nil {
		t.Errorf("Expected the corner (5,5) to be accepted, got %v", err)
	}
}
