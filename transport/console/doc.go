// Package console provides the interactive terminal front end for the Mars Rover Simulator.
//
// Input is collected line by line until the sentinel line (by default "d").
// The first line is the plateau; after that each rover takes two lines, its
// command string and then its start position:
//
//	5 5
//	LMLMLMLMM
//	1 2 N
//	MMRMMRMRRM
//	3 3 E
//	d
//
// Results are printed one rover per line as "x y H". When the run fails
// nothing is printed but the error kind and a hint.
package console
