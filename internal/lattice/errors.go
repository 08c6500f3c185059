package lattice

import "errors"

var (
	// ErrInvalidPlacement is returned when a piece cannot be placed.
	ErrInvalidPlacement = errors.New("lattice: invalid placement")

	// ErrOutOfBounds is wrapped with ErrInvalidPlacement for pieces leaving the lattice.
	ErrOutOfBounds = errors.New("lattice: piece out of bounds")

	// ErrOccupied is wrapped with ErrInvalidPlacement for pieces covering an occupied cell.
	ErrOccupied = errors.New("lattice: cell already occupied")

	// ErrNoPlacement is returned by FindOptimal when no cell can root a piece.
	ErrNoPlacement = errors.New("lattice: no placement available")

	// ErrHeuristicUnderflow signals a heuristic decremented below zero.
	// It indicates a bookkeeping bug, never a user error.
	ErrHeuristicUnderflow = errors.New("lattice: heuristic underflow")

	// ErrLabelsExhausted is returned when every label has been used.
	ErrLabelsExhausted = errors.New("lattice: labels exhausted")
)
