// Package solver drives the greedy placement loop over a lattice and records
// every step for reporting, storage and replay.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skewcube/internal/lattice"
)

// Pieces is the number of pieces every run places.
const Pieces = 4

// Step records one placement.
type Step struct {
	Index    int // 1-based
	Label    lattice.Label
	Piece    lattice.Piece
	Snapshot lattice.Snapshot // grids after the placement
}

// Result is the outcome of a run.
type Result struct {
	Initial  lattice.Snapshot // grids before any placement
	Steps    []Step
	Occupied int
	Cube     *lattice.Cube
}

// Final returns the grids after the last step.
func (r *Result) Final() lattice.Snapshot {
	if len(r.Steps) == 0 {
		return r.Initial
	}
	return r.Steps[len(r.Steps)-1].Snapshot
}

// SnapshotAt returns the grids after step i, where 0 is the fresh lattice.
func (r *Result) SnapshotAt(i int) lattice.Snapshot {
	if i <= 0 || len(r.Steps) == 0 {
		return r.Initial
	}
	if i > len(r.Steps) {
		i = len(r.Steps)
	}
	return r.Steps[i-1].Snapshot
}

// Pieces returns the placed pieces in order.
func (r *Result) Pieces() []lattice.Piece {
	pieces := make([]lattice.Piece, len(r.Steps))
	for i, s := range r.Steps {
		pieces[i] = s.Piece
	}
	return pieces
}

// Solver runs the greedy loop.
type Solver struct {
	logger *log.Logger
}

// New creates a solver. A nil logger discards output.
func New(logger *log.Logger) *Solver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Solver{logger: logger}
}

// Run places Pieces pieces on a fresh lattice.
// On failure the partial result is returned alongside the error.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	return s.run(ctx, Pieces)
}

func (s *Solver) run(ctx context.Context, pieces int) (*Result, error) {
	cube := lattice.New()
	res := &Result{Initial: cube.Snapshot(), Cube: cube}

	s.logger.Debug("lattice initialized", "candidates", cube.Candidates())

	for i := 1; i <= pieces; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		p, err := cube.FindOptimal()
		if err != nil {
			if errors.Is(err, lattice.ErrNoPlacement) {
				s.logger.Warn("no placement available", "step", i)
			}
			return res, fmt.Errorf("step %d: %w", i, err)
		}

		if err := s.place(cube, res, i, p); err != nil {
			return res, err
		}
	}

	s.logger.Info("run complete",
		"pieces", len(res.Steps),
		"occupied", res.Occupied,
		"candidates", cube.Candidates())
	return res, nil
}

func (s *Solver) place(cube *lattice.Cube, res *Result, i int, p lattice.Piece) error {
	label := cube.NextLabel()
	if err := cube.Place(p); err != nil {
		s.logger.Error("placement rejected", "step", i, "piece", p, "error", err)
		return fmt.Errorf("step %d: %w", i, err)
	}

	res.Steps = append(res.Steps, Step{
		Index:    i,
		Label:    label,
		Piece:    p,
		Snapshot: cube.Snapshot(),
	})
	res.Occupied = cube.OccupiedCount()

	s.logger.Debug("placed piece",
		"step", i,
		"label", label,
		"root", p.Root(),
		"direction", p.Direction(),
		"candidates", cube.Candidates())
	return nil
}

// Replay rebuilds a result by placing the given pieces in order.
// It is used to restore stored runs; an inconsistent sequence is an error.
func (s *Solver) Replay(pieces []lattice.Piece) (*Result, error) {
	cube := lattice.New()
	res := &Result{Initial: cube.Snapshot(), Cube: cube}

	for i, p := range pieces {
		if err := s.place(cube, res, i+1, p); err != nil {
			return res, fmt.Errorf("replay: %w", err)
		}
	}
	return res, nil
}
