package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/skewcube/internal/lattice"
)

func TestRunFourPieces(t *testing.T) {
	res, err := New(nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(res.Steps) != Pieces {
		t.Fatalf("expected %d steps, got %d", Pieces, len(res.Steps))
	}
	if res.Occupied != 20 {
		t.Errorf("occupied = %d, expected 20", res.Occupied)
	}

	letters := ""
	for i, s := range res.Steps {
		if s.Index != i+1 {
			t.Errorf("step %d has index %d", i, s.Index)
		}
		letters += s.Label.String()
	}
	if letters != "ABCD" {
		t.Errorf("labels = %q, expected ABCD", letters)
	}

	pieces := res.Pieces()
	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			if pieces[i].Overlaps(pieces[j]) {
				t.Errorf("pieces %v and %v overlap", pieces[i], pieces[j])
			}
		}
	}

	if err := res.Cube.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestRunDeterministic(t *testing.T) {
	a, err := New(nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := New(nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if a.Final() != b.Final() {
		t.Error("two runs produced different grids")
	}
	for i := range a.Steps {
		if a.Steps[i].Piece != b.Steps[i].Piece {
			t.Errorf("step %d: %v vs %v", i+1, a.Steps[i].Piece, b.Steps[i].Piece)
		}
	}
}

func TestSnapshots(t *testing.T) {
	res, err := New(nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.SnapshotAt(0) != lattice.New().Snapshot() {
		t.Error("snapshot 0 should equal a fresh lattice")
	}
	if res.SnapshotAt(Pieces) != res.Final() {
		t.Error("last snapshot should equal Final()")
	}
	if res.SnapshotAt(Pieces+3) != res.Final() {
		t.Error("snapshot past the end should clamp to Final()")
	}

	// Heuristics only decrease between steps.
	for i := 1; i <= Pieces; i++ {
		prev, cur := res.SnapshotAt(i-1), res.SnapshotAt(i)
		lattice.EachNode(func(n lattice.Node) {
			if cur.Direction.At(n) > prev.Direction.At(n) {
				t.Errorf("step %d %v: direction heuristic grew", i, n)
			}
			if cur.Position.At(n) > prev.Position.At(n) {
				t.Errorf("step %d %v: position heuristic grew", i, n)
			}
		})
	}
}

func TestRunToExhaustion(t *testing.T) {
	res, err := New(nil).run(context.Background(), int(lattice.MaxLabel))
	if !errors.Is(err, lattice.ErrNoPlacement) {
		t.Fatalf("expected ErrNoPlacement, got %v", err)
	}
	if len(res.Steps) != 18 {
		t.Errorf("expected 18 steps before exhaustion, got %d", len(res.Steps))
	}
	if res.Occupied != 90 {
		t.Errorf("occupied = %d, expected 90", res.Occupied)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(res.Steps) != 0 {
		t.Errorf("expected no steps, got %d", len(res.Steps))
	}
}

func TestReplay(t *testing.T) {
	s := New(nil)
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	replayed, err := s.Replay(res.Pieces())
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if replayed.Final() != res.Final() {
		t.Error("replay produced different grids")
	}
	if replayed.Occupied != res.Occupied {
		t.Errorf("replay occupied = %d, expected %d", replayed.Occupied, res.Occupied)
	}
}

func TestReplayRejectsOverlap(t *testing.T) {
	p := lattice.NewPiece(lattice.N(0, 2, 2), lattice.RightUp)

	res, err := New(nil).Replay([]lattice.Piece{p, p})
	if !errors.Is(err, lattice.ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement, got %v", err)
	}
	if len(res.Steps) != 1 {
		t.Errorf("expected the first step to be kept, got %d steps", len(res.Steps))
	}
}
