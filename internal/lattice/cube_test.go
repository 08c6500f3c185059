package lattice_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/skewcube/internal/lattice"
)

func TestNewCornerCell(t *testing.T) {
	c := lattice.New()

	cell, err := c.Cell(lattice.N(0, 0, 0))
	if err != nil {
		t.Fatalf("Cell() failed: %v", err)
	}

	if cell.DirectionHeuristic != 6 {
		t.Errorf("corner direction heuristic = %d, expected 6", cell.DirectionHeuristic)
	}
	if cell.PositionHeuristic != 12 {
		t.Errorf("corner position heuristic = %d, expected 12", cell.PositionHeuristic)
	}

	want := []lattice.Direction{
		lattice.RightUp, lattice.RightBack, lattice.BackUp,
		lattice.BackRight, lattice.UpBack, lattice.UpRight,
	}
	if got := cell.Available(); !slices.Equal(got, want) {
		t.Errorf("corner available = %v, expected %v", got, want)
	}
}

func TestNewKnownValues(t *testing.T) {
	c := lattice.New()
	dir := c.DirectionGrid()
	pos := c.PositionGrid()

	if dir[2][2][2] != 0 {
		t.Errorf("center direction heuristic = %d, expected 0", dir[2][2][2])
	}
	if pos[2][2][2] != 72 {
		t.Errorf("center position heuristic = %d, expected 72", pos[2][2][2])
	}

	edgeDir := [lattice.Size]int{6, 8, 6, 8, 6}
	edgePos := [lattice.Size]int{12, 22, 24, 22, 12}
	if dir[0][0] != edgeDir {
		t.Errorf("edge direction row = %v, expected %v", dir[0][0], edgeDir)
	}
	if pos[0][0] != edgePos {
		t.Errorf("edge position row = %v, expected %v", pos[0][0], edgePos)
	}

	if c.Candidates() != 960 {
		t.Errorf("candidates = %d, expected 960", c.Candidates())
	}
}

func TestNewMatchesEnumeration(t *testing.T) {
	c := lattice.New()
	dir := c.DirectionGrid()
	pos := c.PositionGrid()

	var wantDir, wantPos lattice.Grid[int]
	lattice.EachNode(func(root lattice.Node) {
		for _, d := range lattice.Directions() {
			p := lattice.NewPiece(root, d)
			if !p.InBounds() {
				continue
			}
			wantDir[root.X][root.Y][root.Z]++
			for _, n := range p.Nodes() {
				wantPos[n.X][n.Y][n.Z]++
			}
		}
	})

	maxDir, sumPos := 0, 0
	lattice.EachNode(func(n lattice.Node) {
		if dir.At(n) != wantDir.At(n) {
			t.Errorf("%v: direction heuristic %d, expected %d", n, dir.At(n), wantDir.At(n))
		}
		if pos.At(n) != wantPos.At(n) {
			t.Errorf("%v: position heuristic %d, expected %d", n, pos.At(n), wantPos.At(n))
		}
		maxDir = max(maxDir, dir.At(n))
		sumPos += pos.At(n)
	})

	if maxDir != lattice.MaxAvailable {
		t.Errorf("max direction heuristic = %d, expected %d", maxDir, lattice.MaxAvailable)
	}
	// Every placement covers five cells.
	if sumPos != lattice.PieceNodes*c.Candidates() {
		t.Errorf("position sum = %d, expected %d", sumPos, lattice.PieceNodes*c.Candidates())
	}
	if err := c.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() on fresh lattice: %v", err)
	}
}

func TestFindOptimalFresh(t *testing.T) {
	c := lattice.New()

	p, err := c.FindOptimal()
	if err != nil {
		t.Fatalf("FindOptimal() failed: %v", err)
	}
	if p.Root() != lattice.N(0, 2, 2) || p.Direction() != lattice.RightUp {
		t.Errorf("FindOptimal() = %v, expected RightUp@(0,2,2)", p)
	}

	again, err := c.FindOptimal()
	if err != nil {
		t.Fatalf("FindOptimal() failed: %v", err)
	}
	if again != p {
		t.Errorf("FindOptimal() not deterministic: %v then %v", p, again)
	}
}

func TestPlaceSingle(t *testing.T) {
	c := lattice.New()

	p, err := c.FindOptimal()
	if err != nil {
		t.Fatalf("FindOptimal() failed: %v", err)
	}
	if err := c.Place(p); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	if c.OccupiedCount() != 5 {
		t.Errorf("occupied = %d, expected 5", c.OccupiedCount())
	}
	labels := c.Labels()
	if len(labels) != 1 || labels[0] != lattice.FirstLabel {
		t.Errorf("labels = %v, expected [A]", labels)
	}
	for _, n := range p.Nodes() {
		cell, _ := c.Cell(n)
		if !cell.Occupied || cell.Label != lattice.FirstLabel {
			t.Errorf("%v: occupied=%v label=%v", n, cell.Occupied, cell.Label)
		}
		if cell.DirectionHeuristic != 0 || cell.PositionHeuristic != 0 {
			t.Errorf("%v: occupied cell keeps heuristics %d/%d",
				n, cell.DirectionHeuristic, cell.PositionHeuristic)
		}
	}
	if c.NextLabel() != lattice.FirstLabel+1 {
		t.Errorf("next label = %v, expected B", c.NextLabel())
	}
	if err := c.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants(): %v", err)
	}
}

func TestPlaceRejectsInvalid(t *testing.T) {
	c := lattice.New()
	first := lattice.NewPiece(lattice.N(0, 2, 2), lattice.RightUp)
	if err := c.Place(first); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	before := c.Snapshot()

	tests := []struct {
		name  string
		piece lattice.Piece
		cause error
	}{
		{"out of bounds", lattice.NewPiece(lattice.N(0, 0, 0), lattice.ForwardUp), lattice.ErrOutOfBounds},
		{"overlaps placed", lattice.NewPiece(lattice.N(2, 0, 2), lattice.UpBack), lattice.ErrOccupied},
		{"same piece twice", first, lattice.ErrOccupied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Place(tc.piece)
			if !errors.Is(err, lattice.ErrInvalidPlacement) {
				t.Errorf("expected ErrInvalidPlacement, got %v", err)
			}
			if !errors.Is(err, tc.cause) {
				t.Errorf("expected %v, got %v", tc.cause, err)
			}
			if c.Snapshot() != before {
				t.Error("rejected placement mutated the lattice")
			}
		})
	}
}

func TestGreedyFourPieces(t *testing.T) {
	c := lattice.New()

	expected := []lattice.Piece{
		lattice.NewPiece(lattice.N(0, 2, 2), lattice.RightUp),
		lattice.NewPiece(lattice.N(0, 4, 2), lattice.RightBack),
		lattice.NewPiece(lattice.N(0, 4, 3), lattice.DownRight),
		lattice.NewPiece(lattice.N(0, 4, 4), lattice.RightDown),
	}

	for i, want := range expected {
		p, err := c.FindOptimal()
		if err != nil {
			t.Fatalf("step %d: FindOptimal() failed: %v", i, err)
		}
		if p != want {
			t.Errorf("step %d: selected %v, expected %v", i, p, want)
		}
		if err := c.Place(p); err != nil {
			t.Fatalf("step %d: Place() failed: %v", i, err)
		}
		if err := c.CheckInvariants(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if c.OccupiedCount() != 20 {
		t.Errorf("occupied = %d, expected 20", c.OccupiedCount())
	}
	labels := c.Labels()
	if len(labels) != 4 || labels[0].String() != "A" || labels[3].String() != "D" {
		t.Errorf("labels = %v, expected A..D", labels)
	}

	placed := c.Placed()
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			if placed[i].Overlaps(placed[j]) {
				t.Errorf("pieces %d and %d overlap", i, j)
			}
		}
	}
}

func TestAvailableNeverTouchesOccupied(t *testing.T) {
	c := lattice.New()
	for i := 0; i < 6; i++ {
		p, err := c.FindOptimal()
		if err != nil {
			t.Fatalf("FindOptimal() failed: %v", err)
		}
		if err := c.Place(p); err != nil {
			t.Fatalf("Place() failed: %v", err)
		}
	}

	lattice.EachNode(func(root lattice.Node) {
		cell, _ := c.Cell(root)
		for _, d := range cell.Available() {
			p := lattice.NewPiece(root, d)
			if !p.InBounds() {
				t.Errorf("%v lists out-of-bounds %v", root, d)
				continue
			}
			for _, n := range p.Nodes() {
				if covered, _ := c.Cell(n); covered.Occupied {
					t.Errorf("%v lists %v covering occupied %v", root, d, n)
				}
			}
		}
	})
}

func TestRunToExhaustion(t *testing.T) {
	c := lattice.New()

	placed := 0
	for {
		p, err := c.FindOptimal()
		if errors.Is(err, lattice.ErrNoPlacement) {
			break
		}
		if err != nil {
			t.Fatalf("FindOptimal() failed: %v", err)
		}
		if err := c.Place(p); err != nil {
			t.Fatalf("Place() failed after %d pieces: %v", placed, err)
		}
		placed++
		if placed > int(lattice.MaxLabel) {
			t.Fatal("greedy loop did not terminate")
		}
	}

	if placed != 18 {
		t.Errorf("placed %d pieces, expected 18", placed)
	}
	if c.OccupiedCount() != 90 {
		t.Errorf("occupied = %d, expected 90", c.OccupiedCount())
	}
	if c.Candidates() != 0 {
		t.Errorf("candidates left = %d", c.Candidates())
	}
	if err := c.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestCellOutOfBounds(t *testing.T) {
	c := lattice.New()
	if _, err := c.Cell(lattice.N(5, 0, 0)); err == nil {
		t.Error("expected error for out of bounds cell")
	}
}
