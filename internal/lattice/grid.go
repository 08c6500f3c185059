package lattice

import "fmt"

// Grid is a value per lattice cell, indexed [x][y][z].
type Grid[T any] [Size][Size][Size]T

// At returns the value at n. n must be in bounds.
func (g Grid[T]) At(n Node) T {
	return g[n.X][n.Y][n.Z]
}

// Snapshot is a copy of the three grids reported to callers.
type Snapshot struct {
	Direction Grid[int]
	Position  Grid[int]
	Labels    Grid[Label]
}

// DirectionGrid returns the direction heuristic of every cell.
func (c *Cube) DirectionGrid() Grid[int] {
	var g Grid[int]
	EachNode(func(n Node) {
		g[n.X][n.Y][n.Z] = c.at(n).DirectionHeuristic
	})
	return g
}

// PositionGrid returns the position heuristic of every cell.
func (c *Cube) PositionGrid() Grid[int] {
	var g Grid[int]
	EachNode(func(n Node) {
		g[n.X][n.Y][n.Z] = c.at(n).PositionHeuristic
	})
	return g
}

// LabelGrid returns the occupying label of every cell.
func (c *Cube) LabelGrid() Grid[Label] {
	var g Grid[Label]
	EachNode(func(n Node) {
		g[n.X][n.Y][n.Z] = c.at(n).Label
	})
	return g
}

// Snapshot captures all three grids.
func (c *Cube) Snapshot() Snapshot {
	return Snapshot{
		Direction: c.DirectionGrid(),
		Position:  c.PositionGrid(),
		Labels:    c.LabelGrid(),
	}
}

// CheckInvariants recomputes both heuristics from the occupancy alone and
// returns an error describing the first cell that disagrees.
func (c *Cube) CheckInvariants() error {
	var position Grid[int]

	var err error
	EachNode(func(root Node) {
		if err != nil {
			return
		}
		cell := c.at(root)
		if cell.DirectionHeuristic != len(cell.available) {
			err = fmt.Errorf("lattice: %s direction heuristic %d, %d available",
				root, cell.DirectionHeuristic, len(cell.available))
			return
		}

		want := 0
		for _, d := range Directions() {
			p := NewPiece(root, d)
			if !p.InBounds() || c.coversOccupied(p) {
				if cell.HasDirection(d) {
					err = fmt.Errorf("lattice: %s lists unplaceable %s", root, d)
					return
				}
				continue
			}
			if !cell.HasDirection(d) {
				err = fmt.Errorf("lattice: %s is missing placeable %s", root, d)
				return
			}
			want++
			for _, n := range p.Nodes() {
				position[n.X][n.Y][n.Z]++
			}
		}
		if want != cell.DirectionHeuristic {
			err = fmt.Errorf("lattice: %s direction heuristic %d, want %d",
				root, cell.DirectionHeuristic, want)
		}
	})
	if err != nil {
		return err
	}

	EachNode(func(n Node) {
		if err == nil && position.At(n) != c.at(n).PositionHeuristic {
			err = fmt.Errorf("lattice: %s position heuristic %d, want %d",
				n, c.at(n).PositionHeuristic, position.At(n))
		}
	})
	return err
}

func (c *Cube) coversOccupied(p Piece) bool {
	for _, n := range p.Nodes() {
		if c.at(n).Occupied {
			return true
		}
	}
	return false
}
