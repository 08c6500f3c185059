package lattice

import "fmt"

// Cube is the 5x5x5 lattice together with its heuristic tables.
// Cells are indexed as cells[x][y][z].
type Cube struct {
	cells  [Size][Size][Size]Cell
	next   Label
	placed []Piece
}

// New creates a lattice with both heuristics computed from the full,
// unconstrained set of in-bounds placements.
func New() *Cube {
	c := &Cube{next: FirstLabel}

	EachNode(func(n Node) {
		c.cells[n.X][n.Y][n.Z] = newCell(n)
	})

	// Every cell is a candidate root for every orientation.
	EachNode(func(root Node) {
		rootCell := c.at(root)
		for _, d := range Directions() {
			p := NewPiece(root, d)
			if !p.InBounds() {
				continue
			}
			rootCell.DirectionHeuristic++
			rootCell.available = append(rootCell.available, d)
			for _, n := range p.Nodes() {
				c.at(n).PositionHeuristic++
			}
		}
	})

	return c
}

// at returns a pointer to the cell at n. n must be in bounds.
func (c *Cube) at(n Node) *Cell {
	return &c.cells[n.X][n.Y][n.Z]
}

// Cell returns a copy of the cell at n.
func (c *Cube) Cell(n Node) (Cell, error) {
	if !n.InBounds() {
		return Cell{}, fmt.Errorf("lattice: node %s out of bounds", n)
	}
	cell := *c.at(n)
	cell.available = cell.Available()
	return cell, nil
}

// NextLabel returns the label the next placed piece will receive.
func (c *Cube) NextLabel() Label {
	return c.next
}

// Placed returns the pieces placed so far, in placement order.
func (c *Cube) Placed() []Piece {
	out := make([]Piece, len(c.placed))
	copy(out, c.placed)
	return out
}

// OccupiedCount returns the number of occupied cells.
func (c *Cube) OccupiedCount() int {
	count := 0
	EachNode(func(n Node) {
		if c.at(n).Occupied {
			count++
		}
	})
	return count
}

// Labels returns the distinct labels present in the lattice, in label order.
func (c *Cube) Labels() []Label {
	var seen [MaxLabel + 1]bool
	EachNode(func(n Node) {
		if l := c.at(n).Label; l.Valid() {
			seen[l] = true
		}
	})

	var labels []Label
	for l := FirstLabel; l <= MaxLabel; l++ {
		if seen[l] {
			labels = append(labels, l)
		}
	}
	return labels
}

// Candidates returns the number of placements still available across all roots.
func (c *Cube) Candidates() int {
	total := 0
	EachNode(func(n Node) {
		total += len(c.at(n).available)
	})
	return total
}
