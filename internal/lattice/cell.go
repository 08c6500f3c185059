package lattice

import "slices"

// MaxAvailable is the largest number of orientations any cell can root in a
// 5x5x5 lattice. It sizes the initial available list; it is not a hard cap.
const MaxAvailable = 12

// Cell holds the bookkeeping for one lattice coordinate.
type Cell struct {
	Position Node
	Occupied bool
	Label    Label

	// DirectionHeuristic counts the orientations still placeable with this
	// cell as root. It always equals len(available).
	DirectionHeuristic int

	// PositionHeuristic counts the still-placeable pieces covering this cell.
	PositionHeuristic int

	available []Direction
}

func newCell(n Node) Cell {
	return Cell{
		Position:  n,
		available: make([]Direction, 0, MaxAvailable),
	}
}

// Available returns a copy of the orientations still usable from this cell,
// in the order they were enumerated.
func (c *Cell) Available() []Direction {
	return slices.Clone(c.available)
}

// HasDirection reports whether d is still usable from this cell.
func (c *Cell) HasDirection(d Direction) bool {
	return slices.Contains(c.available, d)
}

// removeDirection drops d from the available list, preserving order.
// Returns false if d was not present.
func (c *Cell) removeDirection(d Direction) bool {
	i := slices.Index(c.available, d)
	if i < 0 {
		return false
	}
	c.available = slices.Delete(c.available, i, i+1)
	return true
}
