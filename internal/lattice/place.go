package lattice

import "fmt"

// Place occupies the piece's five cells with the next label and retracts every
// candidate placement that now overlaps it.
// The lattice is left untouched if the piece is out of bounds, covers an
// occupied cell, or no label remains.
func (c *Cube) Place(p Piece) error {
	if !p.Direction().Valid() || !p.InBounds() {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPlacement, p, ErrOutOfBounds)
	}
	for _, n := range p.Nodes() {
		if cell := c.at(n); cell.Occupied {
			return fmt.Errorf("%w: %s: %w at %s by %s",
				ErrInvalidPlacement, p, ErrOccupied, n, cell.Label)
		}
	}
	if !c.next.Valid() {
		return ErrLabelsExhausted
	}

	for _, n := range p.Nodes() {
		cell := c.at(n)
		cell.Occupied = true
		cell.Label = c.next
	}
	c.next++
	c.placed = append(c.placed, p)

	if _, err := c.retract(p); err != nil {
		return err
	}
	return nil
}

// retract removes every available placement overlapping placed from both
// heuristics and from its root's available list.
// Returns the number of placements removed. Running it again for the same
// piece removes nothing.
func (c *Cube) retract(placed Piece) (int, error) {
	removed := 0
	var candidate Piece

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				root := &c.cells[x][y][z]
				if len(root.available) == 0 {
					continue
				}
				candidate.SetPosition(x, y, z)

				// Iterate a copy: removal shifts the live list.
				for _, d := range root.Available() {
					candidate.SetDirection(d)
					if !candidate.Overlaps(placed) {
						continue
					}

					if root.DirectionHeuristic == 0 {
						return removed, fmt.Errorf("%w: direction heuristic at %s",
							ErrHeuristicUnderflow, root.Position)
					}
					root.DirectionHeuristic--
					root.removeDirection(d)

					for _, n := range candidate.Nodes() {
						cell := c.at(n)
						if cell.PositionHeuristic == 0 {
							return removed, fmt.Errorf("%w: position heuristic at %s",
								ErrHeuristicUnderflow, n)
						}
						cell.PositionHeuristic--
					}
					removed++
				}
			}
		}
	}

	return removed, nil
}
