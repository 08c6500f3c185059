package lattice

// FindOptimal returns the most constrained placement.
//
// The root is the first cell, in x-y-z scan order, with the smallest positive
// direction heuristic. Among that cell's available orientations, in stored
// order, the chosen one is the first whose nodes include the smallest positive
// position heuristic. Returns ErrNoPlacement when no cell can root a piece.
func (c *Cube) FindOptimal() (Piece, error) {
	minDirection := 0
	found := false
	var best Piece

	EachNode(func(root Node) {
		cell := c.at(root)
		h := cell.DirectionHeuristic
		if h <= 0 || (found && h >= minDirection) {
			return
		}

		// A new minimum cell resets the position minimum.
		minPosition := 0
		chosen := false
		var candidate Piece
		candidate.SetPosition(root.X, root.Y, root.Z)
		for _, d := range cell.available {
			candidate.SetDirection(d)
			for _, n := range candidate.Nodes() {
				ph := c.at(n).PositionHeuristic
				if ph > 0 && (!chosen || ph < minPosition) {
					minPosition = ph
					chosen = true
					best = candidate
				}
			}
		}
		if !chosen {
			// Unreachable while the heuristics are consistent: every available
			// candidate counts towards the position heuristic of its own nodes.
			best = NewPiece(root, cell.available[0])
		}

		minDirection = h
		found = true
	})

	if !found {
		return Piece{}, ErrNoPlacement
	}
	return best, nil
}
