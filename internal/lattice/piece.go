package lattice

import "fmt"

// PieceNodes is the number of nodes in every piece.
const PieceNodes = 5

// Piece is a rigid five-node shape anchored at a root and oriented by a
// Direction. Nodes are recomputed whenever the root or direction changes.
type Piece struct {
	nodes     [PieceNodes]Node
	direction Direction
}

// NewPiece creates a piece rooted at root with orientation d.
func NewPiece(root Node, d Direction) Piece {
	p := Piece{direction: d}
	p.nodes[0] = root
	p.update()
	return p
}

// SetPosition moves the root to (x, y, z).
func (p *Piece) SetPosition(x, y, z int) {
	p.nodes[0] = Node{X: x, Y: y, Z: z}
	p.update()
}

// SetDirection changes the orientation, keeping the root.
func (p *Piece) SetDirection(d Direction) {
	p.direction = d
	p.update()
}

func (p *Piece) update() {
	root := p.nodes[0]
	offsets := p.direction.Offsets()
	for i, o := range offsets {
		p.nodes[i+1] = root.Add(o)
	}
}

// Root returns node 0.
func (p Piece) Root() Node {
	return p.nodes[0]
}

// Direction returns the piece's orientation.
func (p Piece) Direction() Direction {
	return p.direction
}

// Nodes returns the absolute positions of all five nodes, root first.
func (p Piece) Nodes() [PieceNodes]Node {
	return p.nodes
}

// InBounds returns true if all five nodes lie inside the lattice.
func (p Piece) InBounds() bool {
	for _, n := range p.nodes {
		if !n.InBounds() {
			return false
		}
	}
	return true
}

// Overlaps returns true if any node of p equals any node of other.
func (p Piece) Overlaps(other Piece) bool {
	for _, n := range p.nodes {
		for _, m := range other.nodes {
			if n == m {
				return true
			}
		}
	}
	return false
}

// Covers returns true if n is one of the piece's nodes.
func (p Piece) Covers(n Node) bool {
	for _, m := range p.nodes {
		if m == n {
			return true
		}
	}
	return false
}

// String returns a string representation of the piece.
func (p Piece) String() string {
	return fmt.Sprintf("%s@%s", p.direction, p.nodes[0])
}
