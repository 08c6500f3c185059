package lattice

import "fmt"

// Size is the edge length of the lattice.
const Size = 5

// NumCells is the number of cells in the lattice.
const NumCells = Size * Size * Size

// Node is a discrete coordinate in the lattice.
type Node struct {
	X int
	Y int
	Z int
}

// N is a convenience constructor for Node.
func N(x, y, z int) Node {
	return Node{X: x, Y: y, Z: z}
}

// String returns a string representation of the node.
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d,%d)", n.X, n.Y, n.Z)
}

// Add returns the node displaced by o.
func (n Node) Add(o Offset) Node {
	return Node{X: n.X + o.DX, Y: n.Y + o.DY, Z: n.Z + o.DZ}
}

// InBounds returns true if every component lies in [0, Size-1].
func (n Node) InBounds() bool {
	return n.X >= 0 && n.X < Size &&
		n.Y >= 0 && n.Y < Size &&
		n.Z >= 0 && n.Z < Size
}

// EachNode calls fn for every lattice coordinate, x outermost and z innermost.
func EachNode(fn func(n Node)) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				fn(Node{X: x, Y: y, Z: z})
			}
		}
	}
}
