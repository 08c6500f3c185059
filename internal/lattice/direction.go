// Package lattice implements the heuristic engine for packing skew pieces
// into a fixed 5x5x5 lattice.
// This package is UI-agnostic and deterministic.
package lattice

import "fmt"

// Direction is one of the 24 orientations a piece can take.
// The first word names the primary axis, the second the axis of the bend.
type Direction uint8

const (
	ForwardUp Direction = iota
	ForwardRight
	ForwardDown
	ForwardLeft
	RightUp
	RightBack
	RightDown
	RightForward
	BackUp
	BackLeft
	BackDown
	BackRight
	LeftUp
	LeftForward
	LeftDown
	LeftBack
	UpBack
	UpRight
	UpForward
	UpLeft
	DownForward
	DownRight
	DownBack
	DownLeft

	// NumDirections is the number of valid orientations.
	NumDirections = 24
)

// Offset is a displacement relative to a piece's root node.
type Offset struct {
	DX, DY, DZ int
}

// directionNames is indexed by Direction.
var directionNames = [NumDirections]string{
	"ForwardUp", "ForwardRight", "ForwardDown", "ForwardLeft",
	"RightUp", "RightBack", "RightDown", "RightForward",
	"BackUp", "BackLeft", "BackDown", "BackRight",
	"LeftUp", "LeftForward", "LeftDown", "LeftBack",
	"UpBack", "UpRight", "UpForward", "UpLeft",
	"DownForward", "DownRight", "DownBack", "DownLeft",
}

// directionOffsets holds the four non-root node offsets of every orientation.
// Right handed coordinate system: Y is up, negative Z is forward.
var directionOffsets = [NumDirections][4]Offset{
	ForwardUp:    {{0, 0, -1}, {0, 0, -2}, {0, 1, -2}, {0, 1, -3}},
	ForwardRight: {{0, 0, -1}, {0, 0, -2}, {1, 0, -2}, {1, 0, -3}},
	ForwardDown:  {{0, 0, -1}, {0, 0, -2}, {0, -1, -2}, {0, -1, -3}},
	ForwardLeft:  {{0, 0, -1}, {0, 0, -2}, {-1, 0, -2}, {-1, 0, -3}},

	RightUp:      {{1, 0, 0}, {2, 0, 0}, {2, 1, 0}, {3, 1, 0}},
	RightBack:    {{1, 0, 0}, {2, 0, 0}, {2, 0, 1}, {3, 0, 1}},
	RightDown:    {{1, 0, 0}, {2, 0, 0}, {2, -1, 0}, {3, -1, 0}},
	RightForward: {{1, 0, 0}, {2, 0, 0}, {2, 0, -1}, {3, 0, -1}},

	BackUp:    {{0, 0, 1}, {0, 0, 2}, {0, 1, 2}, {0, 1, 3}},
	BackLeft:  {{0, 0, 1}, {0, 0, 2}, {-1, 0, 2}, {-1, 0, 3}},
	BackDown:  {{0, 0, 1}, {0, 0, 2}, {0, -1, 2}, {0, -1, 3}},
	BackRight: {{0, 0, 1}, {0, 0, 2}, {1, 0, 2}, {1, 0, 3}},

	LeftUp:      {{-1, 0, 0}, {-2, 0, 0}, {-2, 1, 0}, {-3, 1, 0}},
	LeftForward: {{-1, 0, 0}, {-2, 0, 0}, {-2, 0, -1}, {-3, 0, -1}},
	LeftDown:    {{-1, 0, 0}, {-2, 0, 0}, {-2, -1, 0}, {-3, -1, 0}},
	LeftBack:    {{-1, 0, 0}, {-2, 0, 0}, {-2, 0, 1}, {-3, 0, 1}},

	UpBack:    {{0, 1, 0}, {0, 2, 0}, {0, 2, 1}, {0, 3, 1}},
	UpRight:   {{0, 1, 0}, {0, 2, 0}, {1, 2, 0}, {1, 3, 0}},
	UpForward: {{0, 1, 0}, {0, 2, 0}, {0, 2, -1}, {0, 3, -1}},
	UpLeft:    {{0, 1, 0}, {0, 2, 0}, {-1, 2, 0}, {-1, 3, 0}},

	DownForward: {{0, -1, 0}, {0, -2, 0}, {0, -2, -1}, {0, -3, -1}},
	DownRight:   {{0, -1, 0}, {0, -2, 0}, {1, -2, 0}, {1, -3, 0}},
	DownBack:    {{0, -1, 0}, {0, -2, 0}, {0, -2, 1}, {0, -3, 1}},
	DownLeft:    {{0, -1, 0}, {0, -2, 0}, {-1, -2, 0}, {-1, -3, 0}},
}

// Directions returns all orientations in declaration order.
// Iteration order is load-bearing for tie-breaks during selection.
func Directions() []Direction {
	dirs := make([]Direction, NumDirections)
	for i := range dirs {
		dirs[i] = Direction(i)
	}
	return dirs
}

// Valid reports whether d is one of the 24 orientations.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Offsets returns the offsets of nodes 1..4 relative to the root.
func (d Direction) Offsets() [4]Offset {
	if !d.Valid() {
		return [4]Offset{}
	}
	return directionOffsets[d]
}

// String returns the name of the orientation.
func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return directionNames[d]
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
