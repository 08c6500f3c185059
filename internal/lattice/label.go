package lattice

// Label identifies the piece occupying a cell.
// The zero value means no piece; 1..MaxLabel map to 'A'..'Z'.
type Label uint8

const (
	NoLabel    Label = 0
	FirstLabel Label = 1
	MaxLabel   Label = 26
)

// Valid reports whether l names a placed piece.
func (l Label) Valid() bool {
	return l >= FirstLabel && l <= MaxLabel
}

// Rune returns the letter for l, or '.' if l is not a valid label.
func (l Label) Rune() rune {
	if !l.Valid() {
		return '.'
	}
	return 'A' + rune(l-FirstLabel)
}

// String returns the letter for l.
func (l Label) String() string {
	return string(l.Rune())
}

// ParseLabel converts a single uppercase letter to a Label.
func ParseLabel(s string) (Label, bool) {
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return NoLabel, false
	}
	return FirstLabel + Label(s[0]-'A'), true
}
