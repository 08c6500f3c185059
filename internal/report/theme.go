package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skewcube/internal/lattice"
)

// Theme holds the styles used for grid output.
type Theme struct {
	Title   lipgloss.Style
	Layer   lipgloss.Style
	Zero    lipgloss.Style
	Value   lipgloss.Style
	Empty   lipgloss.Style
	Summary lipgloss.Style
	Pieces  []lipgloss.Style // cycled by label
}

// pieceColors are ANSI colours assigned to labels in order.
var pieceColors = []string{"9", "10", "11", "12", "13", "14", "208", "1", "2", "3", "4", "5", "6"}

// DefaultTheme returns the colour theme.
func DefaultTheme() Theme {
	t := Theme{
		Title:   lipgloss.NewStyle().Bold(true).Underline(true),
		Layer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Zero:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Value:   lipgloss.NewStyle(),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
	for _, c := range pieceColors {
		t.Pieces = append(t.Pieces, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c)))
	}
	return t
}

// PlainTheme returns a theme that applies no styling.
func PlainTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle(),
		Layer:   lipgloss.NewStyle(),
		Zero:    lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Empty:   lipgloss.NewStyle(),
		Summary: lipgloss.NewStyle(),
		Pieces:  []lipgloss.Style{lipgloss.NewStyle()},
	}
}

// PieceStyle returns the style for a label.
func (t Theme) PieceStyle(l lattice.Label) lipgloss.Style {
	if !l.Valid() {
		return t.Empty
	}
	return t.Pieces[int(l-lattice.FirstLabel)%len(t.Pieces)]
}
