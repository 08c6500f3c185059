// Package report formats lattice grids and solver runs as text.
// Grids are printed as one block per x layer; each block has a row per y and
// a column per z.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skewcube/internal/config"
	"github.com/vovakirdan/skewcube/internal/lattice"
	"github.com/vovakirdan/skewcube/internal/solver"
)

// layerGap separates layers laid out side by side.
const layerGap = 3

// Renderer turns snapshots into printable text.
type Renderer struct {
	Theme Theme
	// Width is the available terminal width. Layers are placed side by side
	// when they fit, stacked otherwise. Zero means stacked.
	Width int
}

// NewRenderer creates a renderer. color selects DefaultTheme over PlainTheme.
func NewRenderer(color bool, width int) *Renderer {
	theme := PlainTheme()
	if color {
		theme = DefaultTheme()
	}
	return &Renderer{Theme: theme, Width: width}
}

// Heuristic renders an integer grid under a title.
func (r *Renderer) Heuristic(title string, g lattice.Grid[int]) string {
	return r.grid(title, func(n lattice.Node) string {
		v := g.At(n)
		cell := fmt.Sprintf("%3d", v)
		if v == 0 {
			return r.Theme.Zero.Render(cell)
		}
		return r.Theme.Value.Render(cell)
	})
}

// Occupancy renders the label grid, '.' marking empty cells.
func (r *Renderer) Occupancy(g lattice.Grid[lattice.Label]) string {
	return r.grid("Occupancy", func(n lattice.Node) string {
		l := g.At(n)
		return r.Theme.PieceStyle(l).Render(fmt.Sprintf("%3c", l.Rune()))
	})
}

func (r *Renderer) grid(title string, cell func(lattice.Node) string) string {
	blocks := make([]string, lattice.Size)
	for x := 0; x < lattice.Size; x++ {
		var sb strings.Builder
		sb.WriteString(r.Theme.Layer.Render(fmt.Sprintf("x=%d", x)))
		for y := 0; y < lattice.Size; y++ {
			sb.WriteString("\n")
			for z := 0; z < lattice.Size; z++ {
				sb.WriteString(cell(lattice.N(x, y, z)))
			}
		}
		blocks[x] = sb.String()
	}

	return r.Theme.Title.Render(title) + "\n" + r.layout(blocks)
}

// layout joins layer blocks horizontally if they fit in Width.
func (r *Renderer) layout(blocks []string) string {
	total := 0
	for _, b := range blocks {
		total += lipgloss.Width(b)
	}
	total += layerGap * (len(blocks) - 1)

	if r.Width <= 0 || total > r.Width {
		return lipgloss.JoinVertical(lipgloss.Left, interleave(blocks, "")...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(blocks, strings.Repeat(" ", layerGap))...)
}

// interleave places sep between blocks.
func interleave(blocks []string, sep string) []string {
	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}

// Snapshot renders the named grids (config.Grid*) in the given order,
// separated by blank lines.
func (r *Renderer) Snapshot(s lattice.Snapshot, grids []string) string {
	var parts []string
	for _, g := range grids {
		switch g {
		case config.GridDirection:
			parts = append(parts, r.Heuristic("Direction heuristic", s.Direction))
		case config.GridPosition:
			parts = append(parts, r.Heuristic("Position heuristic", s.Position))
		case config.GridOccupancy:
			parts = append(parts, r.Occupancy(s.Labels))
		}
	}
	return strings.Join(parts, "\n\n")
}

// Steps lists each placement of a run.
func (r *Renderer) Steps(steps []solver.Step) string {
	var sb strings.Builder
	sb.WriteString(r.Theme.Title.Render("Placements"))
	sb.WriteString("\n")
	if len(steps) == 0 {
		sb.WriteString(r.Theme.Summary.Render("  (none)"))
		return sb.String()
	}

	for _, s := range steps {
		label := r.Theme.PieceStyle(s.Label).Render(s.Label.String())
		line := fmt.Sprintf("  %d. %s  root %-9s %s", s.Index, label, s.Piece.Root(), s.Piece.Direction())
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Result renders the step list followed by the final grids.
func (r *Renderer) Result(res *solver.Result, grids []string) string {
	out := r.Steps(res.Steps)
	if body := r.Snapshot(res.Final(), grids); body != "" {
		out += "\n\n" + body
	}
	return out
}
