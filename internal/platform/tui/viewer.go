// Package tui provides a read-only terminal viewer for finished solver runs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skewcube/internal/config"
	"github.com/vovakirdan/skewcube/internal/report"
	"github.com/vovakirdan/skewcube/internal/solver"
)

// gridKinds are cycled with tab.
var gridKinds = []string{config.GridOccupancy, config.GridDirection, config.GridPosition}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ViewerModel is the Bubble Tea model for stepping through a run.
// Step 0 shows the fresh lattice; step i shows the grids after placement i.
type ViewerModel struct {
	result   *solver.Result
	title    string
	renderer *report.Renderer
	keys     ViewerKeyMap
	help     help.Model
	step     int
	grid     int
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer over a finished run.
func NewViewerModel(res *solver.Result, title string, color bool, width, height int) ViewerModel {
	h := help.New()
	h.ShowAll = false

	return ViewerModel{
		result:   res,
		title:    title,
		renderer: report.NewRenderer(color, width),
		keys:     DefaultViewerKeyMap(),
		help:     h,
		step:     len(res.Steps),
		width:    width,
		height:   height,
	}
}

// Init initializes the viewer model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if m.step < len(m.result.Steps) {
				m.step++
			}

		case key.Matches(msg, m.keys.Prev):
			if m.step > 0 {
				m.step--
			}

		case key.Matches(msg, m.keys.First):
			m.step = 0

		case key.Matches(msg, m.keys.Last):
			m.step = len(m.result.Steps)

		case key.Matches(msg, m.keys.NextGrid):
			m.grid = (m.grid + 1) % len(gridKinds)

		case key.Matches(msg, m.keys.PrevGrid):
			m.grid = (m.grid + len(gridKinds) - 1) % len(gridKinds)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// Step returns the step currently shown.
func (m ViewerModel) Step() int {
	return m.step
}

// Grid returns the name of the grid currently shown.
func (m ViewerModel) Grid() string {
	return gridKinds[m.grid]
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(infoStyle.Render(m.stepInfo()))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderer.Snapshot(m.result.SnapshotAt(m.step), []string{m.Grid()}))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m ViewerModel) stepInfo() string {
	total := len(m.result.Steps)
	if m.step == 0 {
		return fmt.Sprintf("Step 0/%d  fresh lattice", total)
	}
	s := m.result.Steps[m.step-1]
	return fmt.Sprintf("Step %d/%d  %s  root %s  %s", m.step, total, s.Label, s.Piece.Root(), s.Piece.Direction())
}

// RunViewer runs the viewer until the user quits.
func RunViewer(res *solver.Result, title string, color bool, width, height int) error {
	model := NewViewerModel(res, title, color, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
