package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skewcube/internal/platform/tui"
	"github.com/vovakirdan/skewcube/internal/solver"
)

var viewCmd = &cobra.Command{
	Use:   "view [id|latest]",
	Short: "Step through a run interactively",
	Long: `Open a terminal viewer over a run. Without an argument the solver
runs fresh; otherwise the recorded run is replayed.

Controls:
  Left/Right - Previous/next placement
  Tab        - Switch grid
  ?          - More keys
  Q/Ctrl+C   - Quit

Examples:
  skewcube view
  skewcube view latest`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func runView(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	var (
		res   *solver.Result
		title = "Fresh run"
	)
	if len(args) == 0 {
		res, err = solver.New(e.logger).Run(context.Background())
		if err != nil {
			fail("solve failed: %v", err)
		}
	} else {
		store, err := e.openStore()
		if err != nil {
			fail("opening run database: %v", err)
		}
		entry, replayed, err := loadRun(e, store, args[0])
		store.Close()
		if err != nil {
			fail("%v", err)
		}
		res = replayed
		title = "Run " + entry.ID
	}

	width, height := termSize()
	if err := tui.RunViewer(res, title, e.useColor(), width, height); err != nil {
		fail("viewer: %v", err)
	}
}
