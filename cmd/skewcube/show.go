package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skewcube/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <id|latest>",
	Short: "Replay a recorded run and print its grids",
	Long: `Rebuild a recorded run from its placements and print the same output
as 'skewcube solve'.

Examples:
  skewcube show latest
  skewcube show 0b6f3c1e-4a4d-4c1e-9a43-2f0e5d7b9c11`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	store, err := e.openStore()
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	entry, res, err := loadRun(e, store, args[0])
	if err != nil {
		fail("%v", err)
	}

	width, _ := termSize()
	r := report.NewRenderer(e.useColor(), width)
	fmt.Println(r.Theme.Title.Render("Run " + entry.ID))
	fmt.Println(r.Theme.Summary.Render("Recorded " + entry.CreatedAt.Format("2006-01-02 15:04")))
	fmt.Println()
	fmt.Println(r.Result(res, e.cfg.Output.Grids))
}
