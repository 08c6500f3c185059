package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skewcube/internal/report"
	"github.com/vovakirdan/skewcube/internal/solver"
)

var flagNoSave bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the solver and print the grids",
	Long: `Place four pieces on a fresh lattice, print each placement and the
grids listed under output.grids, and record the run.

Examples:
  skewcube solve
  skewcube solve --no-save
  skewcube solve --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runSolve(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := solver.New(e.logger).Run(ctx)
	if err != nil {
		fail("solve failed: %v", err)
	}

	width, _ := termSize()
	r := report.NewRenderer(e.useColor(), width)
	fmt.Println(r.Result(res, e.cfg.Output.Grids))
	fmt.Println()
	fmt.Println(r.Theme.Summary.Render(fmt.Sprintf("%d pieces, %d cells occupied", len(res.Steps), res.Occupied)))

	if flagNoSave || !e.cfg.Storage.Enabled {
		return
	}

	store, err := e.openStore()
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(res)
	if err != nil {
		e.logger.Error("run not recorded", "err", err)
		return
	}
	e.logger.Info("run recorded", "id", id)
	fmt.Printf("Run %s\n", id)
}
