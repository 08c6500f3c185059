package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skewcube/internal/solver"
	"github.com/vovakirdan/skewcube/internal/storage"
)

var flagLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent recorded runs, newest first.

Examples:
  skewcube runs
  skewcube runs --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	store, err := e.openStore()
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skewcube solve' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-36s  %-6s  %-8s  %s\n", "ID", "Pieces", "Occupied", "Date")
	fmt.Printf("  %-36s  %-6s  %-8s  %s\n", "--", "------", "--------", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-36s  %-6d  %-8d  %s\n", r.ID, r.Pieces, r.Occupied, dateStr)
	}
}

func runDelete(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	store, err := e.openStore()
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	if err := store.DeleteRun(args[0]); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted run %s\n", args[0])
}

// loadRun fetches a recorded run ("latest" for the newest) and replays it.
func loadRun(e *env, store *storage.Store, id string) (*storage.RunEntry, *solver.Result, error) {
	var (
		entry *storage.RunEntry
		err   error
	)
	if id == "latest" {
		entry, err = store.LatestRun()
	} else {
		entry, err = store.RunByID(id)
	}
	if err != nil {
		return nil, nil, err
	}

	pieces, err := store.Pieces(entry.ID)
	if err != nil {
		return nil, nil, err
	}
	res, err := solver.New(e.logger).Replay(pieces)
	if err != nil {
		return nil, nil, fmt.Errorf("replaying run %s: %w", entry.ID, err)
	}
	return entry, res, nil
}
