// skewcube packs five-node skew pieces into a 5x5x5 lattice with a greedy
// heuristic and records each run.
//
// Usage:
//
//	skewcube solve               - Place four pieces and print the grids
//	skewcube runs                - List recorded runs
//	skewcube show <id|latest>    - Replay a recorded run and print its grids
//	skewcube view [id|latest]    - Step through a run interactively
//	skewcube export <id|latest>  - Write a run to an xlsx or pdf file
//	skewcube delete <id>         - Remove a recorded run
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.skewcube, ./configs)
//	--db <path>         - Run database (default: storage.path from config)
//	--log-level <level> - Override log.level from config
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skewcube/internal/config"
	"github.com/vovakirdan/skewcube/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skewcube",
	Short: "Greedy skew-piece packing in a 5x5x5 lattice",
	Long: `skewcube places five-node skew pieces into a 5x5x5 lattice, always
choosing the placement that removes the fewest remaining options.

Available commands:
  solve    - Run the solver and print the grids
  runs     - List recorded runs
  show     - Replay a recorded run
  view     - Step through a run interactively
  export   - Export a run to xlsx or pdf
  delete   - Remove a recorded run

Examples:
  skewcube solve
  skewcube solve --no-save
  skewcube runs
  skewcube show latest
  skewcube view
  skewcube export latest --format pdf -o run.pdf`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
}

// env is the state shared by all commands.
type env struct {
	cfg    config.Config
	logger *log.Logger
}

// loadEnv reads the config and applies the global flag overrides.
func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return &env{cfg: cfg, logger: cfg.Logger(os.Stderr)}, nil
}

// openStore opens the run database named by the config.
func (e *env) openStore() (*storage.Store, error) {
	store, err := storage.Open(e.cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("opened run database", "path", e.cfg.Storage.Path)
	return store, nil
}

// useColor resolves output.color against the terminal.
func (e *env) useColor() bool {
	switch e.cfg.Output.Color {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// termSize returns the terminal size, or 80x24 when stdout is not a terminal.
func termSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
