package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skewcube/internal/config"
	"github.com/vovakirdan/skewcube/internal/export"
)

var (
	flagFormat string
	flagOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <id|latest>",
	Short: "Export a run to xlsx or pdf",
	Long: `Write a recorded run to a spreadsheet or a PDF page.

Without -o the file is written to export.dir as skewcube-<id>.<format>.

Examples:
  skewcube export latest
  skewcube export latest --format pdf
  skewcube export latest --format xlsx -o run.xlsx`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagFormat, "format", "xlsx", "Output format: xlsx, pdf")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) {
	if flagFormat != "xlsx" && flagFormat != "pdf" {
		fail("unknown format %q (use xlsx or pdf)", flagFormat)
	}

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

	path := flagOutput
	if path == "" {
		dir, err := config.ExpandHome(e.cfg.Export.Dir)
		if err != nil {
			fail("%v", err)
		}
		path = filepath.Join(dir, fmt.Sprintf("skewcube-%s.%s", entry.ID, flagFormat))
	}

	switch flagFormat {
	case "xlsx":
		err = export.XLSX(path, res)
	case "pdf":
		err = export.PDF(path, res)
	}
	if err != nil {
		fail("export failed: %v", err)
	}

	e.logger.Info("exported run", "id", entry.ID, "format", flagFormat, "path", path)
	fmt.Printf("Wrote %s\n", path)
}
