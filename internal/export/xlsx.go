// Package export writes solver runs to spreadsheet and PDF files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vovakirdan/skewcube/internal/lattice"
	"github.com/vovakirdan/skewcube/internal/solver"
)

// Sheet names written by XLSX.
const (
	SheetPlacements = "Placements"
	SheetDirection  = "Direction"
	SheetPosition   = "Position"
	SheetOccupancy  = "Occupancy"
)

// layerStride is the number of rows each x layer takes: a header, five y rows
// and a blank separator.
const layerStride = lattice.Size + 2

// XLSX writes the run's placements and final grids to an Excel workbook.
// Each grid sheet holds one block per x layer with y rows and z columns.
func XLSX(path string, res *solver.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the placement list.
	if err := f.SetSheetName(f.GetSheetName(0), SheetPlacements); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writePlacements(f, res.Steps); err != nil {
		return err
	}

	final := res.Final()
	if err := writeGrid(f, SheetDirection, func(n lattice.Node) any { return final.Direction.At(n) }); err != nil {
		return err
	}
	if err := writeGrid(f, SheetPosition, func(n lattice.Node) any { return final.Position.At(n) }); err != nil {
		return err
	}
	if err := writeGrid(f, SheetOccupancy, func(n lattice.Node) any {
		if l := final.Labels.At(n); l.Valid() {
			return l.String()
		}
		return ""
	}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func writePlacements(f *excelize.File, steps []solver.Step) error {
	rows := [][]any{{"Step", "Label", "X", "Y", "Z", "Direction"}}
	for _, s := range steps {
		root := s.Piece.Root()
		rows = append(rows, []any{s.Index, s.Label.String(), root.X, root.Y, root.Z, s.Piece.Direction().String()})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export: cell reference: %w", err)
		}
		if err := f.SetSheetRow(SheetPlacements, cell, &row); err != nil {
			return fmt.Errorf("export: write placement row %d: %w", i, err)
		}
	}
	return nil
}

func writeGrid(f *excelize.File, sheet string, value func(lattice.Node) any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: create sheet %s: %w", sheet, err)
	}

	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("export: cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("export: write %s!%s: %w", sheet, cell, err)
		}
		return nil
	}

	for x := 0; x < lattice.Size; x++ {
		top := x*layerStride + 1
		if err := set(1, top, fmt.Sprintf("x=%d", x)); err != nil {
			return err
		}
		for y := 0; y < lattice.Size; y++ {
			for z := 0; z < lattice.Size; z++ {
				if err := set(z+1, top+y+1, value(lattice.N(x, y, z))); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
