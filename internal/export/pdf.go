package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/vovakirdan/skewcube/internal/lattice"
	"github.com/vovakirdan/skewcube/internal/solver"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors are cycled by label.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	lineHeight   = 6.0
	cellSize     = 9.0
	layerGap     = 8.0
)

// PDF writes a one-page report: the placement list followed by the occupancy
// of every x layer drawn as coloured squares.
func PDF(path string, res *solver.Result) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Skew piece packing: %d pieces, %d of %d cells occupied",
		len(res.Steps), res.Occupied, lattice.NumCells)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Placement list
	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + headerHeight
	for _, s := range res.Steps {
		pdf.SetXY(marginLeft, y)
		line := fmt.Sprintf("%d. %s  root %s  %s", s.Index, s.Label, s.Piece.Root(), s.Piece.Direction())
		pdf.CellFormat(pageWidth-marginLeft-marginRight, lineHeight, line, "", 0, "L", false, 0, "")
		y += lineHeight
	}

	drawLayers(pdf, res.Final().Labels, y+layerGap)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// drawLayers renders each x layer as a 5x5 block, rows y and columns z.
func drawLayers(pdf *fpdf.Fpdf, labels lattice.Grid[lattice.Label], top float64) {
	blockWidth := cellSize * lattice.Size

	for x := 0; x < lattice.Size; x++ {
		left := marginLeft + float64(x)*(blockWidth+layerGap)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(left, top)
		pdf.CellFormat(blockWidth, lineHeight, fmt.Sprintf("x=%d", x), "", 0, "C", false, 0, "")

		for y := 0; y < lattice.Size; y++ {
			for z := 0; z < lattice.Size; z++ {
				cx := left + float64(z)*cellSize
				cy := top + lineHeight + float64(y)*cellSize
				l := labels[x][y][z]

				pdf.SetDrawColor(100, 100, 100)
				pdf.SetLineWidth(0.3)
				if !l.Valid() {
					pdf.SetFillColor(240, 240, 240)
					pdf.Rect(cx, cy, cellSize, cellSize, "FD")
					continue
				}

				col := pieceColors[int(l-lattice.FirstLabel)%len(pieceColors)]
				pdf.SetFillColor(col.R, col.G, col.B)
				pdf.Rect(cx, cy, cellSize, cellSize, "FD")

				pdf.SetFont("Helvetica", "B", 8)
				pdf.SetXY(cx, cy)
				pdf.CellFormat(cellSize, cellSize, l.String(), "", 0, "C", false, 0, "")
			}
		}
	}
}
