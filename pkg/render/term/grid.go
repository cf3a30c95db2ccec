package term

import (
	"math"

	"github.com/matzehuels/constellation/pkg/frame"
)

// CellWidth is the pixel width assigned to one terminal column.
const CellWidth = 8

// Grid maps terminal cells to the pixel space the controller works in.
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64
}

// NewGrid creates a grid of cols×rows cells. aspect is the cell height in
// units of its width; values <= 0 fall back to 2.
func NewGrid(cols, rows int, aspect float64) Grid {
	if aspect <= 0 {
		aspect = 2
	}
	return Grid{Cols: cols, Rows: rows, CellW: CellWidth, CellH: CellWidth * aspect}
}

// Size returns the grid's pixel dimensions.
func (g Grid) Size() (width, height float64) {
	return float64(g.Cols) * g.CellW, float64(g.Rows) * g.CellH
}

// Pointer returns the pixel-space pointer covering cell (col, row), so any
// star drawn in that cell can be hovered. Cells outside the grid yield
// [frame.NoPointer].
func (g Grid) Pointer(col, row int) frame.Pointer {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return frame.NoPointer
	}
	return frame.Pointer{
		X:       (float64(col) + 0.5) * g.CellW,
		Y:       (float64(row) + 0.5) * g.CellH,
		W:       g.CellW,
		H:       g.CellH,
		Present: true,
	}
}

// Cell returns the cell containing pixel (x, y). The result may lie
// outside the grid.
func (g Grid) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / g.CellW)), int(math.Floor(y / g.CellH))
}
