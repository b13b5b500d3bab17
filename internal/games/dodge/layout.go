package dodge

import (
	"math"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/sim"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// layout maps world pixels onto terminal cells.
type layout struct {
	cellW, cellH float64
	originX      int // First playfield column
	originY      int // First playfield row
	cols, rows   int // Playfield size in cells
	screenW      int
	screenH      int
}

// newLayout fits the playfield to the screen. The lane variant keeps a
// narrow road centered on screen.
func newLayout(variant sim.Variant, world config.WorldConfig, screenW, screenH int) layout {
	l := layout{
		cellW:   float64(max(1, world.CellWidth)),
		cellH:   float64(max(1, world.CellHeight)),
		originY: hudRows,
		cols:    max(0, screenW),
		rows:    max(0, screenH-hudRows),
		screenW: screenW,
		screenH: screenH,
	}

	if world.MaxWidth > 0 {
		maxCols := world.MaxWidth / int(l.cellW)
		if variant == sim.VariantLanes {
			// Leave room for the road edges
			maxCols = min(maxCols, screenW-2)
		}
		if maxCols > 0 && maxCols < l.cols {
			l.cols = maxCols
		}
	}
	l.originX = (screenW - l.cols) / 2
	return l
}

func (l layout) worldWidth() float64  { return float64(l.cols) * l.cellW }
func (l layout) worldHeight() float64 { return float64(l.rows) * l.cellH }

// toCell converts a world point to fractional screen coordinates.
func (l layout) toCell(x, y float64) (float64, float64) {
	return float64(l.originX) + x/l.cellW, float64(l.originY) + y/l.cellH
}

// cellSpan converts a world box to an inclusive range of screen cells.
// Boxes smaller than a cell still cover one cell.
func (l layout) cellSpan(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = l.originX + int(math.Floor(x/l.cellW))
	y0 = l.originY + int(math.Floor(y/l.cellH))
	x1 = l.originX + int(math.Ceil((x+w)/l.cellW)) - 1
	y1 = l.originY + int(math.Ceil((y+h)/l.cellH)) - 1
	x1 = max(x0, x1)
	y1 = max(y0, y1)
	return x0, y0, x1, y1
}

// inField reports whether a screen row belongs to the playfield.
func (l layout) inField(row int) bool {
	return row >= l.originY && row < l.originY+l.rows
}
