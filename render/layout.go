package render

import (
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/grid"
)

// Layout maps arena cells to terminal coordinates
// Each cell spans constants.CellWidth columns and one row
type Layout struct {
	HalfWidth  int
	OriginX    int // Left column of the wall
	OriginY    int // Header row
	BoardCols  int // Wall to wall, in columns
	BoardRows  int // Wall to wall, in rows
	ShowFooter bool
}

// NewLayout centers an arena of half width l in a w x h terminal
// Returns false when the terminal cannot hold the header and walled arena
func NewLayout(w, h, l int) (Layout, bool) {
	side := 2*l + 1
	cells := side + 2*constants.WallThickness
	lay := Layout{
		HalfWidth: l,
		BoardCols: cells * constants.CellWidth,
		BoardRows: cells,
	}

	need := constants.HeaderRows + lay.BoardRows
	if w < lay.BoardCols || h < need {
		return lay, false
	}
	if h >= need+constants.FooterRows {
		lay.ShowFooter = true
		need += constants.FooterRows
	}

	lay.OriginX = (w - lay.BoardCols) / 2
	lay.OriginY = (h - need) / 2
	return lay, true
}

// BoardTop returns the row of the top wall
func (l Layout) BoardTop() int {
	return l.OriginY + constants.HeaderRows
}

// CellToScreen returns the left column and row of arena cell p
func (l Layout) CellToScreen(p grid.Position) (int, int) {
	col := constants.WallThickness + p.X + l.HalfWidth
	row := constants.WallThickness + p.Z + l.HalfWidth
	return l.OriginX + col*constants.CellWidth, l.BoardTop() + row
}

// FooterRow returns the hint row below the bottom wall
func (l Layout) FooterRow() int {
	return l.BoardTop() + l.BoardRows
}
