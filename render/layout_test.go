package render

import (
	"testing"

	"github.com/lixenwraith/grid-snake/grid"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name       string
		w, h, l    int
		fits       bool
		showFooter bool
	}{
		{"classic 80x24", 80, 24, 10, true, false},
		{"room for footer", 80, 30, 10, true, true},
		{"too narrow", 40, 30, 10, false, false},
		{"too short", 80, 20, 10, false, false},
		{"tiny arena with footer", 10, 7, 1, true, true},
		{"tiny arena without footer", 10, 6, 1, true, false},
		{"tiny arena too short", 10, 5, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lay, ok := NewLayout(tt.w, tt.h, tt.l)
			if ok != tt.fits {
				t.Fatalf("fits = %v, want %v", ok, tt.fits)
			}
			if ok && lay.ShowFooter != tt.showFooter {
				t.Errorf("ShowFooter = %v, want %v", lay.ShowFooter, tt.showFooter)
			}
		})
	}
}

func TestCellToScreen(t *testing.T) {
	lay, ok := NewLayout(80, 24, 10)
	if !ok {
		t.Fatal("80x24 should fit")
	}
	if lay.OriginX != 17 || lay.OriginY != 0 {
		t.Fatalf("Origin = (%d,%d), want (17,0)", lay.OriginX, lay.OriginY)
	}

	tests := []struct {
		p    grid.Position
		x, y int
	}{
		{grid.P(0, 0), 39, 12},
		{grid.P(-10, -10), 19, 2},
		{grid.P(10, 10), 59, 22},
		{grid.P(1, 0), 41, 12}, // One cell east is two columns
	}
	for _, tt := range tests {
		x, y := lay.CellToScreen(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("CellToScreen(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}
