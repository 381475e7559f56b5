package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette as hex so it can be blended in Lab space
const (
	hexBackground = "#1a1b26" // Tokyo Night background
	hexApple      = "#ff9900"
	hexScore      = "#ffffff"
)

// RGB color definitions
var (
	RgbBackground = tcell.GetColor(hexBackground)
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Muted slate
	RgbGrass      = tcell.NewRGBColor(40, 70, 40)    // Dark grass dots
	RgbSnakeHead  = tcell.NewRGBColor(255, 60, 60)   // Red
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbApple      = tcell.GetColor(hexApple)         // Orange
	RgbTitle      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbScore      = tcell.GetColor(hexScore)
	RgbHint       = tcell.NewRGBColor(120, 120, 140) // Dim gray

	// Overlays
	RgbOverlayBg   = tcell.NewRGBColor(50, 15, 15)    // Very dark red
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255) // White
	RgbWinBg       = tcell.NewRGBColor(0, 40, 0)      // Very dark green
	RgbPausedBg    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPausedText  = tcell.NewRGBColor(0, 0, 0)       // Black
)

// ScoreFlashColor blends from apple orange back to the score color, t in [0, 1]
func ScoreFlashColor(t float64) tcell.Color {
	if t <= 0 {
		return RgbApple
	}
	if t >= 1 {
		return RgbScore
	}
	from, err1 := colorful.Hex(hexApple)
	to, err2 := colorful.Hex(hexScore)
	if err1 != nil || err2 != nil {
		return RgbScore
	}
	r, g, b := from.BlendLab(to, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
