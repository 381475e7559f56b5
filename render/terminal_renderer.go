package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/events"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/session"
)

// Frame is everything drawn in one render pass
type Frame struct {
	Snapshot session.Snapshot
	Paused   bool
	Muted    bool
	Now      time.Time
}

// TerminalRenderer draws session snapshots to a tcell screen
type TerminalRenderer struct {
	screen    tcell.Screen
	lastEaten time.Time
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// EventTypes implements events.Handler
func (r *TerminalRenderer) EventTypes() []events.EventType {
	return []events.EventType{events.EventAppleEaten}
}

// HandleEvent records the eat time for the score flash
func (r *TerminalRenderer) HandleEvent(ev events.GameEvent) {
	if ev.Type == events.EventAppleEaten {
		r.lastEaten = ev.Timestamp
	}
}

// Render draws the whole frame and shows it
func (r *TerminalRenderer) Render(f Frame) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	w, h := r.screen.Size()
	snap := f.Snapshot
	lay, ok := NewLayout(w, h, snap.HalfWidth)
	if !ok {
		r.drawCentered(h/2, w, constants.TooSmallText, base.Foreground(RgbOverlayText))
		r.screen.Show()
		return
	}

	r.drawHeader(lay, snap, f.Now, base)
	r.drawBoard(lay, base)
	r.drawApple(lay, snap, base)
	r.drawSnake(lay, snap, base)
	if lay.ShowFooter {
		r.drawFooter(lay, f.Muted, base)
	}

	switch {
	case snap.State == session.StateGameOver:
		r.drawGameOver(lay, snap, base)
	case f.Paused:
		r.drawPaused(lay, base)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawHeader(lay Layout, snap session.Snapshot, now time.Time, base tcell.Style) {
	r.drawText(lay.OriginX, lay.OriginY, constants.TitleText, base.Foreground(RgbTitle).Bold(true))

	score := fmt.Sprintf(constants.ScoreFormat, snap.Score)
	x := lay.OriginX + lay.BoardCols - runewidth.StringWidth(score)
	r.drawText(x, lay.OriginY, score, base.Foreground(r.scoreColor(now)))
}

// scoreColor fades the score from apple color after an eat
func (r *TerminalRenderer) scoreColor(now time.Time) tcell.Color {
	if r.lastEaten.IsZero() || now.IsZero() {
		return RgbScore
	}
	since := now.Sub(r.lastEaten)
	if since < 0 || since >= constants.ScoreBlinkTimeout {
		return RgbScore
	}
	return ScoreFlashColor(float64(since) / float64(constants.ScoreBlinkTimeout))
}

func (r *TerminalRenderer) drawBoard(lay Layout, base tcell.Style) {
	wall := base.Foreground(RgbWall)
	grass := base.Foreground(RgbGrass)
	top := lay.BoardTop()

	for row := 0; row < lay.BoardRows; row++ {
		for cell := 0; cell < lay.BoardRows; cell++ {
			x := lay.OriginX + cell*constants.CellWidth
			y := top + row
			border := row < constants.WallThickness || row >= lay.BoardRows-constants.WallThickness ||
				cell < constants.WallThickness || cell >= lay.BoardRows-constants.WallThickness
			if border {
				r.fillCell(x, y, constants.GlyphWall, wall)
			} else {
				r.screen.SetContent(x, y, constants.GlyphGrass, nil, grass)
			}
		}
	}
}

func (r *TerminalRenderer) drawApple(lay Layout, snap session.Snapshot, base tcell.Style) {
	if !snap.HasApple {
		return
	}
	x, y := lay.CellToScreen(snap.Apple)
	r.screen.SetContent(x, y, constants.GlyphApple, nil, base.Foreground(RgbApple))
	for i := 1; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, base)
	}
}

func (r *TerminalRenderer) drawSnake(lay Layout, snap session.Snapshot, base tcell.Style) {
	// Tail first so the head wins on stacked cells
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		p := snap.Segments[i]
		if !grid.WithinBounds(p, snap.HalfWidth) {
			continue
		}
		color := RgbSnakeBody
		if i == 0 {
			color = RgbSnakeHead
		}
		x, y := lay.CellToScreen(p)
		r.fillCell(x, y, constants.GlyphSegment, base.Foreground(color))
	}
}

func (r *TerminalRenderer) drawFooter(lay Layout, muted bool, base tcell.Style) {
	hint := constants.HintText
	if muted {
		hint += "  [muted]"
	}
	if runewidth.StringWidth(hint) > lay.BoardCols {
		hint = runewidth.Truncate(hint, lay.BoardCols, "…")
	}
	r.drawText(lay.OriginX, lay.FooterRow(), hint, base.Foreground(RgbHint))
}

func (r *TerminalRenderer) drawGameOver(lay Layout, snap session.Snapshot, base tcell.Style) {
	bg := RgbOverlayBg
	if snap.Cause.Win() {
		bg = RgbWinBg
	}
	style := base.Background(bg).Foreground(RgbOverlayText)

	lines := []string{
		constants.GameOverTitle,
		snap.Message,
		fmt.Sprintf(constants.FinalScoreFormat, snap.Score),
		"",
		constants.RestartHint,
	}

	boxWidth := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > boxWidth {
			boxWidth = lw
		}
	}
	boxWidth += 4
	if boxWidth > lay.BoardCols {
		boxWidth = lay.BoardCols
	}

	boxTop := lay.BoardTop() + (lay.BoardRows-len(lines)-2)/2
	boxLeft := lay.OriginX + (lay.BoardCols-boxWidth)/2
	for row := 0; row < len(lines)+2; row++ {
		for col := 0; col < boxWidth; col++ {
			r.screen.SetContent(boxLeft+col, boxTop+row, ' ', nil, style)
		}
	}

	for i, l := range lines {
		st := style
		if i == 0 {
			st = st.Bold(true)
		}
		r.drawCenteredIn(boxLeft, boxWidth, boxTop+1+i, l, st)
	}
}

func (r *TerminalRenderer) drawPaused(lay Layout, base tcell.Style) {
	style := base.Background(RgbPausedBg).Foreground(RgbPausedText).Bold(true)
	row := lay.BoardTop() + lay.BoardRows/2
	r.drawCenteredIn(lay.OriginX, lay.BoardCols, row, constants.PausedText, style)
}

// fillCell paints every column of one arena cell with ch
func (r *TerminalRenderer) fillCell(x, y int, ch rune, style tcell.Style) {
	for i := 0; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *TerminalRenderer) drawCentered(y, width int, s string, style tcell.Style) {
	r.drawCenteredIn(0, width, y, s, style)
}

func (r *TerminalRenderer) drawCenteredIn(left, width, y int, s string, style tcell.Style) {
	sw := runewidth.StringWidth(s)
	x := left + (width-sw)/2
	if x < left {
		x = left
	}
	r.drawText(x, y, s, style)
}
