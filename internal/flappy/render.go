package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy/internal/core"
)

// Visual characters for the terminal renderer.
const (
	PipeChar   = '█'
	GroundChar = '▒'
	BirdChar   = '●'
)

// wingChars are the wing glyphs for each animation frame: up, level, down.
var wingChars = [BirdFrames]rune{'^', '-', 'v'}

// Render draws the current frame into a terminal cell buffer, scaling the
// logical canvas to the buffer's size.
func (g *Game) Render(dst *core.Screen) {
	RenderScene(dst, g.Scene())
}

// RenderScene draws a scene into a terminal cell buffer.
func RenderScene(dst *core.Screen, sc Scene) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || sc.Width == 0 || sc.Height == 0 {
		return
	}
	m := cellMapper{cols: dst.Width(), rows: dst.Height(), w: sc.Width, h: sc.Height}

	for _, p := range sc.Pipes {
		dst.DrawRect(m.rect(p.Top), PipeChar, core.ColorGreen)
		dst.DrawRect(m.rect(p.Bottom), PipeChar, core.ColorGreen)
	}
	dst.DrawRect(m.rect(sc.Ground), GroundChar, core.ColorBrightGreen)

	bird := m.rect(sc.Bird)
	dst.DrawRect(bird, BirdChar, core.ColorBrightYellow)
	cx, cy := bird.Center()
	dst.SetColored(cx, cy, wingChars[sc.Frame%BirdFrames], core.ColorOrange)

	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", sc.Score), core.ColorWhite)

	switch {
	case sc.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", sc.Score), core.ColorRed)
	case sc.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// cellMapper converts logical pixels to terminal cells.
type cellMapper struct {
	cols, rows int
	w, h       int
}

// rect maps a logical rectangle to the cells it covers. Non-empty rectangles
// always cover at least one cell.
func (m cellMapper) rect(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0 := floorDiv(r.X*m.cols, m.w)
	y0 := floorDiv(r.Y*m.rows, m.h)
	x1 := ceilDiv(r.Right()*m.cols, m.w)
	y1 := ceilDiv(r.Bottom()*m.rows, m.h)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title, c)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorWhite)
}
