package desktop

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
)

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.sim.Scene()

	screen.Fill(skyColor)
	fillRect(screen, sc.Ground, groundColor)
	for _, p := range sc.Pipes {
		fillRect(screen, p.Top, pipeColor)
		fillRect(screen, p.Bottom, pipeColor)
	}
	g.drawBird(screen, sc)

	centerX := float64(sc.Width) / 2
	drawText(screen, strconv.Itoa(sc.Score), g.scoreFace, centerX, 20, textColor)

	switch {
	case sc.GameOver:
		drawText(screen, "Game Over", g.messageFace, centerX, float64(sc.Height)/2-40, gameOverRed)
		drawText(screen, "Press Space to restart", g.hintFace, centerX, float64(sc.Height)/2+10, textColor)
	case sc.Paused:
		drawText(screen, "Paused", g.messageFace, centerX, float64(sc.Height)/2-40, textColor)
		drawText(screen, "Press P to resume", g.hintFace, centerX, float64(sc.Height)/2+10, textColor)
	}
}

// drawBird draws the current animation frame. A bitmap is scaled to the
// bird's width and rotated by the tilt around the box center; the ellipse
// stays upright and fills the box.
func (g *Game) drawBird(screen *ebiten.Image, sc flappy.Scene) {
	sp := g.sprites.Frame(sc.Frame)
	tex := g.textures[g.sprites.Index(sc.Frame)]

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()

	switch sp.Kind {
	case assets.KindImage:
		scale := float64(sc.Bird.W) / float64(w)
		cx, cy := sc.Bird.Center()

		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(scale, scale)
		// Positive tilt is nose up, which is counter-clockwise on screen.
		op.GeoM.Rotate(-sc.Tilt * math.Pi / 180)
		op.GeoM.Translate(float64(cx), float64(cy))

	case assets.KindEllipse:
		op.GeoM.Scale(float64(sc.Bird.W)/float64(w), float64(sc.Bird.H)/float64(h))
		op.GeoM.Translate(float64(sc.Bird.X), float64(sc.Bird.Y))
	}
	screen.DrawImage(tex, op)
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawText draws s horizontally centered on x with its top at y.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
