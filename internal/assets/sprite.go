// Package assets loads the bird sprite frames and provides the ellipse
// primitive used when a frame is unavailable.
package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// BirdColor is the fill of the ellipse fallback.
var BirdColor = color.RGBA{R: 255, G: 230, B: 80, A: 255}

// Kind tells a renderer how to draw a Sprite.
type Kind int

const (
	KindEllipse Kind = iota // Filled ellipse of the target box
	KindImage               // Bitmap scaled to the target box
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Sprite is either a bitmap or a primitive shape.
type Sprite struct {
	Kind  Kind
	Image image.Image // Set for KindImage
	Color color.RGBA  // Fill for KindEllipse
}

// ImageSprite wraps a bitmap.
func ImageSprite(img image.Image) Sprite {
	return Sprite{Kind: KindImage, Image: img}
}

// EllipseSprite returns the primitive shape variant.
func EllipseSprite(c color.RGBA) Sprite {
	return Sprite{Kind: KindEllipse, Color: c}
}

// Set is an ordered list of animation frames.
type Set []Sprite

// Index maps an animation frame number onto the set, wrapping around.
// It returns 0 for an empty set.
func (s Set) Index(i int) int {
	if len(s) == 0 {
		return 0
	}
	i %= len(s)
	if i < 0 {
		i += len(s)
	}
	return i
}

// Frame returns frame i, wrapping around. An empty set yields the ellipse.
func (s Set) Frame(i int) Sprite {
	if len(s) == 0 {
		return EllipseSprite(BirdColor)
	}
	return s[s.Index(i)]
}

// FallbackSet returns n ellipse frames.
func FallbackSet(n int) Set {
	s := make(Set, max(n, 1))
	for i := range s {
		s[i] = EllipseSprite(BirdColor)
	}
	return s
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// RasterizeEllipse draws a filled, anti-aliased ellipse inscribed in a w x h
// image. Pixels outside the ellipse stay transparent.
func RasterizeEllipse(w, h int, c color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return dst
	}

	rx, ry := float32(w)/2, float32(h)/2
	cx, cy := rx, ry
	kx, ky := rx*kappa, ry*kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	z.DrawOp = draw.Src
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})

	return dst
}
