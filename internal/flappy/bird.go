package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Bird is the player avatar. Only Y and Velocity change during play.
type Bird struct {
	X, Y     int
	W, H     int
	Velocity float64 // Pixels per frame, positive = down
}

// NewBird places a bird at the start position: the configured column,
// vertically centred on the screen, at rest.
func NewBird(player config.Player, screenH int) Bird {
	return Bird{
		X: player.X,
		Y: screenH/2 - player.Height/2,
		W: player.Width,
		H: player.Height,
	}
}

// Rect returns the bird's collision box.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Flap replaces the current velocity with the flap velocity.
func (b *Bird) Flap(velocity float64) {
	b.Velocity = velocity
}

// Fall integrates one frame of gravity. The position moves by the velocity
// truncated toward zero.
func (b *Bird) Fall(gravity float64) {
	b.Velocity += gravity
	b.Y += int(b.Velocity)
}

// OutOfBounds reports whether the bird touches the top or bottom of the screen.
func (b Bird) OutOfBounds(screenH int) bool {
	return b.Y <= 0 || b.Y+b.H >= screenH
}

// Tilt returns the cosmetic rotation in degrees, positive when climbing.
func (b Bird) Tilt(factor, maxTilt float64) float64 {
	return core.ClampF(-b.Velocity*factor, -maxTilt, maxTilt)
}
