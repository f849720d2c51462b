// Package config provides YAML-based configuration for the flappy game.
// Defaults reproduce the classic tuning: a 400x600 canvas at 60 FPS.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of the game.
type FlappyConfig struct {
	Screen    Screen    `yaml:"screen"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Render    Render    `yaml:"render"`
}

// Screen defines the logical canvas and frame rate.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// Physics defines per-frame physics constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every frame
	FlapVelocity float64 `yaml:"flap_velocity"` // Velocity assigned on flap (negative = up)
	PipeSpeed    int     `yaml:"pipe_speed"`    // Pixels pipes move left per frame
}

// Obstacles defines pipe geometry and spawning.
type Obstacles struct {
	PipeWidth       int `yaml:"pipe_width"`
	GapHeight       int `yaml:"gap_height"`
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	TopMargin       int `yaml:"top_margin"`
	BottomMargin    int `yaml:"bottom_margin"`
	PruneThreshold  int `yaml:"prune_threshold"` // Pipes whose right edge is left of this are removed
}

// Player defines the bird hitbox.
type Player struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Render defines cosmetic parameters. None of them affect the simulation.
type Render struct {
	GroundHeight        int     `yaml:"ground_height"`
	AnimationIntervalMS int     `yaml:"animation_interval_ms"`
	MaxTilt             float64 `yaml:"max_tilt"`    // Degrees
	TiltFactor          float64 `yaml:"tilt_factor"` // Degrees per unit of velocity
	AssetsDir           string  `yaml:"assets_dir"`
}

// SpawnInterval returns the pipe spawn interval as a duration.
func (o Obstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// AnimationInterval returns the sprite frame interval as a duration.
func (r Render) AnimationInterval() time.Duration {
	return time.Duration(r.AnimationIntervalMS) * time.Millisecond
}

// Validate reports every value that would make the simulation ill-defined.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "fps must be positive, got %d", c.Screen.FPS)
	check(c.Physics.PipeSpeed > 0, "pipe_speed must be positive, got %d", c.Physics.PipeSpeed)
	check(c.Physics.FlapVelocity < 0, "flap_velocity must be negative (upward), got %g", c.Physics.FlapVelocity)
	check(c.Obstacles.PipeWidth > 0, "pipe_width must be positive, got %d", c.Obstacles.PipeWidth)
	check(c.Obstacles.GapHeight > 0, "gap_height must be positive, got %d", c.Obstacles.GapHeight)
	check(c.Obstacles.SpawnIntervalMS > 0, "spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	check(c.Obstacles.TopMargin >= 0 && c.Obstacles.BottomMargin >= 0, "margins must not be negative")
	check(c.Obstacles.TopMargin+c.Obstacles.GapHeight+c.Obstacles.BottomMargin <= c.Screen.Height,
		"gap of %d with margins %d/%d does not fit a screen of height %d",
		c.Obstacles.GapHeight, c.Obstacles.TopMargin, c.Obstacles.BottomMargin, c.Screen.Height)
	check(c.Obstacles.PruneThreshold <= 0, "prune_threshold must be at or left of the screen edge, got %d", c.Obstacles.PruneThreshold)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Height < c.Screen.Height, "player height %d does not fit the screen", c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.Screen.Width, "player x %d is outside the screen", c.Player.X)
	check(c.Render.AnimationIntervalMS > 0, "animation_interval_ms must be positive, got %d", c.Render.AnimationIntervalMS)
	check(c.Render.MaxTilt >= 0, "max_tilt must not be negative, got %g", c.Render.MaxTilt)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
