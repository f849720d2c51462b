package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It must stay in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: Screen{
			Width:  400,
			Height: 600,
			FPS:    60,
		},
		Physics: Physics{
			Gravity:      0.5,
			FlapVelocity: -9,
			PipeSpeed:    3,
		},
		Obstacles: Obstacles{
			PipeWidth:       70,
			GapHeight:       150,
			SpawnIntervalMS: 1500,
			TopMargin:       80,
			BottomMargin:    80,
			PruneThreshold:  -50,
		},
		Player: Player{
			X:      80,
			Width:  34,
			Height: 24,
		},
		Render: Render{
			GroundHeight:        40,
			AnimationIntervalMS: 100,
			MaxTilt:             30,
			TiltFactor:          3,
			AssetsDir:           "assets",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
