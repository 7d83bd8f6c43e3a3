package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. The embedded YAML carries
// the same values.
func Default() Config {
	return Config{
		Surface: SurfaceConfig{Width: 960, Height: 540},
		Loop: LoopConfig{
			TickRate:      60,
			MaxFrameDelta: 0.033,
		},
		Input: InputConfig{HoldMS: 110},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 44100,
			Volume:     0.25,
		},
		DefaultGame: "snake",
		Snake: SnakeConfig{
			Cell:      24,
			StepEvery: 0.08,
			FoodScore: 10,
		},
		Breakout: BreakoutConfig{
			PaddleWidth: 100,
			PaddleSpeed: 6,
			BallVX:      3.6,
			BallVY:      -3.8,
			Spin:        3,
			Rows:        6,
			Cols:        12,
			BrickScore:  5,
		},
		Invaders: InvadersConfig{
			ShipSpeed:      5,
			FireCooldown:   0.15,
			BulletSpeed:    8,
			FormationSpeed: 0.8,
			Drop:           6,
			HitScore:       10,
		},
		Pong: PongConfig{
			PaddleSpeed: 6,
			CPUSpeed:    5.2,
			BallVX:      4.6,
			BallVY:      3.6,
			ServeVY:     3.4,
			Spin:        6,
		},
		Flappy: FlappyConfig{
			Gravity:   0.5,
			Flap:      -7.6,
			PipeSpeed: 2.8,
			Gap:       120,
			Spacing:   220,
		},
		Dino: DinoConfig{
			Gravity: 0.6,
			Jump:    -12,
			Speed:   4,
			Spacing: 240,
		},
		Tetris: TetrisConfig{
			FallEvery: 0.6,
			SoftDrop:  0.2,
			LineScore: 10,
		},
		MemorySounds: MemorySoundsConfig{
			Pads:      []float64{440, 550, 660, 770},
			StepEvery: 0.6,
			ToneDur:   0.22,
		},
	}
}

// DefaultYAML returns the embedded default file, for `arcade config`
// style dumps and tests.
func DefaultYAML() []byte {
	return defaultYAML
}
