// Package config provides YAML-based configuration for the arcade: the
// logical surface, frame loop, input and audio settings, and the tunables
// of the variants that expose them.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

var gameIDPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// Config is the full arcade configuration.
type Config struct {
	Surface     SurfaceConfig `yaml:"surface"`
	Loop        LoopConfig    `yaml:"loop"`
	Input       InputConfig   `yaml:"input"`
	Audio       AudioConfig   `yaml:"audio"`
	DefaultGame string        `yaml:"default_game"`

	Snake        SnakeConfig        `yaml:"snake"`
	Breakout     BreakoutConfig     `yaml:"breakout"`
	Invaders     InvadersConfig     `yaml:"invaders"`
	Pong         PongConfig         `yaml:"pong"`
	Flappy       FlappyConfig       `yaml:"flappy"`
	Dino         DinoConfig         `yaml:"dino"`
	Tetris       TetrisConfig       `yaml:"tetris"`
	MemorySounds MemorySoundsConfig `yaml:"memorysounds"`
}

// SurfaceConfig is the logical drawing surface in units.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoopConfig controls the frame loop.
type LoopConfig struct {
	TickRate      int     `yaml:"tick_rate"`       // frames per second
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds
}

// InputConfig controls terminal key handling.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // synthetic key-up delay for terminals
}

// AudioConfig controls the tone player.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// SnakeConfig tunes Snake.
type SnakeConfig struct {
	Cell      float64 `yaml:"cell"`
	StepEvery float64 `yaml:"step_every"` // seconds per move
	FoodScore int     `yaml:"food_score"`
}

// BreakoutConfig tunes Breakout.
type BreakoutConfig struct {
	PaddleWidth float64 `yaml:"paddle_width"`
	PaddleSpeed float64 `yaml:"paddle_speed"`
	BallVX      float64 `yaml:"ball_vx"`
	BallVY      float64 `yaml:"ball_vy"`
	Spin        float64 `yaml:"spin"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	BrickScore  int     `yaml:"brick_score"`
}

// InvadersConfig tunes Invaders.
type InvadersConfig struct {
	ShipSpeed      float64 `yaml:"ship_speed"`
	FireCooldown   float64 `yaml:"fire_cooldown"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	FormationSpeed float64 `yaml:"formation_speed"`
	Drop           float64 `yaml:"drop"`
	HitScore       int     `yaml:"hit_score"`
}

// PongConfig tunes Pong.
type PongConfig struct {
	PaddleSpeed float64 `yaml:"paddle_speed"`
	CPUSpeed    float64 `yaml:"cpu_speed"`
	BallVX      float64 `yaml:"ball_vx"`
	BallVY      float64 `yaml:"ball_vy"`
	ServeVY     float64 `yaml:"serve_vy"`
	Spin        float64 `yaml:"spin"`
}

// FlappyConfig tunes Flappy.
type FlappyConfig struct {
	Gravity   float64 `yaml:"gravity"`
	Flap      float64 `yaml:"flap"`
	PipeSpeed float64 `yaml:"pipe_speed"`
	Gap       float64 `yaml:"gap"`
	Spacing   float64 `yaml:"spacing"`
}

// DinoConfig tunes Dino.
type DinoConfig struct {
	Gravity float64 `yaml:"gravity"`
	Jump    float64 `yaml:"jump"`
	Speed   float64 `yaml:"speed"`
	Spacing float64 `yaml:"spacing"`
}

// TetrisConfig tunes Tetris.
type TetrisConfig struct {
	FallEvery float64 `yaml:"fall_every"` // seconds per row
	SoftDrop  float64 `yaml:"soft_drop"`  // extra fall time per held frame
	LineScore int     `yaml:"line_score"`
}

// MemorySoundsConfig tunes Memory Sounds.
type MemorySoundsConfig struct {
	Pads      []float64 `yaml:"pads"` // tone per pad, Hz
	StepEvery float64   `yaml:"step_every"`
	ToneDur   float64   `yaml:"tone_duration"`
}

// Runtime returns the core view of the surface and loop settings.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:         c.Surface.Width,
		Height:        c.Surface.Height,
		TickRate:      c.Loop.TickRate,
		MaxFrameDelta: c.Loop.MaxFrameDelta,
		Seed:          seed,
	}
}

// Validate checks settings the loop and surface depend on.
func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface %gx%g", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Loop.TickRate)
	}
	if c.Loop.MaxFrameDelta <= 0 || c.Loop.MaxFrameDelta > 1 {
		return fmt.Errorf("%w: max_frame_delta %g", ErrInvalid, c.Loop.MaxFrameDelta)
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("%w: hold_ms %d", ErrInvalid, c.Input.HoldMS)
	}
	if c.DefaultGame != "" && !gameIDPattern.MatchString(c.DefaultGame) {
		return fmt.Errorf("%w: default_game %q", ErrInvalid, c.DefaultGame)
	}
	if len(c.MemorySounds.Pads) == 0 {
		return fmt.Errorf("%w: memorysounds needs at least one pad", ErrInvalid)
	}
	return nil
}
