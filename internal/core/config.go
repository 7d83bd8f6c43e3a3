package core

import "math"

// RuntimeConfig describes the logical surface and loop a session runs on.
type RuntimeConfig struct {
	Width         float64 // Logical surface width
	Height        float64 // Logical surface height
	TickRate      int     // Frames per second requested from the front end
	MaxFrameDelta float64 // Upper bound on a frame's dt, seconds
	Seed          int64   // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with the arcade's defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:         960,
		Height:        540,
		TickRate:      60,
		MaxFrameDelta: 0.033,
	}
}

// Status is the session state shown on the HUD.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

// String returns the HUD text for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Score is a session score. Some variants accrue points per second, so the
// running value is fractional; the reported score is its floor.
type Score float64

// Int returns the reported integer score.
func (s Score) Int() int {
	return int(math.Floor(float64(s)))
}
