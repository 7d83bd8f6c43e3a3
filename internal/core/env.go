package core

import (
	"math/rand"
	"sync"
)

// BestStore persists one best score per key. Missing or unreadable values
// read as 0. SetBest keeps the larger of the stored and given score, so a
// best never decreases even when sessions share a store.
type BestStore interface {
	Best(key string) int
	SetBest(key string, score int)
}

// Env is the session context injected into every game call. It replaces
// process-wide input, pause and best-score state: one Env per player.
type Env struct {
	Input  *Input
	Canvas Canvas
	Audio  Audio
	Rand   *rand.Rand

	// W and H are the logical surface size.
	W, H float64

	bests  BestStore
	key    string
	status Status
}

// NewEnv creates a session context. Nil collaborators are replaced with
// no-op ones.
func NewEnv(cfg RuntimeConfig, canvas Canvas, audio Audio, bests BestStore) *Env {
	if canvas == nil {
		canvas = Discard
	}
	if audio == nil {
		audio = Silence{}
	}
	if bests == nil {
		bests = NewMemoryBests()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	return &Env{
		Input:  NewInput(),
		Canvas: canvas,
		Audio:  audio,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		W:      cfg.Width,
		H:      cfg.Height,
		bests:  bests,
	}
}

// Bind makes key the active best-score key and puts the session in Idle.
func (e *Env) Bind(key string) {
	e.key = key
	e.status = StatusIdle
}

// Key returns the active best-score key.
func (e *Env) Key() string {
	return e.key
}

// Start enters Running. Called by reset.
func (e *Env) Start() {
	e.status = StatusRunning
}

// Status returns the current state.
func (e *Env) Status() Status {
	return e.status
}

// Paused reports whether updates are suspended. Every state but Running
// suspends them.
func (e *Env) Paused() bool {
	return e.status != StatusRunning
}

// Over reports whether the session ended.
func (e *Env) Over() bool {
	return e.status == StatusOver
}

// Pause suspends a running session.
func (e *Env) Pause() {
	if e.status == StatusRunning {
		e.status = StatusPaused
	}
}

// Resume continues a paused session.
func (e *Env) Resume() {
	if e.status == StatusPaused {
		e.status = StatusRunning
	}
}

// TogglePause flips between Running and Paused; other states ignore it.
func (e *Env) TogglePause() {
	switch e.status {
	case StatusRunning:
		e.status = StatusPaused
	case StatusPaused:
		e.status = StatusRunning
	}
}

// GameOver ends the session and offers score as the new best. Repeated
// calls in the same session do nothing.
func (e *Env) GameOver(score int) {
	if e.status == StatusOver {
		return
	}
	e.status = StatusOver
	e.SetBest(score)
}

// Best returns the stored best for the active key.
func (e *Env) Best() int {
	if e.key == "" {
		return 0
	}
	return e.bests.Best(e.key)
}

// SetBest offers v as the best for the active key.
func (e *Env) SetBest(v int) {
	if e.key == "" {
		return
	}
	e.bests.SetBest(e.key, v)
}

// Tone plays a tone through the audio collaborator.
func (e *Env) Tone(freqHz, durSeconds float64) {
	e.Audio.PlayTone(freqHz, durSeconds)
}

// Chance returns true with probability p.
func (e *Env) Chance(p float64) bool {
	return e.Rand.Float64() < p
}

// MemoryBests is an in-process BestStore.
type MemoryBests struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryBests creates an empty store.
func NewMemoryBests() *MemoryBests {
	return &MemoryBests{scores: make(map[string]int)}
}

// Best returns the stored score or 0.
func (m *MemoryBests) Best(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[key]
}

// SetBest keeps the larger of the stored and given score.
func (m *MemoryBests) SetBest(key string, score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[key] = max(m.scores[key], score)
}
