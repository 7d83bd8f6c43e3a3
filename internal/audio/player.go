// Package audio plays the short sine tones the games emit, mixed
// through the gopxl/beep speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// DefaultSampleRate is used when the configured rate is not positive.
const DefaultSampleRate = 44100

// maxVoices bounds how many tones may overlap.
const maxVoices = 8

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

var _ core.Audio = (*Player)(nil)

// Player is a tone player backed by the system speaker.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewPlayer initializes the speaker and starts an empty mixer.
// volume is linear in [0, 1].
func NewPlayer(sampleRate int, volume float64) (*Player, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	rate := beep.SampleRate(sampleRate)

	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", speakerErr)
	}

	p := &Player{
		rate:   speakerRate,
		volume: clampVolume(volume),
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// PlayTone starts a tone and returns immediately.
func (p *Player) PlayTone(freqHz, durSeconds float64) {
	if freqHz <= 0 || durSeconds <= 0 {
		return
	}
	s := p.streamer(freqHz, time.Duration(durSeconds*float64(time.Second)))

	speaker.Lock()
	defer speaker.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(s)
}

func (p *Player) streamer(freq float64, dur time.Duration) beep.Streamer {
	return withVolume(beep.Take(p.rate.N(dur), newTone(freq, dur, p.rate)), p.volume)
}

// Close silences the player. The speaker stays initialized.
func (p *Player) Close() error {
	speaker.Lock()
	defer speaker.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.mixer.Clear()
	return nil
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// withVolume scales s by a linear volume.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
