package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// releaseTime is the fade at the end of every tone; it keeps short beeps
// from clicking.
const releaseTime = 30 * time.Millisecond

// tone is a sine oscillator with a linear release envelope.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	release  int
}

// newTone creates a tone of the given length. Non-positive frequencies or
// durations produce an empty stream.
func newTone(freq float64, dur time.Duration, rate beep.SampleRate) *tone {
	total := 0
	if freq > 0 && dur > 0 {
		total = rate.N(dur)
	}
	release := rate.N(releaseTime)
	if release > total {
		release = total
	}
	return &tone{freq: freq, rate: rate, total: total, release: release}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := math.Sin(2*math.Pi*t.phase) * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

// gain is 1 until the release window, then falls linearly to 0.
func (t *tone) gain() float64 {
	left := t.total - t.position
	if t.release == 0 || left > t.release {
		return 1
	}
	return float64(left) / float64(t.release)
}

func (t *tone) Err() error { return nil }
