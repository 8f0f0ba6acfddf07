// Package audio taps a playing stream so its loudness can steer the sweep.
package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring
// buffer. The speaker goroutine writes through Stream while the game loop
// reads Snapshot and Level.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    bool
	level     float64
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, max(1, ringSize)),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
				t.filled = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n recorded samples, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	recorded := t.nextIndex
	if t.filled {
		recorded = len(t.buffer)
	}
	n = min(n, recorded)
	out := make([][2]float64, n)
	idx := t.nextIndex
	for i := n - 1; i >= 0; i-- {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out[i] = t.buffer[idx]
	}
	return out
}

// Level returns the smoothed loudness of the last window samples in [0, 1].
// Each call blends the new reading into the previous one by smoothing.
func (t *Tap) Level(window int, smoothing float64) float64 {
	samples := t.Snapshot(window)
	mag := 0.0
	if len(samples) > 0 {
		var sumSquares float64
		for _, s := range samples {
			mono := (s[0] + s[1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(len(samples)))
		mag = math.Min(1, math.Pow(rms, 0.3))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = smoothing*t.level + (1-smoothing)*mag
	return t.level
}
