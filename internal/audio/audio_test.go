package audio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant streams value on both channels for a fixed number of samples.
type constant struct {
	value float64
	left  int
	next  float64
	ramp  bool
}

func (c *constant) Stream(samples [][2]float64) (int, bool) {
	if c.left <= 0 {
		return 0, false
	}
	n := min(len(samples), c.left)
	for i := 0; i < n; i++ {
		v := c.value
		if c.ramp {
			v = c.next
			c.next++
		}
		samples[i] = [2]float64{v, v}
	}
	c.left -= n
	return n, true
}

func (c *constant) Err() error { return nil }

func drain(t *testing.T, s beep.Streamer) {
	t.Helper()
	buf := make([][2]float64, 64)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

func TestTapSnapshotOrder(t *testing.T) {
	tap := NewTap(&constant{left: 10, ramp: true}, 4)
	drain(t, tap)

	got := tap.Snapshot(3)
	assert.Equal(t, [][2]float64{{7, 7}, {8, 8}, {9, 9}}, got)
	assert.Len(t, tap.Snapshot(100), 4)
}

func TestTapSnapshotPartial(t *testing.T) {
	tap := NewTap(&constant{left: 2, ramp: true}, 8)
	drain(t, tap)
	assert.Equal(t, [][2]float64{{0, 0}, {1, 1}}, tap.Snapshot(5))
	assert.Empty(t, NewTap(&constant{}, 8).Snapshot(5))
}

func TestTapLevel(t *testing.T) {
	silent := NewTap(&constant{left: 100}, 128)
	drain(t, silent)
	assert.Zero(t, silent.Level(64, 0))

	loud := NewTap(&constant{value: 1, left: 100}, 128)
	drain(t, loud)
	assert.InDelta(t, 1, loud.Level(64, 0), 1e-9)

	smoothed := NewTap(&constant{value: 1, left: 100}, 128)
	drain(t, smoothed)
	assert.InDelta(t, 0.5, smoothed.Level(64, 0.5), 1e-9)
	assert.InDelta(t, 0.75, smoothed.Level(64, 0.5), 1e-9)
}

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

func TestDecodeUnsupported(t *testing.T) {
	_, _, err := Decode("song.ogg", nopCloser{strings.NewReader("")})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeCorrupt(t *testing.T) {
	_, _, err := Decode("song.WAV", nopCloser{strings.NewReader("not a wave file")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "song.WAV")
}

func TestDecodeWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, &constant{value: 0.25, left: 800}, format))
	require.NoError(t, f.Close())

	rc, err := os.Open(path)
	require.NoError(t, err)
	streamer, got, err := Decode(path, rc)
	require.NoError(t, err)
	defer streamer.Close()

	assert.Equal(t, format.SampleRate, got.SampleRate)
	assert.Equal(t, 800, streamer.Len())
}
