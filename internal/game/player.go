package game

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/times-circle/internal/audio"
	"github.com/iburimskiy/times-circle/internal/config"
)

// player plays one track at a time through the speaker and keeps a tap on
// it for the loudness reading.
type player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *audio.Tap

	ended    atomic.Bool
	paused   bool
	initDone bool
}

func newPlayer() *player { return &player{} }

func (pl *player) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}
	streamer, format, err := audio.Decode(path, f)
	if err != nil {
		return err
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !pl.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		pl.initDone = true
	case pl.format.SampleRate != format.SampleRate:
		// Re-init when sample rate changes
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	pl.closeStreamer()

	// streamer -> tap -> ctrl
	tap := audio.NewTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	pl.streamer = streamer
	pl.format = format
	pl.ctrl = ctrl
	pl.tap = tap
	pl.paused = false
	pl.ended.Store(false)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		pl.ended.Store(true)
	})))
	return nil
}

func (pl *player) playing() bool {
	return pl.tap != nil && !pl.paused && !pl.ended.Load()
}

func (pl *player) level() float64 {
	if pl.tap == nil {
		return 0
	}
	return pl.tap.Level(config.LevelWindow, config.SmoothingFactor)
}

func (pl *player) togglePause() {
	if pl.ctrl == nil {
		return
	}
	speaker.Lock()
	pl.paused = !pl.paused
	pl.ctrl.Paused = pl.paused
	speaker.Unlock()
}

// progress reports the playback position of the current track.
func (pl *player) progress() (pos, total time.Duration, ok bool) {
	if pl.streamer == nil {
		return 0, 0, false
	}
	speaker.Lock()
	p, n := pl.streamer.Position(), pl.streamer.Len()
	speaker.Unlock()
	return pl.format.SampleRate.D(p), pl.format.SampleRate.D(n), true
}

func (pl *player) stop() {
	if pl.streamer == nil {
		return
	}
	speaker.Clear()
	pl.closeStreamer()
}

func (pl *player) closeStreamer() {
	if pl.streamer != nil {
		_ = pl.streamer.Close()
	}
	pl.streamer = nil
	pl.ctrl = nil
	pl.tap = nil
}
