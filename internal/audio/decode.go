package audio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Patterns lists the file globs Decode understands.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Decode picks a decoder from the extension of name. The returned streamer
// owns rc and closes it.
func Decode(name string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(rc)
	case ".mp3":
		streamer, format, err = mp3.Decode(rc)
	case ".flac":
		streamer, format, err = flac.Decode(rc)
	default:
		_ = rc.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = rc.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return streamer, format, nil
}
