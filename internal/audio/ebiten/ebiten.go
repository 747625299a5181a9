// Package ebiten plays audio through an Ebiten audio.Context.
package ebiten

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	sweepaudio "chosenoffset.com/sonarsweep/internal/audio"
)

// bytesPerFrame is 16-bit little-endian stereo.
const bytesPerFrame = 4

// Mixer implements audio.Mixer on an Ebiten audio context.
type Mixer struct {
	ctx *audio.Context
}

// NewMixer creates the process-wide audio context. Ebiten allows only one
// context, so call this once.
func NewMixer(sampleRate int) *Mixer {
	return &Mixer{ctx: audio.NewContext(sampleRate)}
}

// SampleRate returns the context's sample rate.
func (m *Mixer) SampleRate() int {
	return m.ctx.SampleRate()
}

// LoopSamples encodes mono samples as PCM and loops them. The PCM is
// normalized to full scale and the voice multiplies every volume by the
// original peak, so SetVolume(v) plays the samples at v times their
// given amplitude, up to full scale.
func (m *Mixer) LoopSamples(samples []float64) (sweepaudio.Voice, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("audio: no samples to loop")
	}
	pcm, peak := encodePCM(samples)
	return m.loop(bytes.NewReader(pcm), int64(len(pcm)), peak)
}

// LoopFile decodes an .ogg or .wav file at the context's sample rate and
// loops it.
func (m *Mixer) LoopFile(path string) (sweepaudio.Voice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to read %s: %w", path, err)
	}

	var (
		stream io.ReadSeeker
		length int64
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("audio: failed to decode %s: %w", path, err)
		}
		stream, length = s, s.Length()
	case ".wav":
		s, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("audio: failed to decode %s: %w", path, err)
		}
		stream, length = s, s.Length()
	default:
		return nil, fmt.Errorf("audio: unsupported format %q for %s", ext, path)
	}

	return m.loop(stream, length, 1)
}

func (m *Mixer) loop(src io.ReadSeeker, length int64, gain float64) (sweepaudio.Voice, error) {
	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(src, length))
	if err != nil {
		return nil, fmt.Errorf("audio: failed to create player: %w", err)
	}
	return &voice{player: player, gain: gain}, nil
}

// encodePCM normalizes samples by their peak and writes them to both
// channels. It returns the peak it divided by.
func encodePCM(samples []float64) ([]byte, float64) {
	peak := sweepaudio.Peak(samples)
	if peak == 0 {
		peak = 1
	}

	buf := make([]byte, len(samples)*bytesPerFrame)
	for i, s := range samples {
		v := int16(math.Round(s / peak * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(v))
	}
	return buf, peak
}

// playerVolume is the player volume that plays normalized PCM at volume
// times its original amplitude.
func playerVolume(volume, gain float64) float64 {
	return sweepaudio.ClampVolume(volume * gain)
}

type voice struct {
	player *audio.Player
	gain   float64
}

// Play starts or resumes the loop.
func (v *voice) Play() { v.player.Play() }

// IsPlaying reports whether the loop is running.
func (v *voice) IsPlaying() bool { return v.player.IsPlaying() }

// SetVolume scales the loop's original amplitude, clamped to full scale.
func (v *voice) SetVolume(volume float64) {
	v.player.SetVolume(playerVolume(volume, v.gain))
}

// Close stops the loop and releases the player.
func (v *voice) Close() error { return v.player.Close() }
