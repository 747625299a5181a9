// Package audiotest provides an in-memory audio.Mixer for tests.
package audiotest

import (
	"errors"

	"chosenoffset.com/sonarsweep/internal/audio"
)

// Voice records calls made on it.
type Voice struct {
	Samples []float64
	Path    string
	Playing bool
	Plays   int
	Volume  float64
	Volumes []float64
	Closed  bool
}

// Play marks the voice as playing.
func (v *Voice) Play() {
	v.Playing = true
	v.Plays++
}

// IsPlaying reports whether Play was called since the last Close.
func (v *Voice) IsPlaying() bool { return v.Playing }

// SetVolume records the requested volume and keeps the clamped value.
func (v *Voice) SetVolume(volume float64) {
	v.Volume = audio.ClampVolume(volume)
	v.Volumes = append(v.Volumes, volume)
}

// Close marks the voice as closed and stopped.
func (v *Voice) Close() error {
	v.Closed = true
	v.Playing = false
	return nil
}

// Mixer hands out Voices and remembers them in creation order. Files listed
// in Missing fail to load.
type Mixer struct {
	Rate    int
	Voices  []*Voice
	Missing map[string]bool
}

// ErrMissing is returned by LoopFile for paths in Mixer.Missing.
var ErrMissing = errors.New("audiotest: missing file")

// SampleRate returns Rate, or 48000 when Rate is unset.
func (m *Mixer) SampleRate() int {
	if m.Rate == 0 {
		return 48000
	}
	return m.Rate
}

// LoopSamples returns a new Voice holding samples.
func (m *Mixer) LoopSamples(samples []float64) (audio.Voice, error) {
	v := &Voice{Samples: samples, Volume: 1}
	m.Voices = append(m.Voices, v)
	return v, nil
}

// LoopFile returns a new Voice for path, or ErrMissing.
func (m *Mixer) LoopFile(path string) (audio.Voice, error) {
	if m.Missing[path] {
		return nil, ErrMissing
	}
	v := &Voice{Path: path, Volume: 1}
	m.Voices = append(m.Voices, v)
	return v, nil
}
