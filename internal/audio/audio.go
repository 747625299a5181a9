// Package audio defines the sample playback facilities a screen needs and
// synthesizes the procedural loops the game plays.
package audio

// Voice is a looping sample being played by a Mixer.
type Voice interface {
	Play()
	IsPlaying() bool
	// SetVolume sets the playback gain. Values are clamped to [0, 1].
	SetVolume(volume float64)
	Close() error
}

// Mixer creates looping voices.
type Mixer interface {
	// SampleRate is the rate LoopSamples expects its samples in.
	SampleRate() int
	// LoopSamples loops mono samples. Samples are normalized by their peak
	// before playback, so any amplitude is accepted.
	LoopSamples(samples []float64) (Voice, error)
	// LoopFile decodes an Ogg Vorbis or WAV file and loops it.
	LoopFile(path string) (Voice, error)
}

// ClampVolume limits a gain to the range a Voice accepts.
func ClampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
