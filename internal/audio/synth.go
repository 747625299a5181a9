package audio

import (
	"math"
	"math/rand"
)

// SonarToneLength is the length of one sonar tone loop, in samples.
const SonarToneLength = 48000

// SonarTone synthesizes n samples of the sonar cue at the given rate: a
// 220 Hz carrier phase-modulated at 200 Hz, with a 1 Hz tremolo.
func SonarTone(n, rate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		carrier := math.Sin(2*math.Pi*220*t + math.Sin(2*math.Pi*200*t))
		out[i] = carrier * (2 + 0.4*math.Sin(2*math.Pi*t))
	}
	return out
}

// Sandstorm synthesizes n samples of low-passed noise with slow gusts. The
// gust envelope completes a whole number of cycles so the loop is seamless
// in loudness. The result peaks at full scale.
func Sandstorm(n, rate int, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	seconds := float64(n) / float64(rate)
	gusts := math.Max(1, math.Round(seconds/2))
	// one-pole low-pass around 600 Hz
	alpha := 1 - math.Exp(-2*math.Pi*600/float64(rate))

	var lp float64
	for i := range out {
		lp += alpha * (rng.Float64()*2 - 1 - lp)
		phase := 2 * math.Pi * gusts * float64(i) / float64(n)
		envelope := 0.6 + 0.4*math.Sin(phase)
		out[i] = lp * envelope
	}

	if peak := Peak(out); peak > 0 {
		for i := range out {
			out[i] /= peak
		}
	}
	return out
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s))
	}
	return peak
}
