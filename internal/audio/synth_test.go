package audio

import (
	"math"
	"math/rand"
	"testing"
)

func TestSonarTone(t *testing.T) {
	samples := SonarTone(SonarToneLength, 48000)

	if len(samples) != SonarToneLength {
		t.Fatalf("Expected %d samples, got %d", SonarToneLength, len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("Expected the tone to start at 0, got %v", samples[0])
	}

	for _, i := range []int{1, 1234, 24000, 47999} {
		tt := float64(i) / 48000
		want := math.Sin(2*math.Pi*220*tt+math.Sin(2*math.Pi*200*tt)) * (2 + 0.4*math.Sin(2*math.Pi*tt))
		if math.Abs(samples[i]-want) > 1e-12 {
			t.Errorf("Sample %d: expected %v, got %v", i, want, samples[i])
		}
	}

	if peak := Peak(samples); peak > 2.4 || peak < 2.0 {
		t.Errorf("Expected peak between 2.0 and 2.4, got %v", peak)
	}
}

func TestSandstorm(t *testing.T) {
	a := Sandstorm(44100, 44100, rand.New(rand.NewSource(7)))
	b := Sandstorm(44100, 44100, rand.New(rand.NewSource(7)))

	if len(a) != 44100 {
		t.Fatalf("Expected 44100 samples, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical output for equal seeds, differs at %d", i)
		}
	}
	if peak := Peak(a); math.Abs(peak-1) > 1e-9 {
		t.Errorf("Expected full-scale peak, got %v", peak)
	}

	if got := Sandstorm(0, 44100, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Errorf("Expected no samples, got %d", len(got))
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3.7, 1},
	}
	for _, tt := range tests {
		if got := ClampVolume(tt.in); got != tt.want {
			t.Errorf("ClampVolume(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
