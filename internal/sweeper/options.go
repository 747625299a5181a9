package sweeper

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/sonarsweep/internal/audio"
	"chosenoffset.com/sonarsweep/internal/minesweeper"
)

// Option configures a Screen during construction.
type Option func(*Screen)

// WithSeed uses one generator seeded with seed for every round, so a
// session replays the same sequence of boards.
func WithSeed(seed int64) Option {
	return func(s *Screen) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game board layout
		s.seed = seed
	}
}

// WithRand uses rng for every round.
func WithRand(rng *rand.Rand) Option {
	return func(s *Screen) {
		s.rng = rng
	}
}

// WithLogger sets the logger for round events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

// WithRecorder reports every finished round to r.
func WithRecorder(r RoundRecorder) Option {
	return func(s *Screen) {
		s.recorder = r
	}
}

// WithMixer enables sound. Without a mixer the screen is silent.
func WithMixer(m audio.Mixer) Option {
	return func(s *Screen) {
		s.mixer = m
	}
}

// WithAmbient loops the sound file at path behind the game instead of the
// synthesized sandstorm.
func WithAmbient(path string, volume float64) Option {
	return func(s *Screen) {
		s.ambientPath = path
		s.ambientVolume = volume
	}
}

// WithSonar enables or disables the proximity tone and sets its falloff.
func WithSonar(enabled bool, falloff float64) Option {
	return func(s *Screen) {
		s.sonarEnabled = enabled
		s.falloff = falloff
	}
}

// WithLayout places the board. The layout's Size sets the board size.
func WithLayout(l minesweeper.Layout) Option {
	return func(s *Screen) {
		s.layout = l
	}
}

// WithMines sets how many mines each round seeds.
func WithMines(n int) Option {
	return func(s *Screen) {
		s.mines = n
	}
}

// WithClock replaces time.Now for seeding and round timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Screen) {
		s.now = now
	}
}
