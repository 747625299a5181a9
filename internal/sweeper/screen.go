// Package sweeper is the minesweeper game-mode screen: it turns input
// events into reveals and flags, drives the sonar tone from the cursor's
// distance to hidden mines, and draws the board and HUD each frame.
//
// Board coordinates have a bottom-left origin. Events arrive in window
// coordinates and are flipped on entry; drawing flips back on exit.
package sweeper

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/sonarsweep/internal/atlas"
	"chosenoffset.com/sonarsweep/internal/audio"
	"chosenoffset.com/sonarsweep/internal/minesweeper"
	"chosenoffset.com/sonarsweep/internal/render"
)

// sandstormSeconds is the length of the synthesized ambient loop.
const sandstormSeconds = 4

// cursor sprite offset from the pointer
const (
	sweeperOffsetX = 20
	sweeperOffsetY = 13
)

var (
	backgroundColor = color.RGBA{R: 255, G: 248, B: 225, A: 255}
	textColor       = color.RGBA{A: 255}
	wonColor        = color.RGBA{R: 255, A: 255}
)

// RoundRecorder stores finished rounds.
type RoundRecorder interface {
	SaveRound(ctx context.Context, r minesweeper.Result) error
}

// Screen is the minesweeper game mode.
type Screen struct {
	renderer render.Renderer
	atlas    *atlas.Atlas
	layout   minesweeper.Layout
	mines    int
	state    *minesweeper.State

	cursorX, cursorY int // bottom-left origin
	pendingRestart   bool
	recorded         bool

	rng  *rand.Rand // nil means a fresh clock-seeded generator per round
	seed int64
	now  func() time.Time

	mixer         audio.Mixer
	ambientPath   string
	ambientVolume float64
	ambient       audio.Voice
	sonarEnabled  bool
	falloff       float64
	sonar         audio.Voice

	logger   *log.Logger
	recorder RoundRecorder
}

// NewScreen creates the screen. The first round starts on the first
// Update.
func NewScreen(r render.Renderer, a *atlas.Atlas, opts ...Option) (*Screen, error) {
	s := &Screen{
		renderer:       r,
		atlas:          a,
		layout:         minesweeper.DefaultLayout(),
		mines:          minesweeper.DefaultMines,
		pendingRestart: true,
		now:            time.Now,
		ambientVolume:  1,
		sonarEnabled:   true,
		falloff:        minesweeper.DefaultSonarFalloff,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if err := a.Require(
		minesweeper.SpriteBlock,
		minesweeper.SpriteChosenBlock,
		minesweeper.SpriteRedFlag,
		minesweeper.SpriteMine,
		minesweeper.SpriteSweeper,
	); err != nil {
		return nil, err
	}
	if err := s.layout.Validate(); err != nil {
		return nil, fmt.Errorf("sweeper: %w", err)
	}
	if s.mines <= 0 || s.mines >= s.layout.Size*s.layout.Size {
		return nil, fmt.Errorf("sweeper: %d mines do not fit a %dx%d board", s.mines, s.layout.Size, s.layout.Size)
	}

	s.state = minesweeper.NewState(s.layout.Size, s.mines)
	return s, nil
}

// State exposes the current round.
func (s *Screen) State() *minesweeper.State { return s.state }

// Cursor returns the last pointer position, bottom-left origin.
func (s *Screen) Cursor() (x, y int) { return s.cursorX, s.cursorY }

// RequestRestart schedules a new round for the next Update.
func (s *Screen) RequestRestart() {
	s.pendingRestart = true
	s.logger.Debug("restart requested")
}

// HandleEvent applies one input event. viewport is the window size. The
// screen never consumes events, so it always returns false.
func (s *Screen) HandleEvent(evt Event, viewport image.Point) bool {
	switch evt.Kind {
	case EventKeyUp:
		if evt.Key == render.KeyR {
			s.RequestRestart()
		}
	case EventPointerMove:
		s.cursorX, s.cursorY = evt.X, viewport.Y-evt.Y
	case EventButtonUp:
		if s.state.Finished() {
			break
		}
		x, y, ok := s.layout.CellAt(evt.X, viewport.Y-evt.Y)
		if !ok {
			break
		}
		switch evt.Button {
		case render.MouseButtonLeft:
			s.state.Reveal(x, y)
		case render.MouseButtonRight:
			s.state.ToggleFlag(x, y)
		}
	}
	return false
}

// Update advances the screen by dt seconds.
func (s *Screen) Update(dt float64) error {
	if s.pendingRestart {
		// a round can end and be restarted within one tick
		s.recordFinished()
		if err := s.startRound(); err != nil {
			return err
		}
	}

	if s.sonar != nil {
		cx, cy := float64(s.cursorX), float64(s.cursorY)
		s.sonar.SetVolume(minesweeper.SonarIntensity(s.state.Grid(), s.layout, cx, cy, s.falloff))
	}

	s.state.Advance(dt)
	s.recordFinished()
	return nil
}

// recordFinished reports the current round once it has ended.
func (s *Screen) recordFinished() {
	if s.state.Finished() && !s.recorded {
		s.recorded = true
		s.finishRound()
	}
}

func (s *Screen) startRound() error {
	s.pendingRestart = false
	s.recorded = false

	if err := s.startAudio(); err != nil {
		return err
	}

	rng := s.rng
	if rng == nil {
		s.seed = s.now().UnixNano()
		rng = rand.New(rand.NewSource(s.seed)) // #nosec G404 -- game board layout
	}
	s.state.Reset(rng)

	s.logger.Info("round started", "size", s.layout.Size, "mines", s.mines, "seed", s.seed)
	return nil
}

// startAudio creates the loops on first use and keeps them playing.
func (s *Screen) startAudio() error {
	if s.mixer == nil {
		return nil
	}

	if s.ambient == nil {
		voice, err := s.loadAmbient()
		if err != nil {
			return err
		}
		voice.SetVolume(s.ambientVolume)
		s.ambient = voice
	}
	if !s.ambient.IsPlaying() {
		s.ambient.Play()
	}

	if s.sonarEnabled && s.sonar == nil {
		rate := s.mixer.SampleRate()
		voice, err := s.mixer.LoopSamples(audio.SonarTone(audio.SonarToneLength, rate))
		if err != nil {
			return fmt.Errorf("sweeper: failed to start sonar: %w", err)
		}
		voice.SetVolume(0)
		voice.Play()
		s.sonar = voice
	}
	return nil
}

func (s *Screen) loadAmbient() (audio.Voice, error) {
	if s.ambientPath != "" {
		voice, err := s.mixer.LoopFile(s.ambientPath)
		if err != nil {
			return nil, fmt.Errorf("sweeper: failed to load ambient sound: %w", err)
		}
		return voice, nil
	}

	rate := s.mixer.SampleRate()
	noise := audio.Sandstorm(sandstormSeconds*rate, rate, rand.New(rand.NewSource(1))) // #nosec G404 -- noise
	voice, err := s.mixer.LoopSamples(noise)
	if err != nil {
		return nil, fmt.Errorf("sweeper: failed to start ambient sound: %w", err)
	}
	return voice, nil
}

func (s *Screen) finishRound() {
	result := s.state.Result()
	result.Seed = s.seed
	result.FinishedAt = s.now()

	s.logger.Info("round finished",
		"outcome", result.Outcome,
		"time", fmt.Sprintf("%.1fs", result.Elapsed),
		"mines_left", result.MinesLeft)

	if s.recorder == nil {
		return
	}
	if err := s.recorder.SaveRound(context.Background(), result); err != nil {
		s.logger.Warn("failed to record round", "err", err)
	}
}

// Close stops and releases the sound loops.
func (s *Screen) Close() error {
	var firstErr error
	for _, v := range []audio.Voice{s.sonar, s.ambient} {
		if v == nil {
			continue
		}
		if err := v.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.sonar, s.ambient = nil, nil
	return firstErr
}
