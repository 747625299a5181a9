package minesweeper

import "math/rand"

// DefaultMines is the number of mines seeded each round.
const DefaultMines = 10

// Outcome summarises where a round stands.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// State is the mutable state of one round.
type State struct {
	grid        *Grid
	mines       int
	mineCount   int // mines not yet flagged
	wrongMarked int // blanks carrying a flag
	elapsed     float64
	finished    bool
}

// NewState creates an empty state for a size x size board with the given
// number of mines. Call Reset before playing.
func NewState(size, mines int) *State {
	return &State{
		grid:      NewGrid(size),
		mines:     mines,
		mineCount: mines,
	}
}

// Reset starts a new round: counters cleared, grid refilled and reseeded.
func (s *State) Reset(rng *rand.Rand) {
	s.elapsed = 0
	s.mineCount = s.mines
	s.wrongMarked = 0
	s.finished = false
	s.grid.Fill(BlankHidden)
	s.grid.seedMines(rng, s.mines)
}

// Grid exposes the board for drawing and the sonar.
func (s *State) Grid() *Grid { return s.grid }

// MineCount returns the number of mines still unflagged.
func (s *State) MineCount() int { return s.mineCount }

// WrongMarked returns the number of blanks carrying a flag.
func (s *State) WrongMarked() int { return s.wrongMarked }

// Elapsed returns the round time in seconds.
func (s *State) Elapsed() float64 { return s.elapsed }

// Finished reports whether the round is over.
func (s *State) Finished() bool { return s.finished }

// Outcome reports win, loss or still playing. A finished round with no
// unflagged mines is a win.
func (s *State) Outcome() Outcome {
	switch {
	case !s.finished:
		return OutcomePlaying
	case s.mineCount == 0:
		return OutcomeWon
	default:
		return OutcomeLost
	}
}

// Advance adds dt seconds to the round clock unless the round is over.
func (s *State) Advance(dt float64) {
	if !s.finished {
		s.elapsed += dt
	}
}

// Reveal handles a left click on (x, y). Revealing a hidden mine ends the
// round: every mine explodes and every other blank is uncovered. It
// reports whether anything changed.
func (s *State) Reveal(x, y int) bool {
	if s.finished || !s.grid.InBounds(x, y) {
		return false
	}
	switch s.grid.At(x, y) {
	case MineHidden:
		s.grid.apply(ActionSweep)
		s.finished = true
		return true
	case BlankHidden:
		s.grid.Set(x, y, Apply(BlankHidden, ActionReveal))
		s.checkWin()
		return true
	}
	return false
}

// ToggleFlag handles a right click on (x, y) and reports whether anything
// changed.
func (s *State) ToggleFlag(x, y int) bool {
	if s.finished || !s.grid.InBounds(x, y) {
		return false
	}
	before := s.grid.At(x, y)
	after := Apply(before, ActionToggleFlag)
	if after == before {
		return false
	}
	s.grid.Set(x, y, after)

	switch before {
	case MineHidden:
		s.mineCount--
	case MineMarked:
		s.mineCount++
	case BlankHidden:
		s.wrongMarked++
	case BlankWrongMarked:
		s.wrongMarked--
	}
	s.checkWin()
	return true
}

// checkWin ends the round once all and only the mines are flagged.
func (s *State) checkWin() {
	if s.mineCount == 0 && s.wrongMarked == 0 {
		s.finished = true
	}
}
