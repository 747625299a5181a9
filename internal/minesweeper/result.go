package minesweeper

import "time"

// Result summarises a finished round for the history.
type Result struct {
	Outcome     Outcome
	Elapsed     float64 // seconds
	Size        int
	Mines       int
	MinesLeft   int // unflagged mines when the round ended
	WrongMarked int
	Seed        int64
	FinishedAt  time.Time
}

// Result captures the current round. Seed and FinishedAt are left for the
// caller, which owns the random source and the clock.
func (s *State) Result() Result {
	return Result{
		Outcome:     s.Outcome(),
		Elapsed:     s.elapsed,
		Size:        s.grid.Size(),
		Mines:       s.mines,
		MinesLeft:   s.mineCount,
		WrongMarked: s.wrongMarked,
	}
}
