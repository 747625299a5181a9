// Package storage keeps the history of finished rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"chosenoffset.com/sonarsweep/internal/minesweeper"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is one stored round.
type Round struct {
	ID         int64
	Outcome    minesweeper.Outcome
	Elapsed    float64
	Size       int
	Mines      int
	MinesLeft  int
	Seed       int64
	FinishedAt time.Time
}

// Tally counts finished rounds by outcome.
type Tally struct {
	Wins   int
	Losses int
}

// Total returns the number of recorded rounds.
func (t Tally) Total() int { return t.Wins + t.Losses }

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			elapsed REAL NOT NULL,
			size INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			mines_left INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(outcome, size, mines, elapsed);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round. Rounds still in play are rejected.
func (s *Store) SaveRound(ctx context.Context, r minesweeper.Result) error {
	if r.Outcome == minesweeper.OutcomePlaying {
		return fmt.Errorf("storage: round is not finished")
	}
	finishedAt := r.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (outcome, elapsed, size, mines, mines_left, seed, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Outcome.String(), r.Elapsed, r.Size, r.Mines, r.MinesLeft, r.Seed, finishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

// BestTimes returns the fastest winning rounds on a size x size board with
// the given number of mines, fastest first.
func (s *Store) BestTimes(ctx context.Context, size, mines, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, elapsed, size, mines, mines_left, seed, finished_at
		 FROM rounds
		 WHERE outcome = ? AND size = ? AND mines = ?
		 ORDER BY elapsed ASC, id ASC
		 LIMIT ?`,
		minesweeper.OutcomeWon.String(), size, mines, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		r := Round{Outcome: minesweeper.OutcomeWon}
		var finishedAt int64
		if err := rows.Scan(&r.ID, &r.Elapsed, &r.Size, &r.Mines, &r.MinesLeft, &r.Seed, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinishedAt = time.UnixMilli(finishedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// Tally counts wins and losses across every board.
func (s *Store) Tally(ctx context.Context) (Tally, error) {
	var t Tally
	err := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		 FROM rounds`,
		minesweeper.OutcomeWon.String(), minesweeper.OutcomeLost.String(),
	).Scan(&t.Wins, &t.Losses)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return t, nil
}
