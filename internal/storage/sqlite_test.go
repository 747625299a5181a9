package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chosenoffset.com/sonarsweep/internal/minesweeper"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func won(elapsed float64) minesweeper.Result {
	return minesweeper.Result{Outcome: minesweeper.OutcomeWon, Elapsed: elapsed, Size: 6, Mines: 10}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestBestTimes(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	finished := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	rounds := []minesweeper.Result{
		won(42.5),
		won(12.25),
		won(30),
		{Outcome: minesweeper.OutcomeLost, Elapsed: 1, Size: 6, Mines: 10},
		{Outcome: minesweeper.OutcomeWon, Elapsed: 5, Size: 8, Mines: 10},
	}
	rounds[1].Seed = 99
	rounds[1].FinishedAt = finished
	for _, r := range rounds {
		if err := store.SaveRound(ctx, r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	best, err := store.BestTimes(ctx, 6, 10, 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(best))
	}
	if best[0].Elapsed != 12.25 || best[1].Elapsed != 30 {
		t.Errorf("Expected 12.25 then 30, got %v then %v", best[0].Elapsed, best[1].Elapsed)
	}
	if best[0].Seed != 99 || !best[0].FinishedAt.Equal(finished) {
		t.Errorf("Expected seed and finish time preserved, got %+v", best[0])
	}
	if best[0].Outcome != minesweeper.OutcomeWon {
		t.Errorf("Expected a won round, got %v", best[0].Outcome)
	}

	all, err := store.BestTimes(ctx, 6, 10, 0)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 wins on the 6x6 board, got %d", len(all))
	}
}

func TestTally(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tally, err := store.Tally(ctx)
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Total() != 0 {
		t.Errorf("Expected an empty tally, got %+v", tally)
	}

	for _, r := range []minesweeper.Result{
		won(10),
		{Outcome: minesweeper.OutcomeLost, Size: 6, Mines: 10},
		{Outcome: minesweeper.OutcomeLost, Size: 6, Mines: 10},
	} {
		if err := store.SaveRound(ctx, r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	tally, err = store.Tally(ctx)
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Wins != 1 || tally.Losses != 2 || tally.Total() != 3 {
		t.Errorf("Expected 1 win and 2 losses, got %+v", tally)
	}
}

func TestSaveRoundRejectsUnfinished(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveRound(context.Background(), minesweeper.Result{Outcome: minesweeper.OutcomePlaying})
	if err == nil {
		t.Error("Expected error for a round in play")
	}
}

func TestStoreFeedsRecorder(t *testing.T) {
	store := openTestStore(t)
	s := minesweeper.NewState(2, 1)
	s.Grid().Set(0, 0, minesweeper.MineHidden)
	s.Advance(3)
	s.Reveal(0, 0)

	if err := store.SaveRound(context.Background(), s.Result()); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	tally, _ := store.Tally(context.Background())
	if tally.Losses != 1 {
		t.Errorf("Expected 1 loss, got %+v", tally)
	}
}
