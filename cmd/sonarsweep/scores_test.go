package main

import (
	"strings"
	"testing"
	"time"

	"chosenoffset.com/sonarsweep/internal/storage"
)

func TestFormatScoresPlain(t *testing.T) {
	finished := time.Date(2026, 1, 2, 3, 4, 0, 0, time.Local)
	best := []storage.Round{
		{Elapsed: 12.34, FinishedAt: finished},
		{Elapsed: 40, FinishedAt: finished},
	}

	out := formatScores("6x6, 10 mines", best, storage.Tally{Wins: 2, Losses: 2}, false)

	for _, want := range []string{
		"Best Times - 6x6, 10 mines",
		"  1     12.3s     2026-01-02 03:04",
		"  2     40.0s     2026-01-02 03:04",
		"Won 2, lost 2 (50%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Expected plain output without escape codes")
	}
}

func TestFormatScoresEmpty(t *testing.T) {
	out := formatScores("6x6, 10 mines", nil, storage.Tally{}, false)

	if !strings.Contains(out, "No wins recorded yet.") {
		t.Errorf("Expected empty message, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "Won 0, lost 0") {
		t.Errorf("Expected tally without percentage, got:\n%s", out)
	}
}
