package minesweeper

import "testing"

func TestApplyTransitions(t *testing.T) {
	tests := []struct {
		cell   Cell
		action Action
		want   Cell
	}{
		{MineHidden, ActionReveal, MineExploded},
		{BlankHidden, ActionReveal, BlankMarked},
		{MineMarked, ActionReveal, MineMarked},
		{BlankWrongMarked, ActionReveal, BlankWrongMarked},
		{BlankMarked, ActionReveal, BlankMarked},
		{MineExploded, ActionReveal, MineExploded},

		{MineHidden, ActionToggleFlag, MineMarked},
		{MineMarked, ActionToggleFlag, MineHidden},
		{BlankHidden, ActionToggleFlag, BlankWrongMarked},
		{BlankWrongMarked, ActionToggleFlag, BlankHidden},
		{BlankMarked, ActionToggleFlag, BlankMarked},
		{MineExploded, ActionToggleFlag, MineExploded},

		{MineHidden, ActionSweep, MineExploded},
		{MineMarked, ActionSweep, MineExploded},
		{BlankHidden, ActionSweep, BlankMarked},
		{BlankWrongMarked, ActionSweep, BlankMarked},
		{BlankMarked, ActionSweep, BlankMarked},
		{MineExploded, ActionSweep, MineExploded},
	}

	for _, tt := range tests {
		if got := Apply(tt.cell, tt.action); got != tt.want {
			t.Errorf("Apply(%s, %d) = %s, expected %s", tt.cell, tt.action, got, tt.want)
		}
	}
}

func TestToggleFlagTwiceIsIdentity(t *testing.T) {
	for _, c := range []Cell{MineHidden, MineMarked, MineExploded, BlankHidden, BlankMarked, BlankWrongMarked} {
		if got := Apply(Apply(c, ActionToggleFlag), ActionToggleFlag); got != c {
			t.Errorf("Expected double toggle of %s to return %s, got %s", c, c, got)
		}
	}
}

func TestSpriteFor(t *testing.T) {
	tests := []struct {
		cell   Cell
		sprite string
		ok     bool
	}{
		{BlankHidden, SpriteBlock, true},
		{MineHidden, SpriteBlock, true},
		{MineMarked, SpriteRedFlag, true},
		{BlankWrongMarked, SpriteRedFlag, true},
		{MineExploded, SpriteMine, true},
		{BlankMarked, "", false},
	}

	for _, tt := range tests {
		sprite, ok := SpriteFor(tt.cell)
		if sprite != tt.sprite || ok != tt.ok {
			t.Errorf("SpriteFor(%s) = (%q, %v), expected (%q, %v)", tt.cell, sprite, ok, tt.sprite, tt.ok)
		}
	}
}

func TestCellPredicates(t *testing.T) {
	if !MineMarked.IsMine() || BlankWrongMarked.IsMine() {
		t.Error("IsMine misclassifies flagged cells")
	}
	if !BlankHidden.IsHidden() || !MineHidden.IsHidden() || MineMarked.IsHidden() {
		t.Error("IsHidden misclassifies cells")
	}
}
