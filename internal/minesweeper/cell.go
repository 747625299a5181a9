// Package minesweeper holds the board model for the sonar sweeper screen:
// cell states, the transition table, grid seeding and the win/loss rules.
// Nothing in here draws or plays sound.
package minesweeper

// Cell is the state of one grid square.
type Cell uint8

const (
	MineHidden Cell = iota
	MineMarked
	MineExploded
	BlankHidden
	BlankMarked      // revealed blank
	BlankWrongMarked // blank carrying a flag
)

// String returns a readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case MineHidden:
		return "mine_hidden"
	case MineMarked:
		return "mine_marked"
	case MineExploded:
		return "mine_exploded"
	case BlankHidden:
		return "blank_hidden"
	case BlankMarked:
		return "blank_marked"
	case BlankWrongMarked:
		return "blank_wrong_marked"
	default:
		return "unknown"
	}
}

// IsMine reports whether the cell holds a mine, whatever its visibility.
func (c Cell) IsMine() bool {
	return c == MineHidden || c == MineMarked || c == MineExploded
}

// IsHidden reports whether the cell is still unrevealed and unflagged.
func (c Cell) IsHidden() bool {
	return c == MineHidden || c == BlankHidden
}

// Action is something the player (or the loss rule) does to a cell.
type Action uint8

const (
	ActionReveal     Action = iota // left button release
	ActionToggleFlag               // right button release
	ActionSweep                    // applied to every cell when a mine goes off
)

// Apply returns the state a cell moves to under an action. Pairs that are
// not listed leave the cell unchanged.
func Apply(c Cell, a Action) Cell {
	switch a {
	case ActionReveal:
		switch c {
		case MineHidden:
			return MineExploded
		case BlankHidden:
			return BlankMarked
		}
	case ActionToggleFlag:
		switch c {
		case MineHidden:
			return MineMarked
		case MineMarked:
			return MineHidden
		case BlankHidden:
			return BlankWrongMarked
		case BlankWrongMarked:
			return BlankHidden
		}
	case ActionSweep:
		switch c {
		case MineHidden, MineMarked:
			return MineExploded
		case BlankHidden, BlankWrongMarked:
			return BlankMarked
		}
	}
	return c
}

// Sprite names looked up in the atlas.
const (
	SpriteBlock       = "block"
	SpriteChosenBlock = "chosen-block"
	SpriteRedFlag     = "red-flag"
	SpriteMine        = "mine"
	SpriteSweeper     = "sweeper"
)

// SpriteFor returns the atlas sprite used to draw a cell. A revealed blank
// draws nothing, so ok is false for it.
func SpriteFor(c Cell) (name string, ok bool) {
	switch c {
	case BlankHidden, MineHidden:
		return SpriteBlock, true
	case MineMarked, BlankWrongMarked:
		return SpriteRedFlag, true
	case MineExploded:
		return SpriteMine, true
	default:
		return "", false
	}
}
