package sweeper

import (
	"fmt"
	"image/color"

	"chosenoffset.com/sonarsweep/internal/minesweeper"
	"chosenoffset.com/sonarsweep/internal/render"
)

// Draw renders the board and HUD onto dst.
func (s *Screen) Draw(dst render.Image) {
	_, h := dst.Size()

	dst.Fill(backgroundColor)

	s.drawText(dst, h, fmt.Sprintf("Time: %.1fs", s.state.Elapsed()), 45, 412, 2, textColor)
	s.drawText(dst, h, fmt.Sprintf("Mines: %d", s.state.MineCount()), 220, 412, 2, textColor)
	switch s.state.Outcome() {
	case minesweeper.OutcomeWon:
		s.drawText(dst, h, "You WON!!", 140, 450, 2, wonColor)
	case minesweeper.OutcomeLost:
		s.drawText(dst, h, "You Lost...", 140, 450, 2, textColor)
	}

	s.state.Grid().Each(func(x, y int, c minesweeper.Cell) {
		name, ok := minesweeper.SpriteFor(c)
		if !ok {
			return
		}
		px, py := s.layout.CellOrigin(x, y)
		s.drawSprite(dst, h, name, px, py)
	})

	if x, y, ok := s.layout.CellAt(s.cursorX, s.cursorY); ok && s.state.Grid().At(x, y).IsHidden() {
		px, py := s.layout.CellOrigin(x, y)
		s.drawSprite(dst, h, minesweeper.SpriteChosenBlock, px, py)
	}

	s.drawSprite(dst, h, minesweeper.SpriteSweeper,
		float64(s.cursorX-sweeperOffsetX), float64(s.cursorY-sweeperOffsetY))

	s.drawText(dst, h, "press 'r' to restart", 268, 7, 1, textColor)
}

// drawSprite draws a sprite whose bottom-left corner is at (x, y).
// Sprites were checked in NewScreen.
func (s *Screen) drawSprite(dst render.Image, h int, name string, x, y float64) {
	_, sh := s.atlas.SpriteSize()
	_ = s.atlas.DrawSprite(dst, name, x, float64(h)-y-float64(sh))
}

// drawText draws text whose bottom-left corner is at (x, y).
func (s *Screen) drawText(dst render.Image, h int, str string, x, y int, scale float64, clr color.Color) {
	_, th := s.renderer.MeasureText(str, scale)
	s.renderer.DrawText(dst, str, x, h-y-th, clr, scale)
}
