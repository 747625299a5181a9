// Package game hosts a screen inside the render loop: it polls input once
// per tick, turns it into screen events and drives Update and Draw.
package game

import (
	"errors"
	"image"

	"chosenoffset.com/sonarsweep/internal/render"
	"chosenoffset.com/sonarsweep/internal/sweeper"
)

// ErrQuit is returned from Update when the player presses Escape.
var ErrQuit = errors.New("game: quit")

// Screen is a game mode driven by the host.
type Screen interface {
	HandleEvent(evt sweeper.Event, viewport image.Point) bool
	Update(dt float64) error
	Draw(dst render.Image)
}

var _ Screen = (*sweeper.Screen)(nil)

// watchedButtons are polled for releases every tick.
var watchedButtons = []render.MouseButton{
	render.MouseButtonLeft,
	render.MouseButtonRight,
	render.MouseButtonMiddle,
}

// Game implements render.Game for a single screen.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Screen       Screen
	InputMgr     render.InputManager

	tps       int
	cursor    image.Point
	hasCursor bool
}

// New creates a host for screen with a fixed logical size, stepping time by
// 1/tps each tick.
func New(screen Screen, input render.InputManager, width, height, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Screen:       screen,
		InputMgr:     input,
		tps:          tps,
	}
}

// Update handles input and advances the screen by one tick.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustReleased(render.KeyEscape) {
		return ErrQuit
	}

	viewport := image.Pt(g.ScreenWidth, g.ScreenHeight)

	x, y := g.InputMgr.GetCursorPosition()
	if !g.hasCursor || x != g.cursor.X || y != g.cursor.Y {
		g.cursor = image.Pt(x, y)
		g.hasCursor = true
		g.Screen.HandleEvent(sweeper.PointerMove(x, y), viewport)
	}

	if g.InputMgr.IsKeyJustReleased(render.KeyR) {
		g.Screen.HandleEvent(sweeper.KeyUp(render.KeyR), viewport)
	}

	for _, b := range watchedButtons {
		if g.InputMgr.IsMouseButtonJustReleased(b) {
			g.Screen.HandleEvent(sweeper.ButtonUp(b, x, y), viewport)
		}
	}

	return g.Screen.Update(1 / float64(g.tps))
}

// Draw renders the screen.
func (g *Game) Draw(screen render.Image) {
	g.Screen.Draw(screen)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
