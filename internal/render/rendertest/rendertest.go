// Package rendertest provides in-memory fakes of the render interfaces that
// record every drawing call, for testing screens without a GPU.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/sonarsweep/internal/render"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFill OpKind = iota
	OpClear
	OpDrawImage
	OpDrawText
)

// Op is one recorded drawing call on an Image.
type Op struct {
	Kind  OpKind
	Src   image.Rectangle // source rectangle for OpDrawImage
	X, Y  float64         // destination for OpDrawImage and OpDrawText
	Text  string
	Color color.Color
	Scale float64
}

// Image is a fake render.Image.
type Image struct {
	rect     image.Rectangle
	Ops      []Op
	Disposed bool
}

// NewImage creates a fake image of the given size.
func NewImage(width, height int) *Image {
	return &Image{rect: image.Rect(0, 0, width, height)}
}

// Bounds returns the image rectangle.
func (i *Image) Bounds() image.Rectangle { return i.rect }

// Size returns the image dimensions.
func (i *Image) Size() (int, int) { return i.rect.Dx(), i.rect.Dy() }

// SubImage returns a new Image covering r.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{rect: r.Intersect(i.rect)}
}

// Fill records a fill.
func (i *Image) Fill(clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: OpFill, Color: clr})
}

// Clear records a clear.
func (i *Image) Clear() {
	i.Ops = append(i.Ops, Op{Kind: OpClear})
}

// DrawImage records src and where it lands.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	var x, y float64
	if opts != nil {
		x, y = opts.GeoM.Apply(0, 0)
	}
	i.Ops = append(i.Ops, Op{Kind: OpDrawImage, Src: src.Bounds(), X: x, Y: y})
}

// Dispose marks the image as disposed.
func (i *Image) Dispose() { i.Disposed = true }

// Texts returns the text of every OpDrawText in order.
func (i *Image) Texts() []string {
	var out []string
	for _, op := range i.Ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Draws returns every OpDrawImage in order.
func (i *Image) Draws() []Op {
	var out []Op
	for _, op := range i.Ops {
		if op.Kind == OpDrawImage {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets recorded operations.
func (i *Image) Reset() { i.Ops = nil }

// Renderer is a fake render.Renderer. Text is measured as 6x13 pixels per
// character at scale 1.
type Renderer struct{}

// NewImage returns a blank recording Image.
func (Renderer) NewImage(width, height int) render.Image { return NewImage(width, height) }

// NewImageFromImage returns a recording Image the size of src.
func (Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage(b.Dx(), b.Dy())
}

// DrawText records the text on dst.
func (Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	img, ok := dst.(*Image)
	if !ok {
		panic(fmt.Sprintf("rendertest: DrawText on %T", dst))
	}
	img.Ops = append(img.Ops, Op{Kind: OpDrawText, Text: text, X: float64(x), Y: float64(y), Color: clr, Scale: scale})
}

// MeasureText assumes a 6x13 cell per character.
func (Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(6*len(text)) * scale), int(13 * scale)
}

// Loader is a fake render.ResourceLoader returning blank images of a
// fixed size, or Err when set.
type Loader struct {
	Width, Height int
	Err           error
	Paths         []string
}

// LoadImage records path and returns Err or a Width x Height Image.
func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.Paths = append(l.Paths, path)
	if l.Err != nil {
		return nil, l.Err
	}
	return NewImage(l.Width, l.Height), nil
}

// Input is a scripted render.InputManager. Released keys and buttons are
// reported for one call each.
type Input struct {
	X, Y    int
	Keys    map[render.Key]bool
	Buttons map[render.MouseButton]bool
}

// IsKeyJustReleased reports whether key was released this tick.
func (in *Input) IsKeyJustReleased(key render.Key) bool {
	return in.Keys[key]
}

// IsMouseButtonJustReleased reports whether button was released this tick.
func (in *Input) IsMouseButtonJustReleased(button render.MouseButton) bool {
	return in.Buttons[button]
}

// GetCursorPosition returns X and Y.
func (in *Input) GetCursorPosition() (int, int) { return in.X, in.Y }

// ReleaseKey marks key as released for the next tick.
func (in *Input) ReleaseKey(key render.Key) {
	if in.Keys == nil {
		in.Keys = make(map[render.Key]bool)
	}
	in.Keys[key] = true
}

// ReleaseButton marks button as released for the next tick.
func (in *Input) ReleaseButton(button render.MouseButton) {
	if in.Buttons == nil {
		in.Buttons = make(map[render.MouseButton]bool)
	}
	in.Buttons[button] = true
}

// EndTick clears released keys and buttons.
func (in *Input) EndTick() {
	in.Keys = nil
	in.Buttons = nil
}
