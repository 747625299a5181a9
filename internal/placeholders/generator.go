// Package placeholders draws the minesweeper sprites procedurally so the
// game runs without hand-made art.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/sonarsweep/internal/atlas"
	"chosenoffset.com/sonarsweep/internal/minesweeper"
)

// TileSize is the size of every placeholder sprite.
const TileSize = 50

// atlasColumns is the number of sprites per atlas row.
const atlasColumns = 3

// SweeperHotspot is the point of the sweeper sprite that sits under the
// pointer, measured from the sprite's top-left corner.
var SweeperHotspot = image.Point{X: 20, Y: TileSize - 13}

// ColorPalette defines colors for the sand-and-metal theme
var ColorPalette = struct {
	Sand      color.RGBA
	SandLight color.RGBA
	SandDark  color.RGBA
	Highlight color.RGBA
	FlagRed   color.RGBA
	FlagPole  color.RGBA
	Mine      color.RGBA
	MineShine color.RGBA
	Metal     color.RGBA
	Handle    color.RGBA
}{
	Sand:      color.RGBA{214, 184, 130, 255},
	SandLight: color.RGBA{240, 218, 170, 255},
	SandDark:  color.RGBA{160, 130, 85, 255},
	Highlight: color.RGBA{255, 255, 200, 110},
	FlagRed:   color.RGBA{220, 30, 30, 255},
	FlagPole:  color.RGBA{60, 50, 40, 255},
	Mine:      color.RGBA{30, 30, 30, 255},
	MineShine: color.RGBA{200, 200, 200, 255},
	Metal:     color.RGBA{150, 160, 175, 255},
	Handle:    color.RGBA{70, 60, 55, 255},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBeveledTile creates a raised tile: light top/left edges, dark
// bottom/right edges.
func CreateBeveledTile(fill, light, dark color.RGBA, bevel int) *image.RGBA {
	img := CreateSolidTile(fill)
	for i := 0; i < bevel; i++ {
		for p := i; p < TileSize-i; p++ {
			img.Set(p, i, light)
			img.Set(i, p, light)
			img.Set(p, TileSize-1-i, dark)
			img.Set(TileSize-1-i, p, dark)
		}
	}
	return img
}

// CreateHighlight creates a translucent overlay with a bright frame.
func CreateHighlight(fill, frame color.RGBA, frameWidth int) *image.RGBA {
	img := CreateSolidTile(fill)
	for i := 0; i < frameWidth; i++ {
		for p := 0; p < TileSize; p++ {
			img.Set(p, i, frame)
			img.Set(p, TileSize-1-i, frame)
			img.Set(i, p, frame)
			img.Set(TileSize-1-i, p, frame)
		}
	}
	return img
}

// CreateFlag draws a pole and pennant on a raised tile.
func CreateFlag() *image.RGBA {
	p := ColorPalette
	img := CreateBeveledTile(p.Sand, p.SandLight, p.SandDark, 3)

	poleX := TileSize/2 - 6
	for y := 10; y < TileSize-10; y++ {
		img.Set(poleX, y, p.FlagPole)
		img.Set(poleX+1, y, p.FlagPole)
	}
	// base
	for x := poleX - 6; x <= poleX+7; x++ {
		img.Set(x, TileSize-10, p.FlagPole)
		img.Set(x, TileSize-11, p.FlagPole)
	}
	// pennant: a triangle pointing right
	for y := 10; y < 26; y++ {
		reach := 16 - abs(y-18)*2
		for x := poleX + 2; x < poleX+2+reach; x++ {
			img.Set(x, y, p.FlagRed)
		}
	}
	return img
}

// CreateMine draws a spiked mine on an uncovered tile.
func CreateMine() *image.RGBA {
	p := ColorPalette
	img := CreateSolidTile(p.SandDark)
	center := TileSize / 2
	radius := TileSize/4 + 1

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx, dy := x-center, y-center
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, p.Mine)
			}
		}
	}
	// spikes
	for i := -radius - 5; i <= radius+5; i++ {
		img.Set(center+i, center, p.Mine)
		img.Set(center, center+i, p.Mine)
		if abs(i) <= radius+2 {
			img.Set(center+i, center+i, p.Mine)
			img.Set(center+i, center-i, p.Mine)
		}
	}
	// shine
	for y := -2; y <= 0; y++ {
		for x := -2; x <= 0; x++ {
			img.Set(center-radius/2+x, center-radius/2+y, p.MineShine)
		}
	}
	return img
}

// CreateSweeper draws a metal detector whose coil is centered on
// SweeperHotspot, with the handle running up and to the right.
func CreateSweeper() *image.RGBA {
	p := ColorPalette
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	hx, hy := SweeperHotspot.X, SweeperHotspot.Y
	outer, inner := 10, 7
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx, dy := x-hx, y-hy
			d := dx*dx + dy*dy
			if d <= outer*outer && d >= inner*inner {
				img.Set(x, y, p.Metal)
			}
		}
	}
	for i := 0; i < 28; i++ {
		x, y := hx+outer-2+i, hy-outer+2-i
		if x >= TileSize || y < 0 {
			break
		}
		img.Set(x, y, p.Handle)
		img.Set(x+1, y, p.Handle)
	}
	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	tileCount := len(tiles)
	rows := (tileCount + columns - 1) / columns

	atlasImg := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(atlasImg, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
	}

	return atlasImg
}

// MinesweeperAtlas draws every sprite the screen needs and returns the
// atlas image together with its configuration.
func MinesweeperAtlas() (*image.RGBA, *atlas.AtlasConfig) {
	p := ColorPalette
	sprites := []struct {
		name string
		img  *image.RGBA
	}{
		{minesweeper.SpriteBlock, CreateBeveledTile(p.Sand, p.SandLight, p.SandDark, 3)},
		{minesweeper.SpriteChosenBlock, CreateHighlight(p.Highlight, p.SandLight, 2)},
		{minesweeper.SpriteRedFlag, CreateFlag()},
		{minesweeper.SpriteMine, CreateMine()},
		{minesweeper.SpriteSweeper, CreateSweeper()},
	}

	config := &atlas.AtlasConfig{
		Name:       "minesweeper",
		ImagePath:  "minesweeper.png",
		TileWidth:  TileSize,
		TileHeight: TileSize,
	}
	tiles := make([]*image.RGBA, 0, len(sprites))
	for i, s := range sprites {
		tiles = append(tiles, s.img)
		config.Sprites = append(config.Sprites, atlas.SpriteDefinition{
			Name:   s.name,
			AtlasX: i % atlasColumns,
			AtlasY: i / atlasColumns,
		})
	}

	return CreateAtlas(tiles, atlasColumns), config
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes minesweeper.png and minesweeper.json into dir and
// returns the path of the JSON config.
func GenerateAndSave(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create assets directory: %w", err)
	}

	img, config := MinesweeperAtlas()
	if err := SavePNG(img, filepath.Join(dir, config.ImagePath)); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", config.ImagePath, err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode atlas config: %w", err)
	}
	configPath := filepath.Join(dir, "minesweeper.json")
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save atlas config: %w", err)
	}
	return configPath, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
