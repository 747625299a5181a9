// Package atlas loads sprite atlases described by a JSON file and draws
// sprites from them by name.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/sonarsweep/internal/render"
)

// SpriteDefinition defines a single sprite within an atlas
type SpriteDefinition struct {
	Name   string `json:"name"`    // Lookup name (e.g., "red-flag")
	AtlasX int    `json:"atlas_x"` // X position in atlas (in tiles)
	AtlasY int    `json:"atlas_y"` // Y position in atlas (in tiles)
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string             `json:"name"`        // Atlas name
	ImagePath  string             `json:"image_path"`  // Image file, relative to the config file
	TileWidth  int                `json:"tile_width"`  // Width of each sprite in pixels
	TileHeight int                `json:"tile_height"` // Height of each sprite in pixels
	Sprites    []SpriteDefinition `json:"sprites"`
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config        *AtlasConfig
	Image         render.Image
	SpritesByName map[string]*SpriteDefinition
	subImages     map[string]render.Image
}

// ParseConfig decodes and validates an atlas configuration.
func ParseConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	return &config, nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}

	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return New(config, img), nil
}

// New builds an atlas from an already loaded image.
func New(config *AtlasConfig, img render.Image) *Atlas {
	spritesByName := make(map[string]*SpriteDefinition)
	for i := range config.Sprites {
		sprite := &config.Sprites[i]
		if sprite.Name != "" {
			spritesByName[sprite.Name] = sprite
		}
	}

	return &Atlas{
		Config:        config,
		Image:         img,
		SpritesByName: spritesByName,
		subImages:     make(map[string]render.Image),
	}
}

// GetSprite returns a sprite definition by name
func (a *Atlas) GetSprite(name string) (*SpriteDefinition, bool) {
	sprite, ok := a.SpritesByName[name]
	return sprite, ok
}

// Require returns an error naming every sprite the atlas lacks.
func (a *Atlas) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := a.SpritesByName[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("atlas %q is missing sprites: %s", a.Config.Name, strings.Join(missing, ", "))
	}
	return nil
}

// SpriteSize returns the pixel size shared by every sprite.
func (a *Atlas) SpriteSize() (width, height int) {
	return a.Config.TileWidth, a.Config.TileHeight
}

// spriteImage returns the sub-image for a sprite, cached by name.
func (a *Atlas) spriteImage(sprite *SpriteDefinition) render.Image {
	if img, ok := a.subImages[sprite.Name]; ok {
		return img
	}
	x := sprite.AtlasX * a.Config.TileWidth
	y := sprite.AtlasY * a.Config.TileHeight
	img := a.Image.SubImage(image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight))
	a.subImages[sprite.Name] = img
	return img
}

// DrawSprite draws a sprite with its top-left corner at (x, y).
func (a *Atlas) DrawSprite(dst render.Image, name string, x, y float64) error {
	sprite, ok := a.GetSprite(name)
	if !ok {
		return fmt.Errorf("sprite not found: %s", name)
	}

	opts := &render.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(a.spriteImage(sprite), opts)
	return nil
}
