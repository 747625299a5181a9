package atlas

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/sonarsweep/internal/render/rendertest"
)

const testConfig = `{
	"name": "minesweeper",
	"image_path": "minesweeper.png",
	"tile_width": 50,
	"tile_height": 50,
	"sprites": [
		{"name": "block", "atlas_x": 0, "atlas_y": 0},
		{"name": "red-flag", "atlas_x": 1, "atlas_y": 0},
		{"name": "mine", "atlas_x": 0, "atlas_y": 1}
	]
}`

func TestAtlasConfigParsing(t *testing.T) {
	config, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if config.Name != "minesweeper" {
		t.Errorf("Expected name 'minesweeper', got '%s'", config.Name)
	}
	if config.TileWidth != 50 || config.TileHeight != 50 {
		t.Errorf("Expected 50x50 tiles, got %dx%d", config.TileWidth, config.TileHeight)
	}
	if len(config.Sprites) != 3 {
		t.Fatalf("Expected 3 sprites, got %d", len(config.Sprites))
	}
	if config.Sprites[2].Name != "mine" || config.Sprites[2].AtlasY != 1 {
		t.Errorf("Unexpected third sprite: %+v", config.Sprites[2])
	}
}

func TestAtlasConfigValidation(t *testing.T) {
	_, err := ParseConfig([]byte(`{"name": "bad", "tile_width": 0, "tile_height": 0}`))
	if err == nil {
		t.Error("Expected error for zero tile dimensions")
	}

	_, err = ParseConfig([]byte(`{not json`))
	if err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestLoadAtlasResolvesImageRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "minesweeper.json")
	if err := os.WriteFile(configPath, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loader := &rendertest.Loader{Width: 100, Height: 100}
	a, err := LoadAtlas(configPath, loader)
	if err != nil {
		t.Fatalf("LoadAtlas() failed: %v", err)
	}

	if len(loader.Paths) != 1 || loader.Paths[0] != filepath.Join(dir, "minesweeper.png") {
		t.Errorf("Expected image loaded next to config, got %v", loader.Paths)
	}
	if _, ok := a.GetSprite("red-flag"); !ok {
		t.Error("Expected red-flag sprite")
	}
}

func TestLoadAtlasImageError(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "minesweeper.json")
	if err := os.WriteFile(configPath, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	boom := errors.New("boom")
	_, err := LoadAtlas(configPath, &rendertest.Loader{Err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped loader error, got %v", err)
	}
}

func TestLoadAtlasMissingFile(t *testing.T) {
	_, err := LoadAtlas(filepath.Join(t.TempDir(), "nope.json"), &rendertest.Loader{})
	if err == nil {
		t.Error("Expected error for a missing config file")
	}
}

func TestRequire(t *testing.T) {
	config, _ := ParseConfig([]byte(testConfig))
	a := New(config, rendertest.NewImage(100, 100))

	if err := a.Require("block", "mine"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	err := a.Require("block", "sweeper", "chosen-block")
	if err == nil {
		t.Fatal("Expected error for missing sprites")
	}
	if !strings.Contains(err.Error(), "sweeper") || !strings.Contains(err.Error(), "chosen-block") {
		t.Errorf("Expected error to name missing sprites, got %v", err)
	}
}

func TestDrawSprite(t *testing.T) {
	config, _ := ParseConfig([]byte(testConfig))
	a := New(config, rendertest.NewImage(100, 100))
	dst := rendertest.NewImage(400, 480)

	if err := a.DrawSprite(dst, "mine", 12, 34); err != nil {
		t.Fatalf("DrawSprite() failed: %v", err)
	}

	draws := dst.Draws()
	if len(draws) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(draws))
	}
	if draws[0].Src != image.Rect(0, 50, 50, 100) {
		t.Errorf("Expected mine source rect (0,50)-(50,100), got %v", draws[0].Src)
	}
	if draws[0].X != 12 || draws[0].Y != 34 {
		t.Errorf("Expected destination (12, 34), got (%v, %v)", draws[0].X, draws[0].Y)
	}

	if err := a.DrawSprite(dst, "nope", 0, 0); err == nil {
		t.Error("Expected error for unknown sprite")
	}
}
