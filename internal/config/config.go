// Package config provides YAML-based configuration for the game window,
// board, sound, history and logging.
package config

import "chosenoffset.com/sonarsweep/internal/minesweeper"

// Config is the complete game configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Board   BoardConfig   `yaml:"board"`
	Layout  LayoutConfig  `yaml:"layout"`
	Sonar   SonarConfig   `yaml:"sonar"`
	Audio   AudioConfig   `yaml:"audio"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig defines the logical screen and the window around it.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"` // window size = logical size * scale
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size  int `yaml:"size"`
	Mines int `yaml:"mines"`
}

// LayoutConfig places the grid on screen, bottom-left origin.
type LayoutConfig struct {
	OriginX      int `yaml:"origin_x"`
	OriginY      int `yaml:"origin_y"`
	Pitch        int `yaml:"pitch"`
	Margin       int `yaml:"margin"`
	Inner        int `yaml:"inner"`
	CenterOffset int `yaml:"center_offset"`
}

// SonarConfig controls the proximity tone.
type SonarConfig struct {
	Enabled bool    `yaml:"enabled"`
	Falloff float64 `yaml:"falloff"`
}

// AudioConfig controls sound output. An empty AmbientPath plays the
// synthesized sandstorm.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	AmbientPath   string  `yaml:"ambient_path"`
	AmbientVolume float64 `yaml:"ambient_volume"`
}

// AtlasConfig points at a sprite atlas JSON file. Empty uses the generated
// placeholders.
type AtlasConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig controls the round history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LoggingConfig controls log level and optional rotated file output.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// MinesweeperLayout converts the board and layout sections.
func (c Config) MinesweeperLayout() minesweeper.Layout {
	return minesweeper.Layout{
		Size:         c.Board.Size,
		OriginX:      c.Layout.OriginX,
		OriginY:      c.Layout.OriginY,
		Pitch:        c.Layout.Pitch,
		Margin:       c.Layout.Margin,
		Inner:        c.Layout.Inner,
		CenterOffset: c.Layout.CenterOffset,
	}
}
