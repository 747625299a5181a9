package config

import (
	_ "embed"

	"chosenoffset.com/sonarsweep/internal/minesweeper"
)

//go:embed defaults/sonarsweep.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	l := minesweeper.DefaultLayout()
	return Config{
		Window: WindowConfig{
			Width:  400,
			Height: 480,
			Scale:  1,
			Title:  "SonarSweep",
			TPS:    60,
		},
		Board: BoardConfig{
			Size:  l.Size,
			Mines: minesweeper.DefaultMines,
		},
		Layout: LayoutConfig{
			OriginX:      l.OriginX,
			OriginY:      l.OriginY,
			Pitch:        l.Pitch,
			Margin:       l.Margin,
			Inner:        l.Inner,
			CenterOffset: l.CenterOffset,
		},
		Sonar: SonarConfig{
			Enabled: true,
			Falloff: minesweeper.DefaultSonarFalloff,
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    48000,
			AmbientVolume: 1,
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.sonarsweep/rounds.db",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
