package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// localConfigPath is checked relative to the working directory.
var localConfigPath = filepath.Join("configs", "sonarsweep.yaml")

// Load loads the configuration. Files only need the keys they change; the
// rest keep their defaults.
// Search order: customPath -> ~/.sonarsweep/config.yaml -> ./configs/sonarsweep.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := parse(defaultYAML, Default())
	if err != nil {
		cfg = Default()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if cfg, err = parse(data, cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := parse(data, cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return parsed, parsed.Validate()
	}

	return cfg, cfg.Validate()
}

// parse decodes data over base.
func parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sonarsweep", filename)
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Board.Size <= 0:
		return fmt.Errorf("%w: board size %d", ErrInvalid, c.Board.Size)
	case c.Board.Mines <= 0 || c.Board.Mines >= c.Board.Size*c.Board.Size:
		return fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalid, c.Board.Mines, c.Board.Size, c.Board.Size)
	case c.Sonar.Enabled && c.Sonar.Falloff <= 0:
		return fmt.Errorf("%w: sonar falloff %v", ErrInvalid, c.Sonar.Falloff)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, c.Audio.SampleRate)
	case c.Audio.AmbientVolume < 0 || c.Audio.AmbientVolume > 1:
		return fmt.Errorf("%w: ambient volume %v", ErrInvalid, c.Audio.AmbientVolume)
	case c.Storage.Enabled && c.Storage.DBPath == "":
		return fmt.Errorf("%w: storage enabled without db_path", ErrInvalid)
	}

	if err := c.MinesweeperLayout().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
