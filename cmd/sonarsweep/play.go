package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/sonarsweep/internal/atlas"
	audioebiten "chosenoffset.com/sonarsweep/internal/audio/ebiten"
	"chosenoffset.com/sonarsweep/internal/config"
	"chosenoffset.com/sonarsweep/internal/game"
	"chosenoffset.com/sonarsweep/internal/logging"
	"chosenoffset.com/sonarsweep/internal/placeholders"
	"chosenoffset.com/sonarsweep/internal/render"
	ebitenrender "chosenoffset.com/sonarsweep/internal/render/ebiten"
	"chosenoffset.com/sonarsweep/internal/storage"
	"chosenoffset.com/sonarsweep/internal/sweeper"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		return err
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	sprites, err := loadSprites(cfg.Atlas, renderer, loader)
	if err != nil {
		logger.Error("failed to load sprites", "error", err)
		return err
	}

	opts := []sweeper.Option{
		sweeper.WithLogger(logger),
		sweeper.WithLayout(cfg.MinesweeperLayout()),
		sweeper.WithMines(cfg.Board.Mines),
		sweeper.WithSonar(cfg.Sonar.Enabled, cfg.Sonar.Falloff),
	}
	if flagSeed != 0 {
		opts = append(opts, sweeper.WithSeed(flagSeed))
	}
	if cfg.Audio.Enabled {
		opts = append(opts,
			sweeper.WithMixer(audioebiten.NewMixer(cfg.Audio.SampleRate)),
			sweeper.WithAmbient(cfg.Audio.AmbientPath, cfg.Audio.AmbientVolume))
	}

	if store := openStore(cfg.Storage, logger); store != nil {
		defer store.Close()
		opts = append(opts, sweeper.WithRecorder(store))
	}

	screen, err := sweeper.NewScreen(renderer, sprites, opts...)
	if err != nil {
		return err
	}
	defer screen.Close()

	host := game.New(screen, inputMgr, cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)

	engine.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	logger.Info("starting game", "board", fmt.Sprintf("%dx%d", cfg.Board.Size, cfg.Board.Size), "mines", cfg.Board.Mines)
	if err := engine.RunGame(host); err != nil && !errors.Is(err, game.ErrQuit) {
		logger.Error("game stopped", "error", err)
		return err
	}
	return nil
}

// loadSprites loads the configured atlas, or draws the placeholders when
// none is configured.
func loadSprites(cfg config.AtlasConfig, r render.Renderer, loader render.ResourceLoader) (*atlas.Atlas, error) {
	if cfg.Path != "" {
		return atlas.LoadAtlas(cfg.Path, loader)
	}
	img, atlasCfg := placeholders.MinesweeperAtlas()
	return atlas.New(atlasCfg, r.NewImageFromImage(img)), nil
}

// openStore opens the round history. The game runs without history when
// the database is unavailable.
func openStore(cfg config.StorageConfig, logger *log.Logger) *storage.Store {
	if !cfg.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open round history", "error", err)
		return nil
	}
	return store
}
