package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"padkeys/internal/config"
	"padkeys/internal/controller"
	"padkeys/internal/controller/entities"
	"padkeys/internal/game"
	"padkeys/internal/host/ebitenhost"
	"padkeys/internal/logger"
)

const (
	flagConfig = "config"
	flagDebug  = "debug"
)

func main() {
	app := &cli.App{
		Name:  "padkeys",
		Usage: "move a player with the keyboard or a gamepad",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "path to the YAML config",
				EnvVars: []string{config.EnvPath},
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"d"},
				Usage:   "debug logging to the console",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return err
	}

	logCfg := cfg.Logging
	if c.Bool(flagDebug) {
		logCfg = logger.DevelopmentConfig()
	}
	logCfg = logger.ApplyEnv(logCfg)
	zl, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return err
	}
	log := logger.Component(zl, "main")
	defer func() { _ = zl.Sync() }()

	host := ebitenhost.New(ebitenhost.Options{
		Gamepad:  cfg.Input.Gamepad,
		Keyboard: cfg.Input.Keyboard,
	}, zl)

	scene, err := controller.NewScene(controller.Config{
		WorldSize: cfg.World.Size,
		Player: entities.PlayerSpawn{
			Name:  cfg.Player.Name,
			X:     cfg.Player.X,
			Y:     cfg.Player.Y,
			Speed: cfg.Player.Speed,
		},
		Step: time.Second / time.Duration(cfg.World.TPS),
	}, host, host.Keyboard(), zl)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer scene.Close()

	g := game.New(scene, host, int(cfg.World.Size), game.Options{
		GridCell:   cfg.World.GridCell,
		PlayerSize: cfg.Player.Size,
	}, zl)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.World.TPS)

	log.Info("starting", logger.F("tps", cfg.World.TPS), logger.F("world_size", cfg.World.Size))
	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop stopped", logger.F("error", err), logger.F("frames", scene.Frames()))
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("window closed", logger.F("frames", scene.Frames()))
	return nil
}
