// cmd/invaders/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", os.Getenv("INVADERS_CONFIG"), "path to a TOML settings file")
	skipMenu := flag.Bool("skip-menu", false, "start straight into a round")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("config", *configPath),
		zap.Int("rows", cfg.Difficulty.Rows),
		zap.Int("columns", cfg.Difficulty.Columns),
		zap.Float64("speed", cfg.Difficulty.Speed))

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, cfg, log))
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, log))
	}

	w, h := cfg.ScreenSize()
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          w,
		height:         h,
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("stopped")
	return nil
}
