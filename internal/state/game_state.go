// internal/state/game_state.go
package state

import (
	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	cfg      *config.Settings
	log      *zap.Logger
	game     *game.Game
	sampler  *input.Sampler
	renderer *render.Renderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, cfg *config.Settings, log *zap.Logger) *GameState {
	palette := render.Palette{
		Background:     config.BackgroundColor,
		DefenderStroke: config.TextLightColor,
		StrokeWidth:    1,
	}
	w, h := cfg.ScreenSize()
	return &GameState{
		sm:       sm,
		cfg:      cfg,
		log:      log,
		game:     game.NewGame(cfg, log),
		sampler:  input.NewSampler(input.DefaultKeyMap()),
		renderer: render.NewRenderer(w, h, palette),
		hud:      ui.NewHUD(w, ui.DefaultFace),
	}
}

// GetGame отдаёт сессию, которую ведёт это состояние.
func (g *GameState) GetGame() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g.cfg, g))
		return
	}

	events := g.game.Update(deltaTime, g.sampler.Sample())
	for _, e := range events {
		if e.Type != event.RoundLost {
			continue
		}
		over := e.Data.(event.GameOver)
		g.sm.SetState(NewGameOverState(g.sm, g, over))
		return
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)

	snap := g.game.Snapshot()
	g.hud.Draw(screen, ui.HUDData{
		Score:     snap.Score,
		Wave:      snap.Wave,
		Active:    snap.Active,
		FireTimer: snap.FireTimer,
		Cooldown:  g.cfg.Projectile.Cooldown,
		Live:      snap.LiveProjectiles,
		MaxLive:   g.cfg.Projectile.MaxLive,
	})
}

func (g *GameState) Exit() {}
