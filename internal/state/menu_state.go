// internal/state/menu_state.go
package state

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// MenuState показывает титульный экран, пробел начинает игру.
type MenuState struct {
	sm     *StateMachine
	cfg    *config.Settings
	log    *zap.Logger
	banner *ui.Banner
}

func NewMenuState(sm *StateMachine, cfg *config.Settings, log *zap.Logger) *MenuState {
	return &MenuState{
		sm:     sm,
		cfg:    cfg,
		log:    log,
		banner: newBanner(cfg),
	}
}

func (m *MenuState) Enter() {
	m.log.Debug("enter menu")
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.cfg, m.log))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.banner.Draw(screen, "SPACE INVADERS", "press SPACE to start", config.AlienColor)
}

func (m *MenuState) Exit() {}
