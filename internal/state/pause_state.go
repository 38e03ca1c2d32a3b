// internal/state/pause_state.go
package state

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: время предыдущего состояния не идёт.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	banner        *ui.Banner
	width, height float32
}

func NewPauseState(sm *StateMachine, cfg *config.Settings, prevState State) *PauseState {
	w, h := cfg.ScreenSize()
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		banner:        newBanner(cfg),
		width:         float32(w),
		height:        float32(h),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, s.width, s.height, config.PauseOverlay, false)
	s.banner.Draw(screen, "PAUSED", "P or ESC to resume", config.TextLightColor)
}

func (s *PauseState) Exit() {}
