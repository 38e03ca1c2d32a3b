// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score over the frozen field. Shots already in
// flight keep moving until they leave the screen. R starts a new session.
type GameOverState struct {
	sm     *StateMachine
	round  *GameState
	over   event.GameOver
	banner *ui.Banner
}

func NewGameOverState(sm *StateMachine, round *GameState, over event.GameOver) *GameOverState {
	return &GameOverState{
		sm:     sm,
		round:  round,
		over:   over,
		banner: newBanner(round.cfg),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.round.cfg, s.round.log))
		return
	}
	s.round.GetGame().Update(deltaTime, component.Intent{})
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.round.Draw(screen)
	hint := fmt.Sprintf("score %d, wave %d. press R to restart", s.over.FinalScore, s.over.Wave)
	s.banner.Draw(screen, "GAME OVER", hint, config.GameOverColor)
}

func (s *GameOverState) Exit() {}
