// internal/system/state.go
package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"

	"go.uber.org/zap"
)

// StateSystem owns the round's active flag and the one-way loss transition.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log *zap.Logger) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// Active reports whether the current wave is in play.
func (s *StateSystem) Active() bool {
	return s.ecs.Session.Active
}

// EndRound marks the round lost, clears the swarm and emits RoundLost.
// Later calls do nothing.
func (s *StateSystem) EndRound() {
	session := s.ecs.Session
	if !session.Active {
		return
	}
	session.Active = false

	cleared := 0
	for _, id := range s.ecs.EnemyIDs() {
		destroy(s.ecs, s.eventDispatcher, id)
		cleared++
	}

	sb := session.Scoreboard
	s.log.Info("round lost",
		zap.Int("score", sb.Score),
		zap.Int("wave", sb.Wave),
		zap.Int("enemies_cleared", cleared))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoundLost,
		Data: event.GameOver{FinalScore: sb.Score, Wave: sb.Wave},
	})
}
