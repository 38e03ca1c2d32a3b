// internal/system/player_system.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/utils"
)

// DefenderSystem turns left/right intent into clamped horizontal motion.
type DefenderSystem struct {
	ecs *entity.ECS
	cfg *config.Settings
}

func NewDefenderSystem(ecs *entity.ECS, cfg *config.Settings) *DefenderSystem {
	return &DefenderSystem{ecs: ecs, cfg: cfg}
}

// Update moves the defender. It is frozen once the round is lost.
func (s *DefenderSystem) Update(deltaTime float64, intent component.Intent) {
	id, defender := s.ecs.Defender()
	if !s.ecs.Session.Active {
		return
	}
	pos := s.ecs.Positions[id]
	minX, maxX := s.cfg.DefenderBounds()
	pos.X = utils.Clamp(pos.X+intent.Axis()*defender.Speed*deltaTime, minX, maxX)
}
