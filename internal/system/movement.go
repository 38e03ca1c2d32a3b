package system

import (
	"math"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
)

// SwarmSystem moves the aliens sideways and, at the threshold, reverses them and steps them down a row.
type SwarmSystem struct {
	ecs *entity.ECS
	cfg *config.Settings
}

func NewSwarmSystem(ecs *entity.ECS, cfg *config.Settings) *SwarmSystem {
	return &SwarmSystem{ecs: ecs, cfg: cfg}
}

// Update advances every mover by speed*direction*dt. The displacement counter is
// never reset: it measures distance from the spawn column, so the swarm swings
// between -threshold and +threshold. A mover only reverses while heading outward,
// which keeps one overshooting tick from flipping it twice.
func (s *SwarmSystem) Update(deltaTime float64) {
	session := s.ecs.Session
	if !session.Active {
		return
	}
	speed := session.Difficulty.Speed
	threshold := s.cfg.Swarm.ReversalThreshold
	rowHeight := s.cfg.Swarm.RowHeight()

	for id, mv := range s.ecs.Movements {
		if mv.Direction == component.DirectionNone {
			continue
		}
		pos, step := s.ecs.Positions[id], s.ecs.HorizontalSteps[id]
		if pos == nil || step == nil {
			continue
		}

		delta := speed * float64(mv.Direction) * deltaTime
		pos.X += delta
		step.Displacement += delta

		outward := step.Displacement*float64(mv.Direction) > 0
		if outward && math.Abs(step.Displacement) >= threshold {
			pos.Y -= rowHeight
			mv.Direction = mv.Direction.Flip()
		}
	}
}
