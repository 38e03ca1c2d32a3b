// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
)

// ProjectileSystem handles firing and projectile flight.
type ProjectileSystem struct {
	ecs             *entity.ECS
	cfg             *config.Settings
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, cfg *config.Settings, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		cfg:             cfg,
		eventDispatcher: eventDispatcher,
	}
}

// Fire ticks the cooldown and, on a fire edge, spawns a projectile at the
// defender when the cooldown is strictly exceeded and the cap is not reached.
func (s *ProjectileSystem) Fire(deltaTime float64, fire bool) (types.EntityID, bool) {
	session := s.ecs.Session
	session.FireTimer += deltaTime
	if !fire || !session.Active {
		return 0, false
	}
	if session.FireTimer <= s.cfg.Projectile.Cooldown {
		return 0, false
	}
	if s.ecs.LiveProjectiles() >= s.cfg.Projectile.MaxLive {
		return 0, false
	}

	defenderID, _ := s.ecs.Defender()
	from := s.ecs.Positions[defenderID]
	id := s.createProjectile(from.X, from.Y)
	session.FireTimer = 0

	desc := Describe(s.ecs, id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EntitySpawned, Data: desc})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: desc})
	return id, true
}

// Update moves projectiles and drops those whose leading edge reached the top.
func (s *ProjectileSystem) Update(deltaTime float64) {
	top := s.cfg.Playfield.TopEdgeY
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.Y += proj.Speed * float64(proj.Direction) * deltaTime
		if s.ecs.Bounds(id).Top() >= top {
			destroy(s.ecs, s.eventDispatcher, id)
		}
	}
}

func (s *ProjectileSystem) createProjectile(x, y float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Extents[id] = &component.Extent{Width: s.cfg.Projectile.Width, Height: s.cfg.Projectile.Height}
	s.ecs.Projectiles[id] = &component.Projectile{
		Speed:     s.cfg.Projectile.Speed,
		Direction: component.Upward,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.ProjectileColor}
	return id
}
