// internal/entity/ecs.go
package entity

import (
	"fmt"
	"maps"
	"slices"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
)

// ECS is the entity store: typed collections per component, keyed by EntityID.
type ECS struct {
	GameTime        float64
	NextID          types.EntityID
	Positions       map[types.EntityID]*component.Position
	Extents         map[types.EntityID]*component.Extent
	Movements       map[types.EntityID]*component.Movement
	HorizontalSteps map[types.EntityID]*component.HorizontalStep
	Renderables     map[types.EntityID]*component.Renderable
	Enemies         map[types.EntityID]*component.Enemy
	Projectiles     map[types.EntityID]*component.Projectile
	Defenders       map[types.EntityID]*component.Defender
	Boundaries      map[types.EntityID]*component.Boundary
	Session         *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:          1,
		Positions:       make(map[types.EntityID]*component.Position),
		Extents:         make(map[types.EntityID]*component.Extent),
		Movements:       make(map[types.EntityID]*component.Movement),
		HorizontalSteps: make(map[types.EntityID]*component.HorizontalStep),
		Renderables:     make(map[types.EntityID]*component.Renderable),
		Enemies:         make(map[types.EntityID]*component.Enemy),
		Projectiles:     make(map[types.EntityID]*component.Projectile),
		Defenders:       make(map[types.EntityID]*component.Defender),
		Boundaries:      make(map[types.EntityID]*component.Boundary),
		Session: &component.Session{
			Scoreboard: component.Scoreboard{Wave: 1},
			Active:     true,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Extents, id)
	delete(ecs.Movements, id)
	delete(ecs.HorizontalSteps, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Defenders, id)
	delete(ecs.Boundaries, id)
}

// Alive reports whether id still has a position.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// KindOf returns the tag of a live entity.
func (ecs *ECS) KindOf(id types.EntityID) (component.Kind, bool) {
	switch {
	case ecs.Enemies[id] != nil:
		return component.KindEnemy, true
	case ecs.Projectiles[id] != nil:
		return component.KindProjectile, true
	case ecs.Defenders[id] != nil:
		return component.KindDefender, true
	case ecs.Boundaries[id] != nil:
		return component.KindBoundary, true
	}
	return 0, false
}

// Bounds returns the bounding box of id. Entities without an extent are points.
func (ecs *ECS) Bounds(id types.EntityID) utils.AABB {
	pos := ecs.Positions[id]
	if pos == nil {
		panic(fmt.Sprintf("entity %d has no position", id))
	}
	box := utils.AABB{X: pos.X, Y: pos.Y}
	if ext := ecs.Extents[id]; ext != nil {
		box.Width, box.Height = ext.Width, ext.Height
	}
	return box
}

// EnemyIDs returns live enemy ids in creation order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Enemies))
}

// ProjectileIDs returns live projectile ids in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Projectiles))
}

// LiveEnemies is the size of the swarm.
func (ecs *ECS) LiveEnemies() int {
	return len(ecs.Enemies)
}

// LiveProjectiles is the number of projectiles in flight.
func (ecs *ECS) LiveProjectiles() int {
	return len(ecs.Projectiles)
}

// Defender returns the single player entity. Anything other than exactly one
// defender is a broken invariant.
func (ecs *ECS) Defender() (types.EntityID, *component.Defender) {
	if len(ecs.Defenders) != 1 {
		panic(fmt.Sprintf("expected exactly one defender, have %d", len(ecs.Defenders)))
	}
	for id, d := range ecs.Defenders {
		return id, d
	}
	panic("unreachable")
}

// Boundary returns the death line entity.
func (ecs *ECS) Boundary() types.EntityID {
	if len(ecs.Boundaries) != 1 {
		panic(fmt.Sprintf("expected exactly one boundary, have %d", len(ecs.Boundaries)))
	}
	for id := range ecs.Boundaries {
		return id
	}
	panic("unreachable")
}

// DrawOrder returns renderable ids in fixed layers: boundary, enemies, defender,
// projectiles. Each layer is in creation order, so the order is stable frame to frame.
func (ecs *ECS) DrawOrder() []types.EntityID {
	out := make([]types.EntityID, 0, len(ecs.Renderables))
	out = append(out, slices.Sorted(maps.Keys(ecs.Boundaries))...)
	out = append(out, ecs.EnemyIDs()...)
	out = append(out, slices.Sorted(maps.Keys(ecs.Defenders))...)
	out = append(out, ecs.ProjectileIDs()...)
	return slices.DeleteFunc(out, func(id types.EntityID) bool {
		return ecs.Renderables[id] == nil
	})
}
