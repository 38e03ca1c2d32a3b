package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
)

// CollisionSystem resolves enemy/boundary and projectile/enemy overlaps and keeps score.
type CollisionSystem struct {
	ecs             *entity.ECS
	state           *StateSystem
	eventDispatcher *event.Dispatcher
	pointsPerKill   int
}

func NewCollisionSystem(ecs *entity.ECS, state *StateSystem, eventDispatcher *event.Dispatcher, pointsPerKill int) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		state:           state,
		eventDispatcher: eventDispatcher,
		pointsPerKill:   pointsPerKill,
	}
}

func (s *CollisionSystem) Update() {
	s.checkBoundary()
	s.checkProjectiles()
}

// checkBoundary ends the round on the first enemy touching the death line.
// Several enemies crossing in the same tick still make a single transition.
func (s *CollisionSystem) checkBoundary() {
	if s.ecs.LiveEnemies() == 0 {
		return
	}
	line := s.ecs.Bounds(s.ecs.Boundary())
	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.Bounds(id).Overlaps(line) {
			s.state.EndRound()
			return
		}
	}
}

// checkProjectiles destroys each projectile together with the first enemy it
// overlaps. Both go away immediately, so neither can pair again this tick.
func (s *CollisionSystem) checkProjectiles() {
	enemies := s.ecs.EnemyIDs()
	for _, pid := range s.ecs.ProjectileIDs() {
		shot := s.ecs.Bounds(pid)
		for _, eid := range enemies {
			if s.ecs.Enemies[eid] == nil {
				continue
			}
			if !shot.Overlaps(s.ecs.Bounds(eid)) {
				continue
			}
			s.score(pid, eid)
			break
		}
	}
}

func (s *CollisionSystem) score(projectileID, enemyID types.EntityID) {
	sb := &s.ecs.Session.Scoreboard
	sb.Score += s.pointsPerKill

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.Kill{Projectile: projectileID, Enemy: enemyID, Points: s.pointsPerKill},
	})
	destroy(s.ecs, s.eventDispatcher, projectileID)
	destroy(s.ecs, s.eventDispatcher, enemyID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.ScoreUpdate{Score: sb.Score, Wave: sb.Wave},
	})
}
