package system

import (
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"

	"go.uber.org/zap/zaptest"
)

// testWorld wires an ECS with a defender and a death line but no swarm.
type testWorld struct {
	t          *testing.T
	cfg        *config.Settings
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	recorder   *event.Recorder
	state      *StateSystem
	defender   types.EntityID
	boundary   types.EntityID
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.Default()
	ecs := entity.NewECS()
	ecs.Session.Difficulty = component.Difficulty{
		Rows:    cfg.Difficulty.Rows,
		Columns: cfg.Difficulty.Columns,
		Speed:   cfg.Difficulty.Speed,
	}
	ecs.Session.FireTimer = cfg.Projectile.Cooldown

	w := &testWorld{
		t:          t,
		cfg:        cfg,
		ecs:        ecs,
		dispatcher: event.NewDispatcher(),
		recorder:   &event.Recorder{},
	}
	w.dispatcher.SubscribeAll(w.recorder)
	w.state = NewStateSystem(ecs, w.dispatcher, zaptest.NewLogger(t))

	w.boundary = ecs.NewEntity()
	ecs.Positions[w.boundary] = &component.Position{Y: cfg.Playfield.DeathLineY}
	ecs.Extents[w.boundary] = &component.Extent{Width: cfg.Playfield.Width, Height: cfg.Playfield.DeathLineHeight}
	ecs.Boundaries[w.boundary] = &component.Boundary{}

	w.defender = ecs.NewEntity()
	ecs.Positions[w.defender] = &component.Position{Y: cfg.Playfield.DeathLineY - cfg.Defender.OffsetFromLine}
	ecs.Extents[w.defender] = &component.Extent{Width: cfg.Defender.Width, Height: cfg.Defender.Height}
	ecs.Defenders[w.defender] = &component.Defender{Speed: cfg.Defender.Speed}
	return w
}

func (w *testWorld) addEnemy(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Extents[id] = &component.Extent{Width: w.cfg.Swarm.AlienWidth, Height: w.cfg.Swarm.AlienHeight}
	w.ecs.Movements[id] = &component.Movement{Direction: component.DirectionRight}
	w.ecs.HorizontalSteps[id] = &component.HorizontalStep{}
	w.ecs.Enemies[id] = &component.Enemy{}
	return id
}

func (w *testWorld) addProjectile(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Extents[id] = &component.Extent{Width: w.cfg.Projectile.Width, Height: w.cfg.Projectile.Height}
	w.ecs.Projectiles[id] = &component.Projectile{Speed: w.cfg.Projectile.Speed, Direction: component.Upward}
	return id
}

// count returns how many drained events have type typ.
func count(events []event.Event, typ event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
