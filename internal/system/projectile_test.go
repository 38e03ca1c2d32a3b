package system

import (
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
)

func TestFireSpawnsAtDefender(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Positions[w.defender].X = 120
	sys := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher)

	id, ok := sys.Fire(1.0/60, true)
	if !ok {
		t.Fatal("first shot should fire")
	}
	pos := w.ecs.Positions[id]
	def := w.ecs.Positions[w.defender]
	if pos.X != def.X || pos.Y != def.Y {
		t.Errorf("spawned at %+v, want defender position %+v", *pos, *def)
	}
	if dir := w.ecs.Projectiles[id].Direction; dir != component.Upward {
		t.Errorf("direction = %v, want upward", dir)
	}
	if w.ecs.Session.FireTimer != 0 {
		t.Errorf("cooldown timer = %v, want reset", w.ecs.Session.FireTimer)
	}

	events := w.recorder.Drain()
	if count(events, event.EntitySpawned) != 1 || count(events, event.ProjectileFired) != 1 {
		t.Errorf("events = %+v", events)
	}
}

func TestFireNeedsEdge(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher)
	for i := 0; i < 100; i++ {
		if _, ok := sys.Fire(1, false); ok {
			t.Fatal("fired without a fire edge")
		}
	}
	if w.ecs.LiveProjectiles() != 0 {
		t.Error("projectiles spawned")
	}
}

func TestFireCooldown(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher)

	if _, ok := sys.Fire(0.01, true); !ok {
		t.Fatal("first shot should fire")
	}
	if _, ok := sys.Fire(0.125, true); ok {
		t.Error("fired 0.125s after the last shot")
	}
	if _, ok := sys.Fire(0.125, true); ok {
		t.Error("fired exactly at the cooldown; it must be exceeded")
	}
	if _, ok := sys.Fire(0.01, true); !ok {
		t.Error("cooldown exceeded but no shot")
	}
	if n := w.ecs.LiveProjectiles(); n != 2 {
		t.Errorf("live projectiles = %d, want 2", n)
	}
}

func TestFireEdgesWithinCooldownYieldOneShot(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher)
	sys.Fire(1.0/60, true)

	// Hammer fire every tick for just under the cooldown.
	for i := 0; i < 14; i++ {
		sys.Fire(1.0/60, true)
	}
	if n := w.ecs.LiveProjectiles(); n != 1 {
		t.Errorf("live projectiles = %d, want 1", n)
	}
}

func TestFireCap(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher)

	fired := 0
	for i := 0; i < 20; i++ {
		if _, ok := sys.Fire(1, true); ok {
			fired++
		}
		if n := w.ecs.LiveProjectiles(); n > w.cfg.Projectile.MaxLive {
			t.Fatalf("live projectiles = %d, cap is %d", n, w.cfg.Projectile.MaxLive)
		}
	}
	if fired != w.cfg.Projectile.MaxLive {
		t.Errorf("fired %d, want %d", fired, w.cfg.Projectile.MaxLive)
	}

	timer := w.ecs.Session.FireTimer
	if _, ok := sys.Fire(0, true); ok {
		t.Error("fired at the cap")
	}
	if w.ecs.Session.FireTimer != timer {
		t.Error("blocked shot reset the cooldown")
	}
}

func TestFireDisabledAfterLoss(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Session.Active = false
	if _, ok := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher).Fire(1, true); ok {
		t.Error("fired after loss")
	}
}

func TestProjectileAdvanceAndLeaveTop(t *testing.T) {
	w := newTestWorld(t)
	sys := NewProjectileSystem(w.ecs, w.cfg, w.dispatcher)
	top := w.cfg.Playfield.TopEdgeY
	half := w.cfg.Projectile.Height / 2

	low := w.addProjectile(0, 0)
	// leading edge lands exactly on the top edge after 0.1s
	high := w.addProjectile(10, top-half-w.cfg.Projectile.Speed*0.1)

	sys.Update(0.1)

	if y := w.ecs.Positions[low].Y; y != 45 {
		t.Errorf("y = %v, want 45", y)
	}
	if w.ecs.Alive(high) {
		t.Error("projectile at the top edge should be destroyed")
	}
	events := w.recorder.Drain()
	if count(events, event.EntityDestroyed) != 1 {
		t.Errorf("events = %+v", events)
	}
	if d := events[0].Data.(event.EntityDescriptor); d.ID != high || d.Kind != component.KindProjectile {
		t.Errorf("destroyed %+v", d)
	}
}
