package system

import (
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"

	"go.uber.org/zap/zaptest"
)

func newWave(w *testWorld) *WaveSystem {
	return NewWaveSystem(w.ecs, w.cfg, w.dispatcher, zaptest.NewLogger(w.t))
}

func TestEscalationFor(t *testing.T) {
	tests := []struct {
		wave int
		want Escalation
	}{
		{1, AddColumn},
		{2, AddSpeed},
		{3, AddRow},
		{4, AddColumn},
		{5, AddSpeed},
		{6, AddRow},
	}
	for _, tt := range tests {
		if got := EscalationFor(tt.wave); got != tt.want {
			t.Errorf("EscalationFor(%d) = %v, want %v", tt.wave, got, tt.want)
		}
	}
}

func TestEscalateAppliesOneBump(t *testing.T) {
	base := component.Difficulty{Rows: 4, Columns: 7, Speed: 10}
	tests := []struct {
		e    Escalation
		want component.Difficulty
	}{
		{AddRow, component.Difficulty{Rows: 5, Columns: 7, Speed: 10}},
		{AddColumn, component.Difficulty{Rows: 4, Columns: 8, Speed: 10}},
		{AddSpeed, component.Difficulty{Rows: 4, Columns: 7, Speed: 15}},
	}
	for _, tt := range tests {
		if got := Escalate(base, tt.e, 5); got != tt.want {
			t.Errorf("Escalate(%v) = %+v, want %+v", tt.e, got, tt.want)
		}
	}
}

func TestGridLayout(t *testing.T) {
	w := newTestWorld(t)
	positions := GridLayout(w.cfg, 4, 7)
	if len(positions) != 28 {
		t.Fatalf("got %d cells, want 28", len(positions))
	}

	var sumX float64
	for _, p := range positions[:7] {
		sumX += p.X
	}
	if sumX > 1e-9 || sumX < -1e-9 {
		t.Errorf("bottom row not centred, x sum = %v", sumX)
	}

	bottomY := w.cfg.Playfield.DeathLineY + w.cfg.Swarm.AnchorOffset + w.cfg.Swarm.AlienHeight/2
	if positions[0].Y != bottomY {
		t.Errorf("bottom row y = %v, want %v", positions[0].Y, bottomY)
	}
	if dy := positions[7].Y - positions[0].Y; dy != w.cfg.Swarm.RowHeight() {
		t.Errorf("row pitch = %v, want %v", dy, w.cfg.Swarm.RowHeight())
	}
	if dx := positions[1].X - positions[0].X; dx != w.cfg.Swarm.ColumnWidth() {
		t.Errorf("column pitch = %v, want %v", dx, w.cfg.Swarm.ColumnWidth())
	}
	if positions[0].X != -108 {
		t.Errorf("first column x = %v, want -108", positions[0].X)
	}
}

func TestSpawnWaveFreshEnemies(t *testing.T) {
	for _, grid := range [][2]int{{4, 7}, {1, 1}, {5, 8}} {
		w := newTestWorld(t)
		w.ecs.Session.Difficulty.Rows, w.ecs.Session.Difficulty.Columns = grid[0], grid[1]

		n := newWave(w).SpawnWave()

		if want := grid[0] * grid[1]; n != want || w.ecs.LiveEnemies() != want {
			t.Fatalf("%v: spawned %d (live %d), want %d", grid, n, w.ecs.LiveEnemies(), want)
		}
		for id := range w.ecs.Enemies {
			if d := w.ecs.Movements[id].Direction; d != component.DirectionRight {
				t.Errorf("enemy %d heading %v", id, d)
			}
			if s := w.ecs.HorizontalSteps[id].Displacement; s != 0 {
				t.Errorf("enemy %d displacement %v", id, s)
			}
			if !w.ecs.Alive(id) {
				t.Errorf("enemy %d not alive", id)
			}
		}
		events := w.recorder.Drain()
		if count(events, event.EntitySpawned) != grid[0]*grid[1] || count(events, event.WaveStarted) != 1 {
			t.Errorf("%v: events = %d spawned, %d started", grid, count(events, event.EntitySpawned), count(events, event.WaveStarted))
		}
	}
}

func TestWaveProgression(t *testing.T) {
	w := newTestWorld(t)
	sys := newWave(w)
	sys.SpawnWave()

	clear := func() {
		for _, id := range w.ecs.EnemyIDs() {
			w.ecs.RemoveEntity(id)
		}
		sys.Update(1.0 / 60)
	}

	want := []struct {
		wave          int
		rows, columns int
		speed         float64
	}{
		{2, 4, 8, 10},
		{3, 4, 8, 15},
		{4, 5, 8, 15},
		{5, 5, 9, 15},
	}
	for _, step := range want {
		clear()
		s := w.ecs.Session
		d := s.Difficulty
		if s.Scoreboard.Wave != step.wave || d.Rows != step.rows || d.Columns != step.columns || d.Speed != step.speed {
			t.Fatalf("wave %d: got wave=%d %+v, want %+v", step.wave, s.Scoreboard.Wave, d, step)
		}
		if w.ecs.LiveEnemies() != d.Rows*d.Columns {
			t.Fatalf("wave %d: %d enemies, want %d", step.wave, w.ecs.LiveEnemies(), d.Rows*d.Columns)
		}
	}
}

func TestWaveWaitsForLastEnemy(t *testing.T) {
	w := newTestWorld(t)
	sys := newWave(w)
	w.addEnemy(0, 100)
	sys.Update(1)
	if w.ecs.Session.Scoreboard.Wave != 1 {
		t.Error("wave advanced with an enemy alive")
	}
}

func TestWaveDoesNotRespawnAfterLoss(t *testing.T) {
	w := newTestWorld(t)
	sys := newWave(w)
	w.state.EndRound()
	w.recorder.Drain()

	sys.Update(1)

	if w.ecs.Session.Scoreboard.Wave != 1 || w.ecs.LiveEnemies() != 0 {
		t.Error("wave manager ran after the loss")
	}
	if len(w.recorder.Drain()) != 0 {
		t.Error("events emitted after loss")
	}
}
