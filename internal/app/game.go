// internal/app/game.go
package app

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/types"

	"go.uber.org/zap"
)

// Game holds the simulation state and runs one tick at a time.
type Game struct {
	Settings         *config.Settings
	ECS              *entity.ECS
	SwarmSystem      *system.SwarmSystem
	DefenderSystem   *system.DefenderSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	DefenderID       types.EntityID
	BoundaryID       types.EntityID

	log      *zap.Logger
	recorder *event.Recorder
	ticks    uint64
}

// Snapshot is a read-only view for HUD and debugging.
type Snapshot struct {
	Score           int
	Wave            int
	Difficulty      component.Difficulty
	Active          bool
	LiveEnemies     int
	LiveProjectiles int
	DefenderX       float64
	FireTimer       float64
	Ticks           uint64
	GameTime        float64
}

// NewGame builds a session: boundary, defender and the first wave.
func NewGame(cfg *config.Settings, log *zap.Logger) *Game {
	if cfg == nil {
		panic("settings cannot be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	ecs := entity.NewECS()
	ecs.Session.Difficulty = component.Difficulty{
		Rows:    cfg.Difficulty.Rows,
		Columns: cfg.Difficulty.Columns,
		Speed:   cfg.Difficulty.Speed,
	}
	// first shot is available immediately
	ecs.Session.FireTimer = cfg.Projectile.Cooldown

	dispatcher := event.NewDispatcher()
	g := &Game{
		Settings:        cfg,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		log:             log,
		recorder:        &event.Recorder{},
	}
	dispatcher.SubscribeAll(g.recorder)

	g.SwarmSystem = system.NewSwarmSystem(ecs, cfg)
	g.DefenderSystem = system.NewDefenderSystem(ecs, cfg)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, cfg, dispatcher)
	g.StateSystem = system.NewStateSystem(ecs, dispatcher, log)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.StateSystem, dispatcher, cfg.Scoring.PointsPerKill)
	g.WaveSystem = system.NewWaveSystem(ecs, cfg, dispatcher, log)

	g.BoundaryID = g.createBoundary()
	g.DefenderID = g.createDefender()
	spawned := g.WaveSystem.SpawnWave()
	dispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.ScoreUpdate{Score: 0, Wave: ecs.Session.Scoreboard.Wave},
	})

	log.Info("session started",
		zap.Int("enemies", spawned),
		zap.Int("rows", cfg.Difficulty.Rows),
		zap.Int("columns", cfg.Difficulty.Columns))
	return g
}

// Update runs one tick in fixed order and returns the events it produced.
// The first call also returns the events of NewGame.
func (g *Game) Update(deltaTime float64, intent component.Intent) []event.Event {
	g.ticks++
	g.ECS.GameTime += deltaTime

	g.SwarmSystem.Update(deltaTime)
	g.DefenderSystem.Update(deltaTime, intent)
	g.ProjectileSystem.Fire(deltaTime, intent.Fire)
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.WaveSystem.Update(deltaTime)

	return g.recorder.Drain()
}

// Active reports whether the round is still in play.
func (g *Game) Active() bool {
	return g.StateSystem.Active()
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

func (g *Game) Snapshot() Snapshot {
	s := g.ECS.Session
	return Snapshot{
		Score:           s.Scoreboard.Score,
		Wave:            s.Scoreboard.Wave,
		Difficulty:      s.Difficulty,
		Active:          s.Active,
		LiveEnemies:     g.ECS.LiveEnemies(),
		LiveProjectiles: g.ECS.LiveProjectiles(),
		DefenderX:       g.ECS.Positions[g.DefenderID].X,
		FireTimer:       g.ECS.Session.FireTimer,
		Ticks:           g.ticks,
		GameTime:        g.ECS.GameTime,
	}
}

func (g *Game) createBoundary() types.EntityID {
	pf := g.Settings.Playfield
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 0, Y: pf.DeathLineY}
	g.ECS.Extents[id] = &component.Extent{Width: pf.Width, Height: pf.DeathLineHeight}
	g.ECS.Boundaries[id] = &component.Boundary{}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.DeathLineColor}
	g.EventDispatcher.Dispatch(event.Event{Type: event.EntitySpawned, Data: system.Describe(g.ECS, id)})
	return id
}

func (g *Game) createDefender() types.EntityID {
	cfg := g.Settings
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 0, Y: cfg.Playfield.DeathLineY - cfg.Defender.OffsetFromLine}
	g.ECS.Extents[id] = &component.Extent{Width: cfg.Defender.Width, Height: cfg.Defender.Height}
	g.ECS.Defenders[id] = &component.Defender{Speed: cfg.Defender.Speed}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.DefenderColor}
	g.EventDispatcher.Dispatch(event.Event{Type: event.EntitySpawned, Data: system.Describe(g.ECS, id)})
	return id
}
