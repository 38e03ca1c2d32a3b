package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"

	"go.uber.org/zap"
)

// Escalation is the single difficulty bump applied between waves.
type Escalation int

const (
	AddRow Escalation = iota
	AddColumn
	AddSpeed
)

func (e Escalation) String() string {
	switch e {
	case AddRow:
		return "row"
	case AddColumn:
		return "column"
	default:
		return "speed"
	}
}

// EscalationFor picks the bump for a cleared wave, round-robin on wave mod 3:
// 0 adds a row, 1 adds a column, anything else adds speed.
func EscalationFor(clearedWave int) Escalation {
	switch clearedWave % 3 {
	case 0:
		return AddRow
	case 1:
		return AddColumn
	default:
		return AddSpeed
	}
}

// Escalate returns d with exactly one bump applied.
func Escalate(d component.Difficulty, e Escalation, speedIncrement float64) component.Difficulty {
	switch e {
	case AddRow:
		d.Rows++
	case AddColumn:
		d.Columns++
	default:
		d.Speed += speedIncrement
	}
	return d
}

// GridLayout returns enemy centres for a rows x columns swarm, centred on x=0,
// bottom row edge anchored a fixed offset above the death line. Row 0 is the lowest.
func GridLayout(cfg *config.Settings, rows, columns int) []component.Position {
	sw := cfg.Swarm
	colWidth, rowHeight := sw.ColumnWidth(), sw.RowHeight()

	bottomEdge := cfg.Playfield.DeathLineY + sw.AnchorOffset
	leftEdge := -(float64(columns) / 2 * colWidth) + sw.Padding

	offsetX := leftEdge + sw.AlienWidth/2
	offsetY := bottomEdge + sw.AlienHeight/2

	out := make([]component.Position, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			out = append(out, component.Position{
				X: offsetX + float64(col)*colWidth,
				Y: offsetY + float64(row)*rowHeight,
			})
		}
	}
	return out
}

// WaveSystem respawns the swarm when it is wiped out and raises the difficulty.
type WaveSystem struct {
	ecs             *entity.ECS
	cfg             *config.Settings
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewWaveSystem(ecs *entity.ECS, cfg *config.Settings, eventDispatcher *event.Dispatcher, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		cfg:             cfg,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// Update triggers a transition when no enemy is left and the round is still
// active. After a loss the swarm is empty too, so the active flag is the guard.
func (s *WaveSystem) Update(deltaTime float64) {
	session := s.ecs.Session
	if !session.Active || s.ecs.LiveEnemies() > 0 {
		return
	}
	s.advance()
}

func (s *WaveSystem) advance() {
	session := s.ecs.Session
	sb := &session.Scoreboard
	cleared := sb.Wave

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.ScoreUpdate{Score: sb.Score, Wave: cleared},
	})

	bump := EscalationFor(cleared)
	session.Difficulty = Escalate(session.Difficulty, bump, s.cfg.Difficulty.SpeedIncrement)
	sb.Wave++

	d := session.Difficulty
	s.log.Info("wave cleared",
		zap.Int("cleared", cleared),
		zap.Int("next", sb.Wave),
		zap.Stringer("escalation", bump),
		zap.Int("rows", d.Rows),
		zap.Int("columns", d.Columns),
		zap.Float64("speed", d.Speed))

	s.SpawnWave()
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.ScoreUpdate{Score: sb.Score, Wave: sb.Wave},
	})
}

// SpawnWave creates a full grid from the current difficulty and returns its size.
func (s *WaveSystem) SpawnWave() int {
	session := s.ecs.Session
	d := session.Difficulty
	positions := GridLayout(s.cfg, d.Rows, d.Columns)
	for i, pos := range positions {
		id := s.spawnEnemy(pos, i/d.Columns, i%d.Columns)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EntitySpawned, Data: Describe(s.ecs, id)})
	}

	s.log.Debug("wave spawned",
		zap.Int("wave", session.Scoreboard.Wave),
		zap.Int("enemies", len(positions)))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveInfo{
			Wave:    session.Scoreboard.Wave,
			Rows:    d.Rows,
			Columns: d.Columns,
			Speed:   d.Speed,
		},
	})
	return len(positions)
}

func (s *WaveSystem) spawnEnemy(pos component.Position, row, column int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Extents[id] = &component.Extent{Width: s.cfg.Swarm.AlienWidth, Height: s.cfg.Swarm.AlienHeight}
	s.ecs.Movements[id] = &component.Movement{Direction: component.DirectionRight}
	s.ecs.HorizontalSteps[id] = &component.HorizontalStep{}
	s.ecs.Enemies[id] = &component.Enemy{Row: row, Column: column}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.AlienColor}
	return id
}
