package event

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/types"
)

const (
	EntitySpawned   EventType = "EntitySpawned"   // Data: EntityDescriptor
	EntityDestroyed EventType = "EntityDestroyed" // Data: EntityDescriptor
	ProjectileFired EventType = "ProjectileFired" // Data: EntityDescriptor
	EnemyKilled     EventType = "EnemyKilled"     // Data: Kill
	ScoreChanged    EventType = "ScoreChanged"    // Data: ScoreUpdate
	WaveCleared     EventType = "WaveCleared"     // Data: ScoreUpdate
	WaveStarted     EventType = "WaveStarted"     // Data: WaveInfo
	RoundLost       EventType = "RoundLost"       // Data: GameOver
)

// AllTypes lists every event type the simulation emits.
var AllTypes = []EventType{
	EntitySpawned, EntityDestroyed, ProjectileFired, EnemyKilled,
	ScoreChanged, WaveCleared, WaveStarted, RoundLost,
}

// EntityDescriptor is what a presentation layer needs to show or hide an entity.
type EntityDescriptor struct {
	ID            types.EntityID
	Kind          component.Kind
	X, Y          float64
	Width, Height float64
}

// Kill pairs the projectile and the enemy it destroyed.
type Kill struct {
	Projectile types.EntityID
	Enemy      types.EntityID
	Points     int
}

// ScoreUpdate asks the HUD to redraw score and wave text.
type ScoreUpdate struct {
	Score int
	Wave  int
}

// WaveInfo describes a freshly spawned wave.
type WaveInfo struct {
	Wave    int
	Rows    int
	Columns int
	Speed   float64
}

// GameOver is sent once, when the round is lost.
type GameOver struct {
	FinalScore int
	Wave       int
}
