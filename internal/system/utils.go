// internal/system/utils.go
package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
)

// Describe snapshots an entity for the presentation layer.
func Describe(ecs *entity.ECS, id types.EntityID) event.EntityDescriptor {
	kind, _ := ecs.KindOf(id)
	box := ecs.Bounds(id)
	return event.EntityDescriptor{
		ID:     id,
		Kind:   kind,
		X:      box.X,
		Y:      box.Y,
		Width:  box.Width,
		Height: box.Height,
	}
}

// destroy removes id and tells listeners about it.
func destroy(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID) {
	if !ecs.Alive(id) {
		return
	}
	desc := Describe(ecs, id)
	ecs.RemoveEntity(id)
	dispatcher.Dispatch(event.Event{Type: event.EntityDestroyed, Data: desc})
}
