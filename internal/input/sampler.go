// internal/input/sampler.go
package input

import (
	"go-space-invaders/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyMap lists the keys bound to each action.
type KeyMap struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Fire  []ebiten.Key
}

// DefaultKeyMap binds the arrows or A/D to movement and Space to fire.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:  []ebiten.Key{ebiten.KeySpace},
	}
}

// Sampler turns the keyboard into one Intent per frame.
type Sampler struct {
	keys KeyMap
}

func NewSampler(keys KeyMap) *Sampler {
	return &Sampler{keys: keys}
}

// Sample reads held movement keys and the fire key's press edge.
func (s *Sampler) Sample() component.Intent {
	return component.Intent{
		MoveLeft:  anyPressed(s.keys.Left),
		MoveRight: anyPressed(s.keys.Right),
		Fire:      anyJustPressed(s.keys.Fire),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
