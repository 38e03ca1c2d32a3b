// component/movement.go
package component

// Position is the entity centre in world units.
type Position struct {
	X, Y float64
}

// Extent is the full size of the bounding box.
type Extent struct {
	Width, Height float64
}

// Direction is the horizontal heading of a mover.
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionNone  Direction = 0
	DirectionRight Direction = 1
)

// Flip swaps left and right. DirectionNone never reverses.
func (d Direction) Flip() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Movement is the horizontal heading of a swarm member.
type Movement struct {
	Direction Direction
}

// HorizontalStep accumulates signed horizontal travel. It is measured from the
// swarm's spawn column, so reversals happen at ±threshold.
type HorizontalStep struct {
	Displacement float64
}
