// internal/component/projectile.go
package component

// VerticalDirection — направление полёта снаряда
type VerticalDirection int

const (
	Downward VerticalDirection = -1
	Upward   VerticalDirection = 1
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Speed     float64
	Direction VerticalDirection
}
