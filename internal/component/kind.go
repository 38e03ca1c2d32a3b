package component

// Kind tags what an entity is.
type Kind int

const (
	KindEnemy Kind = iota
	KindProjectile
	KindDefender
	KindBoundary
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindDefender:
		return "defender"
	case KindBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}
