package component

// Defender is the player-controlled cannon. Exactly one exists per session.
type Defender struct {
	Speed float64
}

// Boundary is the static death line. It never moves and is never destroyed.
type Boundary struct{}
