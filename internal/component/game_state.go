package component

// Scoreboard holds the score and the wave number.
type Scoreboard struct {
	Score int
	Wave  int
}

// Difficulty is the grid shape and swarm speed for the next spawn.
type Difficulty struct {
	Rows    int
	Columns int
	Speed   float64
}

// Session is all mutable simulation state that is not an entity.
// Only the simulation loop writes it.
type Session struct {
	Scoreboard Scoreboard
	Difficulty Difficulty
	// Active is true while the current wave is in play. A loss clears it for good.
	Active bool
	// FireTimer counts seconds since the last shot.
	FireTimer float64
}
