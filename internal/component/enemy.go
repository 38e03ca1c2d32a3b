package component

// Enemy marks a swarm member and remembers its spawn cell.
type Enemy struct {
	Row    int
	Column int
}
