package component

// Intent is the player's input for one tick. Fire is a rising edge, not a held key.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
}

// Axis folds the two move flags into -1, 0 or +1.
func (i Intent) Axis() float64 {
	var v float64
	if i.MoveLeft {
		v--
	}
	if i.MoveRight {
		v++
	}
	return v
}
