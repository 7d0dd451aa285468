package entity

// Outcome is the result of an attempt to place a mark.
type Outcome uint8

const (
	// Rejected means the move was ignored: the cell is occupied or the game has concluded.
	Rejected Outcome = iota
	Continue
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "rejected"
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// IsFinal - reports whether the outcome concludes the game.
func (that Outcome) IsFinal() bool {
	return that == Win || that == Draw
}
