package rps

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// String returns the name of the outcome
func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return "?"
	}
}

// Score returns the outcome score: Loss 0, Draw 3, Win 6.
func (o Outcome) Score() int {
	switch o {
	case Draw:
		return 3
	case Win:
		return 6
	default:
		return 0
	}
}

// Invert returns the same round seen from the other side of the table.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return o
	}
}

// HandFor returns the hand the player must throw against opponent to get want.
func HandFor(opponent Hand, want Outcome) Hand {
	for _, h := range Hands {
		if (Round{Opponent: opponent, Player: h}).Outcome() == want {
			return h
		}
	}
	return 0
}
