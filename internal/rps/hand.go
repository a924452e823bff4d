// Package rps scores rock-paper-scissors strategy guides.
package rps

// Hand is one of the three shapes a player can throw.
type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

// Hands lists every valid hand in shape-score order.
var Hands = [...]Hand{Rock, Paper, Scissors}

// String returns the name of the hand
func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// Score returns the shape score: Rock 1, Paper 2, Scissors 3.
func (h Hand) Score() int {
	switch h {
	case Rock:
		return 1
	case Paper:
		return 2
	case Scissors:
		return 3
	default:
		return 0
	}
}

// Beats reports whether h defeats other.
func (h Hand) Beats(other Hand) bool {
	switch h {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	default:
		return false
	}
}

// IsValid returns true for Rock, Paper and Scissors
func (h Hand) IsValid() bool {
	return h >= Rock && h <= Scissors
}
