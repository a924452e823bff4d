package rps

import "fmt"

// Round is a single opponent/player hand pair.
type Round struct {
	Opponent Hand
	Player   Hand
}

// Outcome classifies the round for the player.
func (r Round) Outcome() Outcome {
	switch r {
	case Round{Rock, Rock}, Round{Paper, Paper}, Round{Scissors, Scissors}:
		return Draw
	case Round{Rock, Paper}, Round{Paper, Scissors}, Round{Scissors, Rock}:
		return Win
	case Round{Rock, Scissors}, Round{Paper, Rock}, Round{Scissors, Paper}:
		return Loss
	}
	panic(fmt.Sprintf("rps: invalid round %v", r))
}

// Score returns the player's score for the round together with its outcome.
func (r Round) Score() (int, Outcome) {
	outcome := r.Outcome()
	return r.Player.Score() + outcome.Score(), outcome
}

// Swap returns the round with the two sides exchanged.
func (r Round) Swap() Round {
	return Round{Opponent: r.Player, Player: r.Opponent}
}

// Tokens renders the round as a strategy guide line, e.g. "A Y".
func (r Round) Tokens() string {
	return fmt.Sprintf("%c %c", 'A'+rune(r.Opponent-Rock), 'X'+rune(r.Player-Rock))
}

// String returns a readable form such as "Rock vs Paper"
func (r Round) String() string {
	return fmt.Sprintf("%s vs %s", r.Opponent, r.Player)
}
