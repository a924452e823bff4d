package rps

// Tally accumulates scores and outcome counts over a run.
type Tally struct {
	TotalScore int
	Wins       int
	Losses     int
	Draws      int
}

// Add scores a round into the tally.
func (t *Tally) Add(r Round) {
	score, outcome := r.Score()
	t.TotalScore += score
	switch outcome {
	case Win:
		t.Wins++
	case Loss:
		t.Losses++
	case Draw:
		t.Draws++
	}
}

// Rounds returns the number of rounds added
func (t *Tally) Rounds() int {
	return t.Wins + t.Losses + t.Draws
}

// Play tallies every round.
func Play(rounds []Round) Tally {
	var t Tally
	for _, r := range rounds {
		t.Add(r)
	}
	return t
}
