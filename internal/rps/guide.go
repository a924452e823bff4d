package rps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

var (
	// ErrUnknownToken is returned for a column value outside A-C or X-Z.
	ErrUnknownToken = errors.New("unknown token")
	// ErrMalformedLine is returned for a line without exactly two columns.
	ErrMalformedLine = errors.New("malformed line")
)

// Decoding selects how the second column of a strategy guide is read.
type Decoding string

const (
	// DecodeHands reads X, Y, Z as Rock, Paper, Scissors.
	DecodeHands Decoding = "hands"
	// DecodeOutcomes reads X, Y, Z as Loss, Draw, Win.
	DecodeOutcomes Decoding = "outcomes"
)

// ParseDecoding validates a decoding name.
func ParseDecoding(s string) (Decoding, error) {
	switch d := Decoding(strings.ToLower(strings.TrimSpace(s))); d {
	case DecodeHands, DecodeOutcomes:
		return d, nil
	default:
		return "", fmt.Errorf("invalid decoding %q (want %q or %q)", s, DecodeHands, DecodeOutcomes)
	}
}

func parseOpponent(tok string) (Hand, error) {
	switch tok {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownToken, tok)
}

func parseResponse(tok string) (int, error) {
	switch tok {
	case "X":
		return 0, nil
	case "Y":
		return 1, nil
	case "Z":
		return 2, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownToken, tok)
}

// ParseRound decodes a single "A Y" line.
func ParseRound(line string, decoding Decoding) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Round{}, fmt.Errorf("%w: want 2 columns, got %d", ErrMalformedLine, len(fields))
	}

	opponent, err := parseOpponent(fields[0])
	if err != nil {
		return Round{}, err
	}
	idx, err := parseResponse(fields[1])
	if err != nil {
		return Round{}, err
	}

	switch decoding {
	case DecodeOutcomes:
		want := [...]Outcome{Loss, Draw, Win}[idx]
		return Round{Opponent: opponent, Player: HandFor(opponent, want)}, nil
	case DecodeHands, "":
		return Round{Opponent: opponent, Player: Hands[idx]}, nil
	default:
		return Round{}, fmt.Errorf("invalid decoding %q", decoding)
	}
}

// ParseGuide reads a whole strategy guide. Blank lines are skipped and the
// first bad line aborts the parse.
func ParseGuide(r io.Reader, decoding Decoding) ([]Round, error) {
	var rounds []Round
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		round, err := ParseRound(line, decoding)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rounds = append(rounds, round)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading strategy guide: %w", err)
	}
	return rounds, nil
}

// Generate deals n random rounds.
func Generate(rng *rand.Rand, n int) []Round {
	rounds := make([]Round, n)
	for i := range rounds {
		rounds[i] = Round{
			Opponent: Hands[rng.IntN(len(Hands))],
			Player:   Hands[rng.IntN(len(Hands))],
		}
	}
	return rounds
}

// FormatGuide renders rounds as a strategy guide, one line per round.
func FormatGuide(rounds []Round) string {
	var b strings.Builder
	for _, r := range rounds {
		b.WriteString(r.Tokens())
		b.WriteByte('\n')
	}
	return b.String()
}
