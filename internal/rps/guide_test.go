package rps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/adventofcode2022/internal/randutil"
)

const exampleGuide = "A Y\nB X\nC Z\n"

func TestParseGuideExample(t *testing.T) {
	tests := []struct {
		decoding Decoding
		total    int
		wins     int
		losses   int
		draws    int
	}{
		{DecodeHands, 15, 1, 1, 1},
		{DecodeOutcomes, 12, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.decoding), func(t *testing.T) {
			rounds, err := ParseGuide(strings.NewReader(exampleGuide), tt.decoding)
			require.NoError(t, err)
			require.Len(t, rounds, 3)

			tally := Play(rounds)
			assert.Equal(t, tt.total, tally.TotalScore)
			assert.Equal(t, tt.wins, tally.Wins)
			assert.Equal(t, tt.losses, tally.Losses)
			assert.Equal(t, tt.draws, tally.Draws)
		})
	}
}

func TestParseGuideSkipsBlankLines(t *testing.T) {
	rounds, err := ParseGuide(strings.NewReader("\nA Y\r\n\n  B X  \n\n"), DecodeHands)
	require.NoError(t, err)
	assert.Equal(t, []Round{{Rock, Paper}, {Paper, Rock}}, rounds)
}

func TestParseGuideErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		line  string
	}{
		{"unknown opponent", "A Y\nD X\n", ErrUnknownToken, "line 2"},
		{"unknown response", "A W\n", ErrUnknownToken, "line 1"},
		{"lowercase", "a y\n", ErrUnknownToken, "line 1"},
		{"one column", "A Y\nB\n", ErrMalformedLine, "line 2"},
		{"three columns", "A Y Z\n", ErrMalformedLine, "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds, err := ParseGuide(strings.NewReader(tt.input), DecodeHands)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.line)
			assert.Nil(t, rounds)
		})
	}
}

func TestParseDecoding(t *testing.T) {
	d, err := ParseDecoding("Outcomes")
	require.NoError(t, err)
	assert.Equal(t, DecodeOutcomes, d)

	_, err = ParseDecoding("shapes")
	assert.Error(t, err)
}

func TestGenerateRoundTrip(t *testing.T) {
	rounds := Generate(randutil.New(42), 200)
	require.Len(t, rounds, 200)
	for _, r := range rounds {
		assert.True(t, r.Opponent.IsValid())
		assert.True(t, r.Player.IsValid())
	}

	parsed, err := ParseGuide(strings.NewReader(FormatGuide(rounds)), DecodeHands)
	require.NoError(t, err)
	assert.Equal(t, rounds, parsed)

	again := Generate(randutil.New(42), 200)
	assert.Equal(t, rounds, again, "same seed should deal the same guide")
}
