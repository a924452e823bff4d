package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDay2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day2.hcl")
	want := Day2{
		Day:         2,
		GeneratedAt: Timestamp(time.Date(2022, 12, 2, 5, 0, 0, 0, time.UTC)),
		Input:       "day_2/input.txt",
		Decode:      "hands",
		Rounds:      3,
		Wins:        1,
		Losses:      1,
		Draws:       1,
		TotalScore:  15,
	}

	require.NoError(t, Write(path, &want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `generated_at = "2022-12-02T05:00:00Z"`)
	assert.Contains(t, string(raw), "total_score")

	var got Day2
	require.NoError(t, Read(path, &got))
	assert.Equal(t, want, got)
}

func TestWriteDay1KeepsTopOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day1.hcl")
	want := Day1{
		Day:          1,
		GeneratedAt:  "2022-12-01T05:00:00Z",
		Input:        "example.txt",
		Elves:        5,
		MostCalories: 24000,
		Top:          []int{24000, 11000, 10000},
		TopTotal:     45000,
	}
	require.NoError(t, Write(path, &want))

	var got Day1
	require.NoError(t, Read(path, &got))
	assert.Equal(t, want, got)
}

func TestReadMissing(t *testing.T) {
	var got Day2
	assert.ErrorIs(t, Read(filepath.Join(t.TempDir(), "none.hcl"), &got), os.ErrNotExist)
}
