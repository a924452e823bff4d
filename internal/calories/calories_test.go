package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestParseExample(t *testing.T) {
	totals, err := Parse(example)
	require.NoError(t, err)
	assert.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, totals)

	assert.Equal(t, 24000, Max(totals))
	assert.Equal(t, []int{24000, 11000, 10000}, Top(totals, 3))
	assert.Equal(t, 45000, Sum(Top(totals, 3)))
}

func TestParseToleratesExtraBlankLines(t *testing.T) {
	totals, err := Parse("\n\n1\r\n2\r\n\r\n\r\n\r\n3")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, totals)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrNoGroups)

	_, err = Parse("\n \n")
	assert.ErrorIs(t, err, ErrNoGroups)

	_, err = Parse("100\nabc\n")
	require.ErrorIs(t, err, ErrBadLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTopDoesNotMutate(t *testing.T) {
	totals := []int{1, 3, 2}
	assert.Equal(t, []int{3, 2, 1}, Top(totals, 10))
	assert.Equal(t, []int{3}, Top(totals, 1))
	assert.Empty(t, Top(totals, 0))
	assert.Equal(t, []int{1, 3, 2}, totals)
}

func TestMaxNegative(t *testing.T) {
	assert.Equal(t, -1, Max([]int{-5, -1, -3}))
}
