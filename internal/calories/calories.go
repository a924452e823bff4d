// Package calories totals the snacks carried by each elf.
package calories

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoGroups is returned when the input holds no elves at all.
	ErrNoGroups = errors.New("no calorie groups in input")
	// ErrBadLine is returned for a line that is not an integer.
	ErrBadLine = errors.New("invalid calorie line")
)

// Parse splits the input on blank lines and sums each group. Totals are
// returned in input order.
func Parse(input string) ([]int, error) {
	var totals []int
	current, inGroup := 0, false

	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if inGroup {
				totals = append(totals, current)
			}
			current, inGroup = 0, false
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w %q", i+1, ErrBadLine, line)
		}
		current += n
		inGroup = true
	}
	if inGroup {
		totals = append(totals, current)
	}

	if len(totals) == 0 {
		return nil, ErrNoGroups
	}
	return totals, nil
}

// Top returns the n largest totals, largest first. n larger than the number
// of totals returns them all.
func Top(totals []int, n int) []int {
	sorted := make([]int, len(totals))
	copy(sorted, totals)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Max returns the largest total
func Max(totals []int) int {
	best := 0
	for i, t := range totals {
		if i == 0 || t > best {
			best = t
		}
	}
	return best
}

// Sum adds up totals
func Sum(totals []int) int {
	sum := 0
	for _, t := range totals {
		sum += t
	}
	return sum
}
