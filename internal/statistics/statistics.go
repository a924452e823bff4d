// Package statistics summarises a series of integer totals.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Statistics accumulates values and answers summary queries over them.
type Statistics struct {
	Count  int
	Sum    int
	SumSq  float64 // sum of squares for variance
	Min    int
	Max    int
	Values []int
}

// Add incorporates a new value
func (s *Statistics) Add(v int) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.SumSq += float64(v) * float64(v)
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// Variance returns the sample variance
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistics) sorted() []int {
	sorted := make([]int, len(s.Values))
	copy(sorted, s.Values)
	sort.Ints(sorted)
	return sorted
}

// Median returns the middle value, averaging the two middle values for an
// even count.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// Percentile returns the linearly interpolated value at p (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}

	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

// Validate checks the running counters agree with the stored values.
func (s *Statistics) Validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("invalid count: %d", s.Count)
	}
	if len(s.Values) != s.Count {
		return fmt.Errorf("values length (%d) does not match count (%d)", len(s.Values), s.Count)
	}
	sum := 0
	for _, v := range s.Values {
		sum += v
	}
	if sum != s.Sum {
		return fmt.Errorf("sum mismatch: running %d, values %d", s.Sum, sum)
	}
	if s.Min > s.Max {
		return fmt.Errorf("min %d exceeds max %d", s.Min, s.Max)
	}
	return nil
}
