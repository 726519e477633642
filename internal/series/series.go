package series

import "math"

// Series is an ordered sequence of float64 samples indexed by tick.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Max returns the largest sample, or 0 for an empty series.
func (s Series) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (s Series) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// ArgMax returns the index of the first occurrence of the maximum.
func (s Series) ArgMax() int {
	idx := 0
	for i, v := range s {
		if v > s[idx] {
			idx = i
		}
	}
	return idx
}

func (s Series) ArgMin() int {
	idx := 0
	for i, v := range s {
		if v < s[idx] {
			idx = i
		}
	}
	return idx
}
