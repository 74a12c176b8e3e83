// Package stats reduces a command's run samples to descriptive statistics.
package stats

import "math"

// Summary holds descriptive statistics for one metric across runs.
type Summary struct {
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Compute reduces values (in run order) to a Summary.
//
// It is a pure function: identical input yields bit-identical output.
// Summation walks the slice in ascending index order so repeated
// computation on the same samples can never disagree.
//
// StdDev is the sample standard deviation (n-1 divisor) for n >= 2 and 0
// for a single value. ok is false for empty input; there is no sentinel
// numeric value for "no data".
func Compute(values []float64) (s Summary, ok bool) {
	n := len(values)
	if n == 0 {
		return Summary{}, false
	}

	sum := 0.0
	s.Min = values[0]
	s.Max = values[0]
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(n)

	if n >= 2 {
		sq := 0.0
		for _, v := range values {
			d := v - s.Mean
			sq += d * d
		}
		s.StdDev = math.Sqrt(sq / float64(n-1))
	}

	return s, true
}
