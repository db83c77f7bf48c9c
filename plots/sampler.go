package plots

import "math"

type Sampler interface {
	Sample(start, end float64) []float64
}

// Uniform divides [start, end] into Intervals equal steps, both ends included.
type Uniform struct {
	Intervals int
}

var _ Sampler = Uniform{}

func (u Uniform) Sample(start, end float64) []float64 {
	if math.IsNaN(start) || math.IsNaN(end) ||
		math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil
	}
	if start == end {
		return []float64{start}
	}
	n := max(u.Intervals, 1)
	step := (end - start) / float64(n)
	xs := make([]float64, n+1)
	for i := range n {
		xs[i] = start + step*float64(i)
	}
	xs[n] = end
	return xs
}
