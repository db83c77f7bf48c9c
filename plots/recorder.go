package plots

import (
	"slices"

	"github.com/reusee/fnplot/fnlang"
)

// Recorder keeps every request in memory.
type Recorder struct {
	Renders [][]fnlang.Point
	Clears  int
	// Plots holds the renders since the last clear.
	Plots [][]fnlang.Point
}

var _ Device = new(Recorder)

func (r *Recorder) Render(points []fnlang.Point) error {
	points = slices.Clone(points)
	r.Renders = append(r.Renders, points)
	r.Plots = append(r.Plots, points)
	return nil
}

func (r *Recorder) Clear() error {
	r.Clears++
	r.Plots = nil
	return nil
}
