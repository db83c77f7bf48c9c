package fnlang

type Point struct {
	X float64
	Y float64
}

// Plotter is the rendering device driven by plot and clear.
type Plotter interface {
	// Sample returns the x coordinates to evaluate over [start, end], in order.
	Sample(start, end float64) []float64
	// Render receives every point of one plot, after all of them are computed.
	Render(points []Point) error
	Clear() error
}
