package plots

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/reusee/fnplot/fnlang"
)

var glyphs = []rune("*o+x#@")

// Text draws all plots since the last clear as one character chart, redrawn on each render.
type Text struct {
	Writer io.Writer
	Width  int
	Height int

	plots [][]fnlang.Point
}

var _ Device = new(Text)

func (t *Text) Render(points []fnlang.Point) error {
	t.plots = append(t.plots, slices.Clone(points))
	_, err := io.WriteString(t.Writer, t.chart())
	return err
}

func (t *Text) Clear() error {
	t.plots = nil
	_, err := io.WriteString(t.Writer, "(cleared)\n")
	return err
}

func (t *Text) chart() string {
	width := max(t.Width, 16)
	height := max(t.Height, 4)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, points := range t.plots {
		for _, p := range points {
			if !finite(p) {
				continue
			}
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return "(no points)\n"
	}
	if minX == maxX {
		minX, maxX = minX-1, maxX+1
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	col := func(x float64) int {
		return int(math.Round((x - minX) / (maxX - minX) * float64(width-1)))
	}
	row := func(y float64) int {
		return height - 1 - int(math.Round((y-minY)/(maxY-minY)*float64(height-1)))
	}

	// axes
	if minY <= 0 && 0 <= maxY {
		r := row(0)
		for c := range width {
			grid[r][c] = '-'
		}
	}
	if minX <= 0 && 0 <= maxX {
		c := col(0)
		for r := range height {
			if grid[r][c] == '-' {
				grid[r][c] = '+'
			} else {
				grid[r][c] = '|'
			}
		}
	}

	for i, points := range t.plots {
		glyph := glyphs[i%len(glyphs)]
		for _, p := range points {
			if !finite(p) {
				continue
			}
			grid[row(p.Y)][col(p.X)] = glyph
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "y: [%g, %g]\n", minY, maxY)
	for _, line := range grid {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "x: [%g, %g]\n", minX, maxX)
	return sb.String()
}

func finite(p fnlang.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
