package plots

import (
	"os"

	"github.com/reusee/fnplot/fnlang"
	"gopkg.in/yaml.v3"
)

// YAML keeps a document of the plots since the last clear in the file at Path,
// rewriting it on every request.
type YAML struct {
	Path string

	doc yamlDocument
}

type yamlDocument struct {
	Plots []yamlPlot `yaml:"plots"`
}

type yamlPlot struct {
	Points []yamlPoint `yaml:"points"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var _ Device = new(YAML)

func (y *YAML) Render(points []fnlang.Point) error {
	plot := yamlPlot{
		Points: make([]yamlPoint, 0, len(points)),
	}
	for _, p := range points {
		plot.Points = append(plot.Points, yamlPoint{
			X: p.X,
			Y: p.Y,
		})
	}
	y.doc.Plots = append(y.doc.Plots, plot)
	return y.write()
}

func (y *YAML) Clear() error {
	y.doc.Plots = []yamlPlot{}
	return y.write()
}

func (y *YAML) write() error {
	content, err := yaml.Marshal(y.doc)
	if err != nil {
		return err
	}
	return os.WriteFile(y.Path, content, 0644)
}
