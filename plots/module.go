package plots

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/fnplot/fnlang"
	"github.com/reusee/fnplot/logs"
	"github.com/reusee/fnplot/modes"
	"github.com/reusee/fnplot/plotconfigs"
)

// Module provides the Plotter. It needs plotconfigs.Module, logs.Module and a mode.
type Module struct {
	dscope.Module
}

// Output receives text charts.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

// Recorder is the device used in development mode.
func (Module) Recorder() *Recorder {
	return new(Recorder)
}

func (Module) Plotter(
	samples plotconfigs.Samples,
	renderers plotconfigs.Renderers,
	yamlPath plotconfigs.YAMLPath,
	size plotconfigs.ChartSize,
	mode modes.Mode,
	output Output,
	recorder *Recorder,
	logger logs.Logger,
) fnlang.Plotter {
	fanout := Fanout{
		Sampler: Uniform{
			Intervals: int(samples),
		},
	}

	if mode == modes.ModeDevelopment {
		fanout.Devices = append(fanout.Devices, recorder)
		return fanout
	}

	for _, name := range renderers {
		switch name {
		case "text":
			fanout.Devices = append(fanout.Devices, &Text{
				Writer: output,
				Width:  size.Width,
				Height: size.Height,
			})
		case "yaml":
			fanout.Devices = append(fanout.Devices, &YAML{
				Path: string(yamlPath),
			})
		default:
			// names from flags and config files are checked before reaching here
			logger.Error("skip renderer",
				"error", plotconfigs.CheckRenderer(name),
			)
		}
	}
	logger.Info("plotter",
		"renderers", []string(renderers),
		"samples", int(samples),
	)

	return fanout
}
