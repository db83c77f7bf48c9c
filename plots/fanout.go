package plots

import (
	"errors"

	"github.com/reusee/fnplot/fnlang"
)

// Device draws plots. Render adds one plot, Clear removes all of them.
type Device interface {
	Render(points []fnlang.Point) error
	Clear() error
}

// Fanout samples with Sampler and forwards every request to each device in order.
type Fanout struct {
	Sampler Sampler
	Devices []Device
}

var _ fnlang.Plotter = Fanout{}

func (f Fanout) Sample(start, end float64) []float64 {
	return f.Sampler.Sample(start, end)
}

func (f Fanout) Render(points []fnlang.Point) error {
	var errs []error
	for _, device := range f.Devices {
		if err := device.Render(points); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Clear() error {
	var errs []error
	for _, device := range f.Devices {
		if err := device.Clear(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
