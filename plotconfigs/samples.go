package plotconfigs

import (
	"github.com/reusee/fnplot/cmds"
	"github.com/reusee/fnplot/configs"
	"github.com/reusee/fnplot/vars"
)

// Samples is the number of intervals a plot range is divided into.
type Samples int

const DefaultSamples = 100

var samplesFlag = cmds.Var[int]("-samples", "number of intervals per plot")

func (Module) Samples(
	loader configs.Loader,
) Samples {
	return Samples(vars.FirstNonZero(
		max(*samplesFlag, 0),
		configs.First[int](loader, "samples"),
		DefaultSamples,
	))
}
