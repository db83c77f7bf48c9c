package plotconfigs

import (
	"errors"
	"fmt"

	"github.com/reusee/fnplot/cmds"
	"github.com/reusee/fnplot/configs"
)

// MaxDepth bounds the nesting of function calls. Zero means unbounded.
type MaxDepth int

const DefaultMaxDepth = 10000

var maxDepthFlag = cmds.Var[int]("-max-depth", "maximum function call depth, -1 for unbounded")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	switch {
	case *maxDepthFlag < 0:
		return 0
	case *maxDepthFlag > 0:
		return MaxDepth(*maxDepthFlag)
	}
	// a configured zero means unbounded, so it is not skipped like other zero values
	var depth int
	err := loader.AssignFirst("max_depth", &depth)
	if errors.Is(err, configs.ErrValueNotFound) {
		return DefaultMaxDepth
	}
	if err != nil {
		panic(fmt.Errorf("config max_depth: %w", err))
	}
	return MaxDepth(depth)
}
