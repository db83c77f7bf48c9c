package debugs

import (
	"context"

	"github.com/reusee/fnplot/fnlang"
	"github.com/reusee/fnplot/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over the global bindings of an evaluator.
type Tap func(ctx context.Context, what string, evaluator *fnlang.Evaluator)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, evaluator *fnlang.Evaluator) {
		mappings := Globals(evaluator)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", evaluator.Global.Names(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// Globals converts the global environment, plus a few helpers, to starlark values.
// Closures become builtins that call back into the evaluator.
func Globals(evaluator *fnlang.Evaluator) starlark.StringDict {
	c := converter{
		evaluator: evaluator,
	}
	mappings := make(starlark.StringDict)

	mappings["sample"] = c.toStarlarkValue("sample", func(start, end float64) []float64 {
		if evaluator.Plotter == nil {
			return nil
		}
		return evaluator.Plotter.Sample(start, end)
	})
	mappings["clear"] = c.toStarlarkValue("clear", func() error {
		if evaluator.Plotter == nil {
			return fnlang.ErrNoPlotter
		}
		return evaluator.Plotter.Clear()
	})

	// program bindings shadow the helpers
	for _, name := range evaluator.Global.Names() {
		value, err := evaluator.Global.Lookup(name)
		if err != nil {
			continue
		}
		mappings[name] = c.toStarlarkValue(name, value)
	}

	return mappings
}
