package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/fnplot/debugs"
	"github.com/reusee/fnplot/fnlang"
	"github.com/reusee/fnplot/logs"
	"github.com/reusee/fnplot/plotconfigs"
	"github.com/reusee/fnplot/plots"
)

type Module struct {
	dscope.Module
	Logs        logs.Module
	PlotConfigs plotconfigs.Module
	Plots       plots.Module
	Debugs      debugs.Module
}

func (Module) Evaluator(
	plotter fnlang.Plotter,
	logger logs.Logger,
	maxDepth plotconfigs.MaxDepth,
) *fnlang.Evaluator {
	evaluator := fnlang.NewEvaluator(plotter)
	evaluator.Logger = logger
	evaluator.MaxDepth = int(maxDepth)
	return evaluator
}

// RunSource parses and evaluates content against the global environment and prints the resulting value to w.
type RunSource func(ctx context.Context, name string, content string, w io.Writer) error

func (Module) RunSource(
	evaluator *fnlang.Evaluator,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunSource {
	return func(ctx context.Context, name string, content string, w io.Writer) (err error) {
		ctx, _ = newSpan(ctx, name)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		program, err := fnlang.Parse(name, content)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "run",
			"name", name,
			"statements", len(program.Seq.Statements),
		)

		value, err := evaluator.Run(program)
		if err != nil {
			return err
		}
		return printValue(w, value)
	}
}

func printValue(w io.Writer, value fnlang.Value) (err error) {
	switch value := value.(type) {
	case nil:
	case fnlang.Real:
		_, err = fmt.Fprintf(w, "%g\n", float64(value))
	default:
		_, err = fmt.Fprintln(w, value)
	}
	return
}
