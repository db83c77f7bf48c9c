package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/fnplot/cmds"
	"github.com/reusee/fnplot/debugs"
	"github.com/reusee/fnplot/fnlang"
	"github.com/reusee/fnplot/modes"
	"golang.org/x/term"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	runPaths = cmds.Collect[string]("run", "evaluate a program file")
	tapFlag  = cmds.Switch("tap", "open a starlark tap over the global bindings before exiting")
)

var replFlag bool

func init() {
	cmds.Define("repl", cmds.Func(func() {
		replFlag = true
	}).Desc("start an interactive session even if stdin is not a terminal").Alias("-i"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		evaluator *fnlang.Evaluator,
		runSource RunSource,
		tap debugs.Tap,
	) {

		switch {

		case len(*runPaths) > 0:
			for _, path := range *runPaths {
				content, err := os.ReadFile(path)
				if err != nil {
					exit(wrap(err))
				}
				if err := runSource(ctx, path, string(content), os.Stdout); err != nil {
					exit(err)
				}
			}

		case !replFlag && !term.IsTerminal(int(os.Stdin.Fd())):
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				exit(wrap(err))
			}
			if err := runSource(ctx, "stdin", string(content), os.Stdout); err != nil {
				exit(err)
			}

		default:
			runREPL(ctx, evaluator, runSource)

		}

		if *tapFlag {
			tap(ctx, "globals", evaluator)
		}
	})
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
