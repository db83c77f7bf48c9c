package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/fnplot/fnlang"
)

func runREPL(ctx context.Context, evaluator *fnlang.Evaluator, runSource RunSource) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".fnplot_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		evalLine(ctx, line, evaluator, runSource, rl.Stdout(), rl.Stderr())
	}
}

// evalLine handles one REPL line. Errors are reported and the session goes on.
func evalLine(
	ctx context.Context,
	line string,
	evaluator *fnlang.Evaluator,
	runSource RunSource,
	stdout io.Writer,
	stderr io.Writer,
) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return
	case ":env":
		for _, name := range evaluator.Global.Names() {
			value, err := evaluator.Global.Lookup(name)
			if err != nil {
				continue
			}
			if value == nil {
				fmt.Fprintln(stdout, name)
				continue
			}
			fmt.Fprintf(stdout, "%s = %v\n", name, value)
		}
		return
	}
	if err := runSource(ctx, "repl", line, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
}
