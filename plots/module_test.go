package plots

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fnplot/configs"
	"github.com/reusee/fnplot/fnlang"
	"github.com/reusee/fnplot/logs"
	"github.com/reusee/fnplot/modes"
	"github.com/reusee/fnplot/plotconfigs"
)

func TestModuleForTest(t *testing.T) {
	dscope.New(
		new(Module),
		new(plotconfigs.Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		plotter fnlang.Plotter,
		recorder *Recorder,
	) {
		xs := plotter.Sample(0, 1)
		if len(xs) != plotconfigs.DefaultSamples+1 {
			t.Fatalf("got %v", len(xs))
		}
		if err := plotter.Render(square); err != nil {
			t.Fatal(err)
		}
		if len(recorder.Renders) != 1 {
			t.Fatalf("got %v", recorder.Renders)
		}
	})
}

func TestModuleForProduction(t *testing.T) {
	buf := new(bytes.Buffer)
	path := filepath.Join(t.TempDir(), "out.yaml")
	dscope.New(
		new(Module),
		new(plotconfigs.Module),
		new(logs.Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() plotconfigs.Renderers {
			return plotconfigs.Renderers{"text", "yaml"}
		},
		func() plotconfigs.YAMLPath {
			return plotconfigs.YAMLPath(path)
		},
		func() plotconfigs.Samples {
			return 2
		},
		func() Output {
			return buf
		},
	).Call(func(
		plotter fnlang.Plotter,
	) {
		if xs := plotter.Sample(0, 1); len(xs) != 3 {
			t.Fatalf("got %v", xs)
		}
		if err := plotter.Render(square); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "x: [-1, 1]") {
			t.Fatalf("got %q", buf.String())
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "plots:") {
			t.Fatalf("got %s", content)
		}
	})
}

func TestModuleSkipsUnknownRenderer(t *testing.T) {
	buf := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		new(plotconfigs.Module),
		new(logs.Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() plotconfigs.Renderers {
			return plotconfigs.Renderers{"bogus", "text"}
		},
		func() Output {
			return buf
		},
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		plotter fnlang.Plotter,
	) {
		if err := plotter.Render(square); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "x: [") {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(logBuf.String(), "skip renderer") ||
			!strings.Contains(logBuf.String(), "unknown renderer") {
			t.Fatalf("got %q", logBuf.String())
		}
	})
}
