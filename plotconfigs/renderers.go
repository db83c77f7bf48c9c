package plotconfigs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/fnplot/cmds"
	"github.com/reusee/fnplot/configs"
	"github.com/reusee/fnplot/vars"
)

// Renderers names the devices plots are drawn on: "text" or "yaml".
type Renderers []string

var ErrUnknownRenderer = errors.New("unknown renderer")

// RendererNames lists the accepted renderers, matching schema.cue.
var RendererNames = []string{"text", "yaml"}

func CheckRenderer(name string) error {
	if !slices.Contains(RendererNames, name) {
		return fmt.Errorf("%w: %q, expecting one of %v", ErrUnknownRenderer, name, RendererNames)
	}
	return nil
}

var renderersFlag []string

func init() {
	cmds.Define("-render", cmds.Func(func(name string) error {
		if err := CheckRenderer(name); err != nil {
			return err
		}
		renderersFlag = append(renderersFlag, name)
		return nil
	}).Desc("add a renderer: text or yaml"))
}

func (Module) Renderers(
	loader configs.Loader,
) Renderers {
	return vars.FirstNonEmpty(
		renderersFlag,
		configs.First[[]string](loader, "renderers"),
		[]string{"text"},
	)
}

// YAMLPath is the file the yaml renderer writes.
type YAMLPath string

var yamlPathFlag = cmds.Var[string]("-yaml", "file written by the yaml renderer")

func (Module) YAMLPath(
	loader configs.Loader,
) YAMLPath {
	return YAMLPath(vars.FirstNonZero(
		*yamlPathFlag,
		configs.First[string](loader, "yaml_path"),
		"plots.yaml",
	))
}

// ChartSize is the text chart size in characters.
type ChartSize struct {
	Width  int
	Height int
}

var (
	widthFlag  = cmds.Var[int]("-width", "text chart width")
	heightFlag = cmds.Var[int]("-height", "text chart height")
)

func (Module) ChartSize(
	loader configs.Loader,
) ChartSize {
	return ChartSize{
		Width: vars.FirstNonZero(
			*widthFlag,
			configs.First[int](loader, "width"),
			72,
		),
		Height: vars.FirstNonZero(
			*heightFlag,
			configs.First[int](loader, "height"),
			20,
		),
	}
}
