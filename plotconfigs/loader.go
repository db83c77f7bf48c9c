package plotconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/fnplot/cmds"
	"github.com/reusee/fnplot/configs"
	"github.com/reusee/fnplot/logs"
)

//go:embed schema.cue
var schema string

var configPathsFlag = cmds.Collect[string]("-config", "load settings from a CUE file")

var filenames = []string{
	"fnplot.cue",
	".fnplot.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configPathsFlag...)

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
