package plotconfigs

import (
	"github.com/reusee/dscope"
)

// Module resolves the settings of fnplot. A flag wins over a config file,
// and a config file wins over the default.
type Module struct {
	dscope.Module
}
