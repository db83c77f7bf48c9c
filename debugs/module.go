package debugs

import "github.com/reusee/dscope"

// Module provides Tap. It needs logs.Module.
type Module struct {
	dscope.Module
}
