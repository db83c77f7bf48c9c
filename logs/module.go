package logs

import "github.com/reusee/dscope"

// Module provides Logger and NewSpan. The scope must also provide a modes.Mode.
type Module struct {
	dscope.Module
}
