package fnlang

import "fmt"

type Var struct {
	Name string
	Val  Value
}

// Env is a scope frame. Frames are never shrunk, so a closure keeps seeing
// bindings added to the frame it captured.
type Env struct {
	Parent *Env
	Vars   []Var
}

func NewEnv() *Env {
	return &Env{}
}

// Extend builds a child frame of parent binding names to values positionally.
func Extend(names []string, values []Value, parent *Env) (*Env, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%w: %d names, %d values", ErrMalformedBinding, len(names), len(values))
	}
	env := &Env{
		Parent: parent,
		Vars:   make([]Var, 0, len(names)),
	}
	for i, name := range names {
		env.Define(name, values[i])
	}
	return env, nil
}

func (e *Env) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.Parent {
		if i := env.index(name); i >= 0 {
			return env.Vars[i].Val, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnresolvedName, name)
}

// Define binds name in this frame, overwriting an existing binding of the same frame.
func (e *Env) Define(name string, val Value) {
	if i := e.index(name); i >= 0 {
		e.Vars[i].Val = val
		return
	}
	e.Vars = append(e.Vars, Var{
		Name: name,
		Val:  val,
	})
}

// Names returns the names bound in this frame, in definition order.
func (e *Env) Names() []string {
	ret := make([]string, 0, len(e.Vars))
	for _, v := range e.Vars {
		ret = append(ret, v.Name)
	}
	return ret
}

func (e *Env) index(name string) int {
	for i := len(e.Vars) - 1; i >= 0; i-- {
		if e.Vars[i].Name == name {
			return i
		}
	}
	return -1
}
