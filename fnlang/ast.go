package fnlang

import (
	"fmt"
	"strings"
)

// Statement is implemented by every node that may appear in a sequence.
type Statement interface {
	fmt.Stringer
	stmt()
}

// Expression is a statement that produces a value for an enclosing node.
type Expression interface {
	Statement
	expr()
}

type Program struct {
	Seq *Sequence
}

func (p *Program) String() string {
	if p == nil || p.Seq == nil {
		return ""
	}
	return p.Seq.String()
}

type Sequence struct {
	Statements []Statement
}

type Definition struct {
	Name string
	Expr Expression
}

type Binding struct {
	Name string
	Expr Expression
}

type Let struct {
	Bindings []Binding
	Body     Expression
}

type Literal struct {
	Val Real
}

type Variable struct {
	Name string
}

type BinaryOp struct {
	Op    Op
	Left  Expression
	Right Expression
}

type FunctionDefinition struct {
	Params []string
	Body   Expression
}

type FunctionCall struct {
	Name string
	Args []Expression
}

type Plot struct {
	Map   Expression
	Var   string
	Start Expression
	End   Expression
}

type Clear struct{}

func (*Sequence) stmt()           {}
func (*Definition) stmt()         {}
func (*Let) stmt()                {}
func (*Literal) stmt()            {}
func (*Variable) stmt()           {}
func (*BinaryOp) stmt()           {}
func (*FunctionDefinition) stmt() {}
func (*FunctionCall) stmt()       {}
func (*Plot) stmt()               {}
func (*Clear) stmt()              {}

func (*Let) expr()                {}
func (*Literal) expr()            {}
func (*Variable) expr()           {}
func (*BinaryOp) expr()           {}
func (*FunctionDefinition) expr() {}
func (*FunctionCall) expr()       {}
func (*Plot) expr()               {}
func (*Clear) expr()              {}

func (s *Sequence) String() string {
	parts := make([]string, 0, len(s.Statements))
	for _, stmt := range s.Statements {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, "; ")
}

func (d *Definition) String() string {
	return fmt.Sprintf("%s = %s", d.Name, d.Expr)
}

func (l *Let) String() string {
	parts := make([]string, 0, len(l.Bindings))
	for _, b := range l.Bindings {
		parts = append(parts, fmt.Sprintf("%s = %s", b.Name, b.Expr))
	}
	return fmt.Sprintf("let %s in %s", strings.Join(parts, ", "), l.Body)
}

func (l *Literal) String() string {
	return l.Val.String()
}

func (v *Variable) String() string {
	return v.Name
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (f *FunctionDefinition) String() string {
	return fmt.Sprintf("fun (%s) -> %s", strings.Join(f.Params, ", "), f.Body)
}

func (f *FunctionCall) String() string {
	args := make([]string, 0, len(f.Args))
	for _, arg := range f.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(args, ", "))
}

func (p *Plot) String() string {
	return fmt.Sprintf("(plot (%s) for %s in [%s : %s])", p.Map, p.Var, p.Start, p.End)
}

func (*Clear) String() string {
	return "clear"
}
