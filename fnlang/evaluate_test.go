package fnlang

import (
	"errors"
	"fmt"
	"testing"
)

type testPlotter struct {
	xs      []float64
	bounds  [][2]float64
	renders [][]Point
	clears  int
}

func (p *testPlotter) Sample(start, end float64) []float64 {
	p.bounds = append(p.bounds, [2]float64{start, end})
	return p.xs
}

func (p *testPlotter) Render(points []Point) error {
	p.renders = append(p.renders, points)
	return nil
}

func (p *testPlotter) Clear() error {
	p.clears++
	return nil
}

func lit(f float64) *Literal {
	return &Literal{Val: Real(f)}
}

func ref(name string) *Variable {
	return &Variable{Name: name}
}

func bin(op Op, left, right Expression) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

func program(stmts ...Statement) *Program {
	return &Program{
		Seq: &Sequence{
			Statements: stmts,
		},
	}
}

func TestEmptySequence(t *testing.T) {
	e := NewEvaluator(nil)
	v, err := e.Run(program())
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(0) {
		t.Fatalf("got %v", v)
	}
	v, err = e.Run(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(0) {
		t.Fatalf("got %v", v)
	}

	empty := &Program{}
	v, err = e.Run(empty)
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(0) {
		t.Fatalf("got %v", v)
	}
	if str := empty.String(); str != "" {
		t.Fatalf("got %q", str)
	}
}

func TestSequenceValue(t *testing.T) {
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Definition{Name: "a", Expr: lit(1)},
		&Definition{Name: "b", Expr: bin(OpAdd, ref("a"), lit(1))},
		bin(OpMul, ref("b"), lit(10)),
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(20) {
		t.Fatalf("got %v", v)
	}
}

func TestDefinitionValue(t *testing.T) {
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Definition{Name: "a", Expr: lit(7)},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(7) {
		t.Fatalf("got %v", v)
	}
	got, err := e.Global.Lookup("a")
	if err != nil {
		t.Fatal(err)
	}
	if got != Real(7) {
		t.Fatalf("got %v", got)
	}
}

func TestArithmeticTree(t *testing.T) {
	// 2 + 3 * 4
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		bin(OpAdd, lit(2), bin(OpMul, lit(3), lit(4))),
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(14) {
		t.Fatalf("got %v", v)
	}

	v, err = e.Run(program(bin(OpMod, lit(7), lit(3))))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(1) {
		t.Fatalf("got %v", v)
	}

	_, err = e.Run(program(bin(OpDiv, lit(1), lit(0))))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("got %v", err)
	}
}

func TestLetNested(t *testing.T) {
	// let x = 1 in let y = x in y
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Let{
			Bindings: []Binding{{Name: "x", Expr: lit(1)}},
			Body: &Let{
				Bindings: []Binding{{Name: "y", Expr: ref("x")}},
				Body:     ref("y"),
			},
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(1) {
		t.Fatalf("got %v", v)
	}
}

func TestLetBindingsSeeOuterScope(t *testing.T) {
	// let x = 1, y = x in y
	e := NewEvaluator(nil)
	_, err := e.Run(program(
		&Let{
			Bindings: []Binding{
				{Name: "x", Expr: lit(1)},
				{Name: "y", Expr: ref("x")},
			},
			Body: ref("y"),
		},
	))
	if !errors.Is(err, ErrUnresolvedName) {
		t.Fatalf("got %v", err)
	}

	// with an outer x, y sees the outer one
	e.Global.Define("x", Real(5))
	v, err := e.Run(program(
		&Let{
			Bindings: []Binding{
				{Name: "x", Expr: lit(1)},
				{Name: "y", Expr: ref("x")},
			},
			Body: bin(OpAdd, ref("x"), ref("y")),
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(6) {
		t.Fatalf("got %v", v)
	}
}

func TestLetDoesNotLeak(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Run(program(
		&Let{
			Bindings: []Binding{{Name: "x", Expr: lit(1)}},
			Body:     ref("x"),
		},
		ref("x"),
	))
	if !errors.Is(err, ErrUnresolvedName) {
		t.Fatalf("got %v", err)
	}
}

func TestFunctionCall(t *testing.T) {
	// f(x) = x * x; let y = f(3) in y + 1
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Definition{
			Name: "f",
			Expr: &FunctionDefinition{
				Params: []string{"x"},
				Body:   bin(OpMul, ref("x"), ref("x")),
			},
		},
		&Let{
			Bindings: []Binding{{
				Name: "y",
				Expr: &FunctionCall{Name: "f", Args: []Expression{lit(3)}},
			}},
			Body: bin(OpAdd, ref("y"), lit(1)),
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(10) {
		t.Fatalf("got %v", v)
	}

	_, err = e.Run(program(
		&FunctionCall{Name: "f", Args: []Expression{lit(1), lit(2)}},
	))
	if !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("got %v", err)
	}

	_, err = e.Run(program(
		&FunctionCall{Name: "g", Args: []Expression{lit(1)}},
	))
	if !errors.Is(err, ErrUnresolvedName) {
		t.Fatalf("got %v", err)
	}
}

func TestFunctionDefinitionDoesNotEvaluateBody(t *testing.T) {
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&FunctionDefinition{
			Body: bin(OpDiv, lit(1), lit(0)),
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	fn, ok := v.(*Function)
	if !ok {
		t.Fatalf("got %T", v)
	}
	if fn.Env != e.Global {
		t.Fatal("closure should capture the global environment")
	}
}

func TestNotCallable(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Run(program(
		&Definition{Name: "x", Expr: lit(1)},
		&FunctionCall{Name: "x"},
	))
	if !errors.Is(err, ErrNotCallable) {
		t.Fatalf("got %v", err)
	}
}

func TestArgumentsEvaluatedInCallerEnv(t *testing.T) {
	// f(a) = a; let z = 2 in f(z)
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Definition{
			Name: "f",
			Expr: &FunctionDefinition{Params: []string{"a"}, Body: ref("a")},
		},
		&Let{
			Bindings: []Binding{{Name: "z", Expr: lit(2)}},
			Body:     &FunctionCall{Name: "f", Args: []Expression{ref("z")}},
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(2) {
		t.Fatalf("got %v", v)
	}
}

func TestArgumentErrorBeforeArityCheck(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Run(program(
		&Definition{
			Name: "f",
			Expr: &FunctionDefinition{Params: []string{"a"}, Body: ref("a")},
		},
		&FunctionCall{Name: "f", Args: []Expression{ref("nope"), lit(1)}},
	))
	if !errors.Is(err, ErrUnresolvedName) {
		t.Fatalf("got %v", err)
	}
}

func TestLexicalScoping(t *testing.T) {
	// k = 1; f(x) = x + k; g(k) = f(0); g(100)
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Definition{Name: "k", Expr: lit(1)},
		&Definition{
			Name: "f",
			Expr: &FunctionDefinition{Params: []string{"x"}, Body: bin(OpAdd, ref("x"), ref("k"))},
		},
		&Definition{
			Name: "g",
			Expr: &FunctionDefinition{
				Params: []string{"k"},
				Body:   &FunctionCall{Name: "f", Args: []Expression{lit(0)}},
			},
		},
		&FunctionCall{Name: "g", Args: []Expression{lit(100)}},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(1) {
		t.Fatalf("got %v", v)
	}
}

func TestEscapingClosure(t *testing.T) {
	// adder(n) = fun (x) -> x + n; add2 = adder(2); add2(40)
	e := NewEvaluator(nil)
	adder := &FunctionDefinition{
		Params: []string{"n"},
		Body: &FunctionDefinition{
			Params: []string{"x"},
			Body:   bin(OpAdd, ref("x"), ref("n")),
		},
	}
	v, err := e.Run(program(
		&Definition{Name: "adder", Expr: adder},
		&Definition{Name: "add2", Expr: &FunctionCall{Name: "adder", Args: []Expression{lit(2)}}},
		&Definition{Name: "n", Expr: lit(1000)},
		&FunctionCall{Name: "add2", Args: []Expression{lit(40)}},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(42) {
		t.Fatalf("got %v", v)
	}
}

func TestClosureSeesLaterDefinitionsInCapturedFrame(t *testing.T) {
	// f() = c; c = 3; f()
	e := NewEvaluator(nil)
	v, err := e.Run(program(
		&Definition{Name: "f", Expr: &FunctionDefinition{Body: ref("c")}},
		&Definition{Name: "c", Expr: lit(3)},
		&FunctionCall{Name: "f"},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(3) {
		t.Fatalf("got %v", v)
	}
}

func TestMaxDepth(t *testing.T) {
	// loop(x) = loop(x + 1); loop(0)
	e := NewEvaluator(nil)
	e.MaxDepth = 100
	_, err := e.Run(program(
		&Definition{
			Name: "loop",
			Expr: &FunctionDefinition{
				Params: []string{"x"},
				Body: &FunctionCall{
					Name: "loop",
					Args: []Expression{bin(OpAdd, ref("x"), lit(1))},
				},
			},
		},
		&FunctionCall{Name: "loop", Args: []Expression{lit(0)}},
	))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("got %v", err)
	}
	if e.depth != 0 {
		t.Fatalf("got %v", e.depth)
	}
}

func TestPlot(t *testing.T) {
	plotter := &testPlotter{
		xs: []float64{0, 0.5, 1},
	}
	e := NewEvaluator(plotter)
	v, err := e.Run(program(
		&Plot{
			Map:   bin(OpMul, ref("x"), ref("x")),
			Var:   "x",
			Start: lit(0),
			End:   lit(1),
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Fatalf("got %v", v)
	}
	if len(plotter.renders) != 1 {
		t.Fatalf("got %v", plotter.renders)
	}
	if str := fmt.Sprintf("%v", plotter.renders[0]); str != "[{0 0} {0.5 0.25} {1 1}]" {
		t.Fatalf("got %s", str)
	}
	if str := fmt.Sprintf("%v", plotter.bounds); str != "[[0 1]]" {
		t.Fatalf("got %s", str)
	}
	if _, err := e.Global.Lookup("x"); !errors.Is(err, ErrUnresolvedName) {
		t.Fatal("loop variable should not leak")
	}
}

func TestPlotUsesEnclosingScope(t *testing.T) {
	plotter := &testPlotter{
		xs: []float64{1, 2},
	}
	e := NewEvaluator(plotter)
	_, err := e.Run(program(
		&Definition{Name: "a", Expr: lit(10)},
		&Definition{Name: "lo", Expr: lit(-1)},
		&Let{
			Bindings: []Binding{{Name: "b", Expr: lit(1)}},
			Body: &Plot{
				Map:   bin(OpAdd, bin(OpMul, ref("a"), ref("t")), ref("b")),
				Var:   "t",
				Start: ref("lo"),
				End:   bin(OpAdd, ref("b"), lit(1)),
			},
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", plotter.renders); str != "[[{1 11} {2 21}]]" {
		t.Fatalf("got %s", str)
	}
	if str := fmt.Sprintf("%v", plotter.bounds); str != "[[-1 2]]" {
		t.Fatalf("got %s", str)
	}
}

func TestPlotErrorRendersNothing(t *testing.T) {
	plotter := &testPlotter{
		xs: []float64{1, 0},
	}
	e := NewEvaluator(plotter)
	_, err := e.Run(program(
		&Plot{
			Map:   bin(OpDiv, lit(1), ref("x")),
			Var:   "x",
			Start: lit(0),
			End:   lit(1),
		},
	))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("got %v", err)
	}
	if len(plotter.renders) != 0 {
		t.Fatalf("got %v", plotter.renders)
	}
}

func TestPlotBoundTypeMismatch(t *testing.T) {
	plotter := &testPlotter{}
	e := NewEvaluator(plotter)
	_, err := e.Run(program(
		&Definition{Name: "f", Expr: &FunctionDefinition{Body: lit(1)}},
		&Plot{
			Map:   ref("x"),
			Var:   "x",
			Start: ref("f"),
			End:   lit(1),
		},
	))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestClear(t *testing.T) {
	plotter := &testPlotter{}
	e := NewEvaluator(plotter)
	v, err := e.Run(program(&Clear{}))
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Fatalf("got %v", v)
	}
	if plotter.clears != 1 {
		t.Fatalf("got %v", plotter.clears)
	}
	if len(plotter.renders) != 0 {
		t.Fatal()
	}
}

func TestNoPlotter(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Run(program(&Clear{}))
	if !errors.Is(err, ErrNoPlotter) {
		t.Fatalf("got %v", err)
	}
}

func TestErrorAbortsSequence(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Run(program(
		&Definition{Name: "a", Expr: lit(1)},
		&Definition{Name: "b", Expr: ref("missing")},
		&Definition{Name: "c", Expr: lit(3)},
	))
	if !errors.Is(err, ErrUnresolvedName) {
		t.Fatalf("got %v", err)
	}
	if _, err := e.Global.Lookup("c"); err == nil {
		t.Fatal("statements after the error should not run")
	}
}

func TestIdempotent(t *testing.T) {
	e := NewEvaluator(nil)
	e.Global.Define("x", Real(3))
	expr := &Let{
		Bindings: []Binding{{Name: "y", Expr: bin(OpPow, ref("x"), lit(2))}},
		Body:     bin(OpSub, ref("y"), ref("x")),
	}
	for range 3 {
		v, err := e.Eval(expr, e.Global)
		if err != nil {
			t.Fatal(err)
		}
		if v != Real(6) {
			t.Fatalf("got %v", v)
		}
	}
	if str := fmt.Sprintf("%v", e.Global.Names()); str != "[x]" {
		t.Fatalf("got %s", str)
	}
}
