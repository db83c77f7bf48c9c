package fnlang

import (
	"fmt"

	"github.com/reusee/fnplot/logs"
)

// Evaluator walks syntax trees. It is not safe for concurrent use.
//
// Calls recurse on the Go stack. With MaxDepth zero, a program that recurses
// without bound exhausts the stack and the Go runtime aborts the process;
// this cannot be recovered from.
type Evaluator struct {
	Global   *Env
	Plotter  Plotter
	Logger   logs.Logger
	MaxDepth int

	depth int
}

func NewEvaluator(plotter Plotter) *Evaluator {
	return &Evaluator{
		Global:  NewEnv(),
		Plotter: plotter,
	}
}

// Run evaluates the program in the global environment and returns the value
// of its last statement.
func (e *Evaluator) Run(program *Program) (Value, error) {
	if program == nil || program.Seq == nil {
		return Real(0), nil
	}
	return e.Eval(program.Seq, e.Global)
}

func (e *Evaluator) Eval(stmt Statement, env *Env) (Value, error) {
	switch stmt := stmt.(type) {

	case *Sequence:
		var result Value = Real(0)
		for _, s := range stmt.Statements {
			var err error
			result, err = e.Eval(s, env)
			if err != nil {
				return nil, err
			}
		}
		return result, nil

	case *Definition:
		val, err := e.Eval(stmt.Expr, env)
		if err != nil {
			return nil, err
		}
		env.Define(stmt.Name, val)
		return val, nil

	case *Let:
		names := make([]string, 0, len(stmt.Bindings))
		values := make([]Value, 0, len(stmt.Bindings))
		for _, b := range stmt.Bindings {
			val, err := e.Eval(b.Expr, env)
			if err != nil {
				return nil, err
			}
			names = append(names, b.Name)
			values = append(values, val)
		}
		letEnv, err := Extend(names, values, env)
		if err != nil {
			return nil, err
		}
		return e.Eval(stmt.Body, letEnv)

	case *Literal:
		return stmt.Val, nil

	case *Variable:
		return env.Lookup(stmt.Name)

	case *BinaryOp:
		left, err := e.Eval(stmt.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(stmt.Right, env)
		if err != nil {
			return nil, err
		}
		return Apply(stmt.Op, left, right)

	case *FunctionDefinition:
		return &Function{
			Params: stmt.Params,
			Body:   stmt.Body,
			Env:    env,
		}, nil

	case *FunctionCall:
		return e.evalCall(stmt, env)

	case *Plot:
		return nil, e.evalPlot(stmt, env)

	case *Clear:
		if e.Plotter == nil {
			return nil, ErrNoPlotter
		}
		if e.Logger != nil {
			e.Logger.Debug("clear")
		}
		return nil, e.Plotter.Clear()

	case nil:
		return nil, fmt.Errorf("nil statement")

	}

	return nil, fmt.Errorf("unknown statement type: %T", stmt)
}

func (e *Evaluator) evalCall(call *FunctionCall, env *Env) (Value, error) {
	callee, err := env.Lookup(call.Name)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Function)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotCallable, call.Name, describe(callee))
	}

	args := make([]Value, 0, len(call.Args))
	for _, argExpr := range call.Args {
		arg, err := e.Eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d",
			ErrArityMismatch, call.Name, len(fn.Params), len(args))
	}
	return e.Call(fn, args)
}

// Call applies a closure to already evaluated arguments.
func (e *Evaluator) Call(fn *Function, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("%w: expects %d arguments, got %d",
			ErrArityMismatch, len(fn.Params), len(args))
	}
	if e.MaxDepth > 0 && e.depth >= e.MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrDepthExceeded, e.MaxDepth)
	}
	callEnv, err := Extend(fn.Params, args, fn.Env)
	if err != nil {
		return nil, err
	}
	e.depth++
	defer func() {
		e.depth--
	}()
	return e.Eval(fn.Body, callEnv)
}

func (e *Evaluator) evalPlot(plot *Plot, env *Env) error {
	if e.Plotter == nil {
		return ErrNoPlotter
	}
	start, err := e.evalBound(plot.Start, env)
	if err != nil {
		return err
	}
	end, err := e.evalBound(plot.End, env)
	if err != nil {
		return err
	}

	xs := e.Plotter.Sample(start, end)
	points := make([]Point, 0, len(xs))
	for _, x := range xs {
		sampleEnv, err := Extend([]string{plot.Var}, []Value{Real(x)}, env)
		if err != nil {
			return err
		}
		val, err := e.Eval(plot.Map, sampleEnv)
		if err != nil {
			return err
		}
		y, ok := val.(Real)
		if !ok {
			return fmt.Errorf("%w: plot of %s at %s = %g is %s",
				ErrTypeMismatch, plot.Map, plot.Var, x, describe(val))
		}
		points = append(points, Point{
			X: x,
			Y: float64(y),
		})
	}

	if e.Logger != nil {
		e.Logger.Debug("plot",
			"expr", plot.String(),
			"start", start,
			"end", end,
			"points", len(points),
		)
	}
	return e.Plotter.Render(points)
}

func (e *Evaluator) evalBound(expr Expression, env *Env) (float64, error) {
	val, err := e.Eval(expr, env)
	if err != nil {
		return 0, err
	}
	r, ok := val.(Real)
	if !ok {
		return 0, fmt.Errorf("%w: plot bound %s is %s", ErrTypeMismatch, expr, describe(val))
	}
	return float64(r), nil
}
