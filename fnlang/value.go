package fnlang

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a runtime value: Real or *Function.
// A nil Value is the absent result of plot and clear.
type Value interface {
	fnValue()
}

type Real float64

func (Real) fnValue() {}

func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

// Function is a closure. Env is the frame active at the point of definition.
type Function struct {
	Params []string
	Body   Expression
	Env    *Env
}

func (*Function) fnValue() {}

func (f *Function) String() string {
	return "<function(" + strings.Join(f.Params, ", ") + ")>"
}

type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "mod"
	case OpPow:
		return "^"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Apply applies the arithmetic operator to two values.
func Apply(op Op, a, b Value) (Value, error) {
	x, ok := a.(Real)
	if !ok {
		return nil, fmt.Errorf("%w: left operand of %s is %s", ErrTypeMismatch, op, describe(a))
	}
	y, ok := b.(Real)
	if !ok {
		return nil, fmt.Errorf("%w: right operand of %s is %s", ErrTypeMismatch, op, describe(b))
	}
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return nil, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, x, y)
		}
		return x / y, nil
	case OpMod:
		if y == 0 {
			return nil, fmt.Errorf("%w: %s mod %s", ErrDivisionByZero, x, y)
		}
		return Real(math.Mod(float64(x), float64(y))), nil
	case OpPow:
		return Real(math.Pow(float64(x), float64(y))), nil
	}
	return nil, fmt.Errorf("unknown operator: %s", op)
}

func describe(v Value) string {
	switch v := v.(type) {
	case nil:
		return "absent"
	case Real:
		return "real " + v.String()
	case *Function:
		return "function " + v.String()
	}
	return fmt.Sprintf("%T", v)
}
