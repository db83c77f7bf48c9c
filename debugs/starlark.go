package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/fnplot/fnlang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

type converter struct {
	evaluator *fnlang.Evaluator
}

func (c converter) toStarlarkValue(name string, v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case fnlang.Real:
		return starlark.Float(v)

	case *fnlang.Function:
		return c.function(name, v)

	case fnlang.Point:
		return starlark.Tuple{
			starlark.Float(v.X),
			starlark.Float(v.Y),
		}

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case float64:
		return starlark.Float(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = c.toStarlarkValue(name, value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				c.toStarlarkValue(name, iter.Key().Interface()),
				c.toStarlarkValue(name, iter.Value().Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return c.toStarlarkValue(name, elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc(name, value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// function wraps a closure as a builtin taking numbers.
func (c converter) function(name string, fn *fnlang.Function) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
		}
		values := make([]fnlang.Value, 0, len(args))
		for i, arg := range args {
			f, ok := starlark.AsFloat(arg)
			if !ok {
				return nil, fmt.Errorf("%s: argument %d must be a number, got %s", b.Name(), i, arg.Type())
			}
			values = append(values, fnlang.Real(f))
		}
		ret, err := c.evaluator.Call(fn, values)
		if err != nil {
			return nil, err
		}
		return c.toStarlarkValue(name, ret), nil
	})
}
