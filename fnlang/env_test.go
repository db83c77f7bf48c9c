package fnlang

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnvLookup(t *testing.T) {
	global := NewEnv()
	global.Define("x", Real(1))
	global.Define("y", Real(2))

	child, err := Extend([]string{"x"}, []Value{Real(10)}, global)
	if err != nil {
		t.Fatal(err)
	}

	v, err := child.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(10) {
		t.Fatalf("got %v", v)
	}

	v, err = child.Lookup("y")
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(2) {
		t.Fatalf("got %v", v)
	}

	_, err = child.Lookup("z")
	if !errors.Is(err, ErrUnresolvedName) {
		t.Fatalf("got %v", err)
	}
}

func TestEnvDefineOverwrites(t *testing.T) {
	env := NewEnv()
	env.Define("a", Real(1))
	env.Define("b", Real(2))
	env.Define("a", Real(3))
	if str := fmt.Sprintf("%v", env.Names()); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
	v, err := env.Lookup("a")
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(3) {
		t.Fatalf("got %v", v)
	}
}

func TestEnvDefineOnlyCurrentFrame(t *testing.T) {
	global := NewEnv()
	global.Define("x", Real(1))
	child, err := Extend(nil, nil, global)
	if err != nil {
		t.Fatal(err)
	}
	child.Define("x", Real(2))
	v, err := global.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v != Real(1) {
		t.Fatalf("got %v", v)
	}
}

func TestExtendMismatch(t *testing.T) {
	_, err := Extend([]string{"a", "b"}, []Value{Real(1)}, nil)
	if !errors.Is(err, ErrMalformedBinding) {
		t.Fatalf("got %v", err)
	}
}
