package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
renderer?: "text" | "yaml"
intervals?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/chart.cue"}, testSchema)

	var renderer string
	if err := loader.AssignFirst("renderer", &renderer); err != nil {
		t.Fatal(err)
	}
	if renderer != "text" {
		t.Fatalf("got %q", renderer)
	}

	var intervals []int
	if err := loader.AssignFirst("intervals", &intervals); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", intervals); str != "[10 20 40]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("width", &intervals)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/yaml.cue",
		"testdata/chart.cue",
	}, testSchema)
	if paths := loader.Paths(); len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}

	var renderers []string
	for value, err := range loader.IterCueValues("renderer") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		renderers = append(renderers, s)
	}
	if str := fmt.Sprintf("%v", renderers); str != "[yaml text]" {
		t.Fatalf("got %q", str)
	}

	// earlier files win
	if renderer := First[string](loader, "renderer"); renderer != "yaml" {
		t.Fatalf("got %q", renderer)
	}

	renderers = renderers[:0]
	for renderer := range All[string](loader, "renderer") {
		renderers = append(renderers, renderer)
	}
	if str := fmt.Sprintf("%v", renderers); str != "[yaml text]" {
		t.Fatalf("got %q", str)
	}
}

func TestLoaderClosedSchema(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/unknown.cue",
	}, testSchema)
	var colour string
	err := loader.AssignFirst("colour", &colour)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}
