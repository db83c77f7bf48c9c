package plots

import (
	"fmt"
	"math"
	"testing"
)

func TestUniform(t *testing.T) {
	xs := Uniform{Intervals: 4}.Sample(0, 1)
	if str := fmt.Sprintf("%v", xs); str != "[0 0.25 0.5 0.75 1]" {
		t.Fatalf("got %s", str)
	}

	xs = Uniform{Intervals: 2}.Sample(1, -1)
	if str := fmt.Sprintf("%v", xs); str != "[1 0 -1]" {
		t.Fatalf("got %s", str)
	}

	xs = Uniform{Intervals: 10}.Sample(3, 3)
	if str := fmt.Sprintf("%v", xs); str != "[3]" {
		t.Fatalf("got %s", str)
	}

	xs = Uniform{}.Sample(0, 2)
	if str := fmt.Sprintf("%v", xs); str != "[0 2]" {
		t.Fatalf("got %s", str)
	}

	if xs := (Uniform{Intervals: 3}).Sample(0, math.Inf(1)); xs != nil {
		t.Fatalf("got %v", xs)
	}
}

func TestUniformEndpoint(t *testing.T) {
	xs := Uniform{Intervals: 3}.Sample(0, 0.3)
	if xs[len(xs)-1] != 0.3 {
		t.Fatalf("got %v", xs[len(xs)-1])
	}
}
