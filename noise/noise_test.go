package noise

import (
	"math"
	"testing"
)

func TestSampleRange(t *testing.T) {
	src := New(5)
	for i := 0; i < 4000; i++ {
		x := float64(i)*0.37 - 500
		for _, channel := range []float64{5.0, 7.0, -3.25} {
			v := src.Sample(x, channel)
			if v < Min || v > Max {
				t.Fatalf("Sample(%v, %v) = %v, outside [%v, %v]", x, channel, v, Min, Max)
			}
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 200; i++ {
		x := float64(i) * 1.3
		if a.Sample(x, 5.0) != b.Sample(x, 5.0) {
			t.Fatalf("same seed produced different values at x=%v", x)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", a.Seed())
	}
}

func TestSampleContinuous(t *testing.T) {
	src := New(5)
	const step = 1e-4
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.5
		d := math.Abs(src.Sample(x+step, 7.0) - src.Sample(x, 7.0))
		if d > 0.01 {
			t.Fatalf("discontinuity at x=%v: delta %v for step %v", x, d, step)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i)*0.71 + 0.1
		if a.Sample(x, 5.0) == b.Sample(x, 5.0) {
			same++
		}
	}
	if same == 100 {
		t.Fatalf("different seeds produced identical fields")
	}
}
