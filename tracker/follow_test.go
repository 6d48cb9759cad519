package tracker

import (
	"math"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
)

func TestFollowCapacity(t *testing.T) {
	follow := NewFollow()
	for i := 0; i < 3*BufferCapacity; i++ {
		follow.Push(Sample{Position: ebimath.V(float64(i), 0), Zoom: 1})
		want := min(i+1, BufferCapacity)
		if follow.Len() != want {
			t.Fatalf("after %d pushes expected %d samples, got %d", i+1, want, follow.Len())
		}
	}
	// newest first, oldest discarded
	if follow.At(0).Position.X != 3*BufferCapacity-1 {
		t.Fatalf("expected newest sample at front, got %v", follow.At(0))
	}
	if follow.At(BufferCapacity-1).Position.X != 2*BufferCapacity {
		t.Fatalf("expected oldest kept sample %d, got %v", 2*BufferCapacity, follow.At(BufferCapacity-1))
	}
}

func TestFollowAverageIdentical(t *testing.T) {
	cases := []Sample{
		{Position: ebimath.V(0.1, 0.7), Zoom: 0.3},
		{Position: ebimath.V(-1234.56789, 98765.4321), Zoom: 612.5},
		{Position: ebimath.V(1e-9, -1e9), Zoom: 1e-3},
	}
	for _, sample := range cases {
		follow := NewFollow()
		for i := 0; i < 57; i++ {
			follow.Push(sample)
			if got := follow.Average(); got != sample {
				t.Fatalf("after %d pushes of %v average is %v", i+1, sample, got)
			}
		}
	}
}

func TestFollowAverageMean(t *testing.T) {
	var follow Follow
	follow.Push(Sample{Position: ebimath.V(0, 10), Zoom: 100})
	follow.Push(Sample{Position: ebimath.V(4, 20), Zoom: 200})
	follow.Push(Sample{Position: ebimath.V(8, 60), Zoom: 600})
	got := follow.Average()
	if math.Abs(got.Position.X-4) > 1e-12 || math.Abs(got.Position.Y-30) > 1e-12 || math.Abs(got.Zoom-300) > 1e-12 {
		t.Fatalf("unexpected average %+v", got)
	}
}

func TestFollowAverageWindow(t *testing.T) {
	follow := NewFollow()
	for i := 0; i < BufferCapacity; i++ {
		follow.Push(Sample{Position: ebimath.V(0, 0), Zoom: 1})
	}
	for i := 0; i < BufferCapacity; i++ {
		follow.Push(Sample{Position: ebimath.V(100, 50), Zoom: 5})
	}
	got := follow.Average()
	if got.Position.X != 100 || got.Position.Y != 50 || got.Zoom != 5 {
		t.Fatalf("old history leaked into a refilled buffer: %+v", got)
	}
}

func TestFollowAverageEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty average")
		}
	}()
	var follow Follow
	follow.Average()
}

func TestFollowReset(t *testing.T) {
	follow := NewFollow()
	follow.Push(Sample{Zoom: 1})
	follow.Reset()
	if follow.Len() != 0 {
		t.Fatalf("expected empty buffer after reset, got %d", follow.Len())
	}
}

func TestTrackers(t *testing.T) {
	current := Sample{Position: ebimath.V(1, 2), Zoom: 3}
	target := Sample{Position: ebimath.V(10, 20), Zoom: 30}

	cases := []struct {
		name    string
		tracker Tracker
		want    Sample
	}{
		{"instant", Instant, target},
		{"frozen", Frozen, current},
		{"follow", NewFollow(), target},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.tracker.Track(current, target); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}
