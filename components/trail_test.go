package components

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTrailEvictsOldestFirst(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
		want     []float64 // X of stored points, oldest first
	}{
		{"under capacity", 4, 2, []float64{0, 1}},
		{"exactly full", 3, 3, []float64{0, 1, 2}},
		{"one over", 3, 4, []float64{1, 2, 3}},
		{"wrapped twice", 3, 8, []float64{5, 6, 7}},
		{"zero capacity", 0, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := NewTrail(tt.capacity)
			for i := 0; i < tt.pushes; i++ {
				trail.Push(math.Vec2{X: float64(i)})
			}
			if trail.Len() != len(tt.want) {
				t.Fatalf("len = %d, want %d", trail.Len(), len(tt.want))
			}
			if trail.Len() > trail.Cap() {
				t.Fatalf("len %d exceeds cap %d", trail.Len(), trail.Cap())
			}
			for i, x := range tt.want {
				if got := trail.At(i).X; got != x {
					t.Errorf("At(%d).X = %v, want %v", i, got, x)
				}
			}
		})
	}
}

func TestTrailClear(t *testing.T) {
	trail := NewTrail(2)
	trail.Push(math.Vec2{X: 1})
	trail.Push(math.Vec2{X: 2})
	trail.Push(math.Vec2{X: 3})
	trail.Clear()

	if trail.Len() != 0 {
		t.Fatalf("len after clear = %d", trail.Len())
	}
	trail.Push(math.Vec2{X: 9})
	if trail.Len() != 1 || trail.At(0).X != 9 {
		t.Errorf("after clear and push: len %d, first %v", trail.Len(), trail.At(0))
	}
	if trail.Cap() != 2 {
		t.Errorf("cap = %d, want 2", trail.Cap())
	}
}

func TestScrollMaxOffset(t *testing.T) {
	tests := []struct {
		sections int
		viewport float64
		want     float64
	}{
		{5, 600, 2400},
		{1, 600, 0},
		{0, 600, 0},
	}
	for _, tt := range tests {
		s := &ScrollData{Sections: tt.sections, ViewportHeight: tt.viewport}
		if got := s.MaxOffset(); got != tt.want {
			t.Errorf("MaxOffset(%d sections) = %v, want %v", tt.sections, got, tt.want)
		}
	}
}

func TestCameraProjectCentersTarget(t *testing.T) {
	c := &CameraData{Scale: 10, CenterX: 100, CenterY: 50}
	c.SetTarget(2, 0, -1)

	x, y := c.Project(c.Target)
	if x != 100 || y != 50 {
		t.Errorf("target projects to (%v,%v), want (100,50)", x, y)
	}
	x, _ = c.Project(r3.Vec{X: 3, Z: -1})
	if x != 110 {
		t.Errorf("one unit right projects to x=%v, want 110", x)
	}
}
