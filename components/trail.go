package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TrailData is a bounded FIFO of recent positions backed by a ring buffer.
// Once full, every Push evicts the oldest point.
type TrailData struct {
	points []math.Vec2
	head   int // index of the oldest point
	n      int
}

var Trail = donburi.NewComponentType[TrailData]()

// NewTrail allocates a trail holding at most capacity points.
func NewTrail(capacity int) *TrailData {
	if capacity < 0 {
		capacity = 0
	}
	return &TrailData{points: make([]math.Vec2, capacity)}
}

// Push appends p, dropping the oldest point when the trail is full.
func (t *TrailData) Push(p math.Vec2) {
	c := len(t.points)
	if c == 0 {
		return
	}
	if t.n < c {
		t.points[(t.head+t.n)%c] = p
		t.n++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % c
}

// At returns the i-th point, oldest first.
func (t *TrailData) At(i int) math.Vec2 {
	return t.points[(t.head+i)%len(t.points)]
}

// Len returns the number of stored points.
func (t *TrailData) Len() int { return t.n }

// Cap returns the maximum number of stored points.
func (t *TrailData) Cap() int { return len(t.points) }

// Clear empties the trail without releasing its storage.
func (t *TrailData) Clear() {
	t.head = 0
	t.n = 0
}
