package components

import "github.com/yohamta/donburi"

// ScrollData tracks the designated scrollable region of the timeline.
type ScrollData struct {
	Offset         float64
	ViewportHeight float64
	Sections       int
	Active         int // highlighted section index
}

// MaxOffset is the furthest the region can scroll.
func (s *ScrollData) MaxOffset() float64 {
	if s.Sections <= 1 {
		return 0
	}
	return float64(s.Sections-1) * s.ViewportHeight
}

var Scroll = donburi.NewComponentType[ScrollData]()
