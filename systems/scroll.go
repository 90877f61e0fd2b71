package systems

import (
	"math"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEvent is published whenever the timeline's scroll offset changes.
type ScrollEvent struct {
	Offset float64
	Delta  float64
}

var ScrollEvents = events.NewEventType[ScrollEvent]()

// NearestSection returns round(offset / viewport) clamped to the valid
// section indices.
func NearestSection(offset, viewport float64, sections int) int {
	if sections <= 0 || viewport <= 0 {
		return 0
	}
	i := int(math.Round(offset / viewport))
	if i < 0 {
		return 0
	}
	if i >= sections {
		return sections - 1
	}
	return i
}

// UpdateScroll moves the scroll region by wheel notches and section keys and
// publishes a ScrollEvent when the offset actually changes.
func UpdateScroll(ecs *ecs.ECS) {
	scrollEntry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	s := components.Scroll.Get(scrollEntry)
	in := components.Input.Get(inputEntry)

	// Wheel up is positive; scrolling up moves the offset back.
	delta := -in.WheelY * cfg.Timeline.WheelStep
	if in.JustPressed(cfg.ActionScrollDown) {
		delta += s.ViewportHeight
	}
	if in.JustPressed(cfg.ActionScrollUp) {
		delta -= s.ViewportHeight
	}
	ScrollBy(ecs, s, delta)
}

// ScrollBy applies delta to the region, clamped to its extent.
func ScrollBy(ecs *ecs.ECS, s *components.ScrollData, delta float64) {
	next := clamp(s.Offset+delta, 0, s.MaxOffset())
	if next == s.Offset {
		return
	}
	moved := next - s.Offset
	s.Offset = next
	ScrollEvents.Publish(ecs.World, ScrollEvent{Offset: next, Delta: moved})
}

// ProcessEvents delivers queued events to their subscribers.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
