package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DebugLines summarizes every field of the world, one line each, followed by
// the planet under the pointer when there is one.
func DebugLines(w donburi.World) []string {
	var lines []string
	components.Field.Each(w, func(e *donburi.Entry) {
		fd := components.Field.Get(e)
		lines = append(lines, fmt.Sprintf("%s: %d particles, %d evicted",
			fd.Config.Name, FieldCount(w, e), fd.Evicted))
	})
	if entry, ok := components.Pointer.First(w); ok {
		if hovered := components.Pointer.Get(entry).Hovered; hovered != nil && hovered.Valid() {
			lines = append(lines, "hover: "+components.Planet.Get(hovered).Config.Info.Name)
		}
	}
	return lines
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 8, 8)
	for i, line := range DebugLines(ecs.World) {
		ebitenutil.DebugPrintAt(screen, line, 8, 24+i*16)
	}

	// Pick boxes
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPointer) {
			c = color.RGBA{255, 0, 0, 255}
		}
		x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
