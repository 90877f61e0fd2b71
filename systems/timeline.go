package systems

import (
	"fmt"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/fonts"
	"github.com/automoto/stardrift/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces from the fonts package
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawIndicators renders the section dots on the HUD layer.
func DrawIndicators(ecs *ecs.ECS, screen *ebiten.Image) {
	PaintIndicators(ecs.World, render.NewScreen(screen))
}

// PaintIndicators draws one dot per section, the active one highlighted.
func PaintIndicators(w donburi.World, c render.Canvas) {
	entry, ok := components.Scroll.First(w)
	if !ok || render.IsZero(c) {
		return
	}
	s := components.Scroll.Get(entry)
	tl := cfg.Timeline

	_, h := c.Size()
	top := float64(h)/2 - float64(s.Sections-1)*tl.IndicatorGap/2
	for i := 0; i < s.Sections; i++ {
		clr := tl.Idle
		if i == s.Active {
			clr = tl.Highlight
		}
		y := top + float64(i)*tl.IndicatorGap
		c.FillCircle(float32(tl.IndicatorX), float32(y), float32(tl.IndicatorRadius), clr)
	}
}

// DrawTimelineLabels writes each mission's year and name in the middle of
// its section, shifted by the scroll offset.
func DrawTimelineLabels(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Scroll.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Title) || !fonts.Loaded(fonts.Label) || !fonts.Loaded(fonts.Small) {
		return
	}
	s := components.Scroll.Get(entry)
	tl := cfg.Timeline
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := int(tl.IndicatorX * 3)

	for i, m := range tl.Missions {
		mid := float64(i)*s.ViewportHeight - s.Offset + s.ViewportHeight/2
		if mid < -s.ViewportHeight/2 || mid > float64(height)+s.ViewportHeight/2 {
			continue
		}
		clr := tl.Idle
		if i == s.Active {
			clr = tl.LabelColor
		}
		text.Draw(screen, fmt.Sprintf("%d", m.Year), fonts.Title.Get(), x, int(mid), clr)
		text.Draw(screen, fmt.Sprintf("[%s] %s", m.Badge, m.Name), fonts.Label.Get(), x, int(mid)+32, clr)
	}

	hint := "wheel / up / down to travel"
	text.Draw(screen, hint, fonts.Small.Get(), width-len(hint)*7-16, height-16, tl.Idle)
}
