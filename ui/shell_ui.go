package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/stardrift/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ShellUI is the navigation bar shared by every page plus the planet info
// panel shown on the planets page.
type ShellUI struct {
	UI *ebitenui.UI

	// OnPage is called when a navigation button is clicked.
	OnPage func(page cfg.Page)

	navButtons  map[cfg.Page]*widget.Button
	infoTitle   *widget.Label
	infoDensity *widget.Label
	infoTemp    *widget.Label
	infoGravity *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewShellUI builds the shell with page highlighted.
func NewShellUI(page cfg.Page, onPage func(cfg.Page)) (*ShellUI, error) {
	s := &ShellUI{
		OnPage:     onPage,
		navButtons: map[cfg.Page]*widget.Button{},
	}
	if err := s.loadFonts(); err != nil {
		return nil, err
	}
	s.buildUI()
	s.SetPage(page)
	return s, nil
}

func (s *ShellUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load ui font: %w", err)
	}
	s.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	s.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	return nil
}

func (s *ShellUI) buildUI() {
	// Transparent root so the scene shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	rootContainer.AddChild(s.buildNavBar())
	rootContainer.AddChild(s.buildInfoPanel())

	s.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *ShellUI) buildNavBar() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 12, Right: 12}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, page := range []cfg.Page{cfg.PageHome, cfg.PagePlanets, cfg.PageTimeline} {
		target := page // Capture for closure
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(110, 28),
			),
			widget.ButtonOpts.Image(navButtonImage()),
			widget.ButtonOpts.Text(pageTitle(page), &s.normalFace, &widget.ButtonTextColor{
				Idle:     cfg.White,
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: cfg.SkyBlue,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if s.OnPage != nil {
					s.OnPage(target)
				}
			}),
		)
		s.navButtons[page] = btn
		bar.AddChild(btn)
	}
	return bar
}

func (s *ShellUI) buildInfoPanel() *widget.Container {
	padding := widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
			widget.WidgetOpts.MinSize(240, 0),
		),
	)

	newLabel := func(face *text.Face) *widget.Label {
		return widget.NewLabel(
			widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: cfg.White}),
		)
	}
	s.infoTitle = newLabel(&s.titleFace)
	s.infoDensity = newLabel(&s.normalFace)
	s.infoTemp = newLabel(&s.normalFace)
	s.infoGravity = newLabel(&s.normalFace)

	panel.AddChild(s.infoTitle)
	panel.AddChild(s.infoDensity)
	panel.AddChild(s.infoTemp)
	panel.AddChild(s.infoGravity)
	return panel
}

// SetPage highlights the current page's button and clears the info panel
// when leaving the planets page.
func (s *ShellUI) SetPage(page cfg.Page) {
	for p, btn := range s.navButtons {
		btn.GetWidget().Disabled = p == page
	}
	if page != cfg.PagePlanets {
		s.ShowInfo(nil)
	} else if s.infoTitle.Label == "" {
		s.infoTitle.Label = "Select a planet"
	}
}

// ShowInfo fills the info panel; nil clears it.
func (s *ShellUI) ShowInfo(info *cfg.PlanetInfo) {
	if info == nil {
		s.infoTitle.Label = ""
		s.infoDensity.Label = ""
		s.infoTemp.Label = ""
		s.infoGravity.Label = ""
		return
	}
	s.infoTitle.Label = info.Name
	s.infoDensity.Label = "Density: " + info.Density
	s.infoTemp.Label = "Temperature: " + info.Temperature
	s.infoGravity.Label = "Gravity: " + info.Gravity
}

func pageTitle(p cfg.Page) string {
	switch p {
	case cfg.PagePlanets:
		return "Planets"
	case cfg.PageTimeline:
		return "Timeline"
	}
	return "Home"
}

func navButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{30, 40, 60, 255})
	hover := image.NewNineSliceColor(color.RGBA{50, 70, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{20, 30, 45, 255})
	disabled := image.NewNineSliceColor(color.RGBA{10, 30, 50, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
