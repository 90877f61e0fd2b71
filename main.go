package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/fonts"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/scenes"
	"github.com/automoto/stardrift/scheduler"
	"github.com/automoto/stardrift/systems"
	"github.com/automoto/stardrift/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	sched   *scheduler.Scheduler
	surface render.Canvas
	scene   scenes.Scene
	shell   *ui.ShellUI

	// pendingPage is set by UI callbacks and applied at the top of Update
	pendingPage *config.Page
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	g := &Game{
		sched:   scheduler.New(config.C.TPS),
		surface: render.NewImage(config.C.Width, config.C.Height),
	}

	shell, err := ui.NewShellUI(config.Debug.StartPage, g.requestPage)
	if err != nil {
		return nil, err
	}
	g.shell = shell
	g.switchTo(config.Debug.StartPage)
	return g, nil
}

func (g *Game) requestPage(page config.Page) {
	g.pendingPage = &page
}

// switchTo tears the current surface down before mounting the next one.
func (g *Game) switchTo(page config.Page) {
	if g.scene != nil {
		if g.scene.Page() == page {
			return
		}
		g.scene.Stop()
	}

	scene := scenes.New(page, g.sched, scenes.Options{Seed: config.Debug.Seed})
	if ps, ok := scene.(*scenes.PlanetsScene); ok {
		ps.OnInfo = g.shell.ShowInfo
	}
	render.Clear(g.surface)
	scene.Start(g.surface)

	g.scene = scene
	g.shell.SetPage(page)
}

func (g *Game) Update() error {
	g.shell.UI.Update()
	if page, ok := systems.PageRequested(); ok {
		g.requestPage(page)
	}
	if g.pendingPage != nil {
		g.switchTo(*g.pendingPage)
		g.pendingPage = nil
	}

	g.sched.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.scene.Draw(screen)
	g.shell.UI.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	page := flag.String("page", config.Debug.StartPage.String(), "start page: home, planets or timeline")
	seed := flag.Uint64("seed", config.Debug.Seed, "random seed (0 picks one)")
	width := flag.Int("width", config.C.Width, "surface width")
	height := flag.Int("height", config.C.Height, "surface height")
	debug := flag.Bool("debug", false, "draw the diagnostics overlay")
	flag.Parse()

	p, ok := config.ParsePage(*page)
	if !ok {
		log.Fatalf("unknown page %q", *page)
	}
	config.Debug.StartPage = p
	config.Debug.Seed = *seed
	config.C.Width = *width
	config.C.Height = *height
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("stardrift")
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
