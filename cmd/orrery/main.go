package main

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/orrery/orrery/assets"
	"github.com/orrery/orrery/internal/game"
	"github.com/orrery/orrery/internal/render"
)

const (
	screenWidth  = 800
	screenHeight = 600
	title        = "2D Solar System with Planets"
	ticksPerSec  = 60
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All orbit and star state lives in sim.
type Game struct {
	sim     *game.Sim
	scene   *render.SceneRenderer
	pointer image.Point
}

func NewGame(seed int64) *Game {
	images, err := assets.LoadImages(assets.Planets, game.BodyNames())
	if err != nil {
		log.Fatalf("load body images: %v", err)
	}

	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = screenWidth, screenHeight
	cfg.Seed = seed

	sim := game.NewSim(cfg)
	log.Printf("orrery: %d bodies, %d stars, seed %d", len(sim.Bodies()), sim.Stars.Len(), seed)

	return &Game{
		sim:   sim,
		scene: render.NewSceneRenderer(render.NewFontAtlas(), images),
	}
}

// pollInput gathers this tick's commands.
func pollInput() game.Input {
	var in game.Input
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	// One zoom step per tick with wheel motion, whatever the wheel delta.
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		in.Scroll = 1
	case dy < 0:
		in.Scroll = -1
	}
	return in
}

func (g *Game) Update() error {
	if g.sim.Apply(pollInput()) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	g.pointer = image.Pt(mx, my)
	g.sim.Tick(game.Point{X: float64(mx), Y: float64(my)})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.sim, g.pointer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ticksPerSec)

	game := NewGame(time.Now().UnixNano())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
