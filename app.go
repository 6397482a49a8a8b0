package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Shun-H1115/viscoelastic-fluid/game"
	"github.com/Shun-H1115/viscoelastic-fluid/render"
)

// App drives the simulation from ebiten's frame loop: it turns the loop's
// timing and mouse events into game.Input and rasterizes the draw records
// the core returns.
type App struct {
	state     game.State
	frame     []render.Circle
	width     int
	height    int
	lastFrame time.Time
}

func NewApp(width, height int) *App {
	return &App{width: width, height: height}
}

func (a *App) Update() error {
	now := time.Now()
	dt := 0.0
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame).Seconds()
	}
	a.lastFrame = now

	in := game.Input{
		ViewportW: float64(a.width),
		ViewportH: float64(a.height),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.Fire = true
		in.FireX = float64(mx)
		in.FireY = float64(my)
	}

	a.frame = game.Step(&a.state, dt, in)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, c := range a.frame {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), c.Color, true)
	}

	status := "click to fire"
	if a.state.Ruptured {
		status = "ruptured"
	}
	particles := 0
	if a.state.Field != nil {
		particles = len(a.state.Field.Particles)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("particles: %d  %s", particles, status))
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
