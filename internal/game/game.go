// Package game runs the scene inside ebiten's frame loop.
package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"padkeys/internal/controller"
	"padkeys/internal/host/ebitenhost"
	"padkeys/internal/logger"
)

var (
	backgroundColor = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	gridColor       = color.RGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff}
	playerColor     = color.RGBA{R: 0xf0, G: 0xc0, B: 0x40, A: 0xff}
)

// Options control drawing only.
type Options struct {
	GridCell   float64
	PlayerSize float64
}

// Game implements ebiten.Game.
type Game struct {
	scene *controller.Scene
	host  *ebitenhost.Host
	size  int
	opts  Options
	log   logger.Logger
}

// New returns a game that draws a world of worldSize square pixels.
func New(scene *controller.Scene, host *ebitenhost.Host, worldSize int, opts Options, log logger.Logger) *Game {
	return &Game{
		scene: scene,
		host:  host,
		size:  worldSize,
		opts:  opts,
		log:   logger.Component(log, "game"),
	}
}

// Update polls the host for gamepad changes and advances the scene one frame.
// A scene error is returned as is, which stops ebiten.RunGame.
func (g *Game) Update() error {
	for _, id := range g.host.Poll() {
		cell := g.scene.Gamepad().Connection().Pad()
		if pad, ok := cell.Load().(*ebitenhost.Pad); ok && pad.ID() == id {
			cell.Invalidate()
			g.log.Warn("active gamepad disconnected", logger.F("id", int(id)), logger.F("session", cell.Session().String()))
		}
	}
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	size := float32(g.size)
	if cell := float32(g.opts.GridCell); cell > 0 {
		for p := float32(0); p <= size; p += cell {
			vector.StrokeLine(screen, p, 0, p, size, 1, gridColor, false)
			vector.StrokeLine(screen, 0, p, size, p, 1, gridColor, false)
		}
	}

	x, y, ok := g.scene.PlayerView().Position()
	if !ok {
		return
	}
	half := float32(g.opts.PlayerSize) / 2
	vector.DrawFilledRect(screen, float32(x)-half, float32(y)-half, half*2, half*2, playerColor, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
