// Package client is the desktop front end. It reads the keyboard, steps the
// game once per frame and draws the session.
package client

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OCharnyshevich/overworld/internal/game/app"
	"github.com/OCharnyshevich/overworld/internal/game/client/viewport"
	"github.com/OCharnyshevich/overworld/internal/game/session"
	"github.com/OCharnyshevich/overworld/internal/game/worldmap"
)

const minimapSize = 128

var slotKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Client implements ebiten.Game on top of an app.Game.
type Client struct {
	game    *app.Game
	width   int
	height  int
	last    time.Time
	minimap *ebiten.Image
}

// New creates a client for g. The minimap is rendered up front, so it walks
// the whole world once.
func New(g *app.Game) *Client {
	cfg := g.Config()
	mm := worldmap.Scale(worldmap.Render(g.World()), minimapSize)
	return &Client{
		game:    g,
		width:   cfg.ScreenWidth,
		height:  cfg.ScreenHeight,
		minimap: ebiten.NewImageFromImage(mm),
	}
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(g *app.Game) error {
	c := New(g)
	ebiten.SetWindowSize(c.width, c.height)
	ebiten.SetWindowTitle("Overworld")
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update steps the game by the wall-clock time since the previous frame.
func (c *Client) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 0.0
	if !c.last.IsZero() {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now

	c.game.Tick(dt, readInput())
	return nil
}

func readInput() session.Input {
	in := session.Input{
		Move: viewport.MoveVector(
			ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		),
		Attack:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE),
		UseSlot:  session.NoSlot,
	}
	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.UseSlot = i
			break
		}
	}
	return in
}

// Layout keeps the configured logical screen size.
func (c *Client) Layout(_, _ int) (int, int) {
	return c.width, c.height
}
