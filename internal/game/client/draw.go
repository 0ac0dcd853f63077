package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OCharnyshevich/overworld/internal/game/client/viewport"
	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/item"
	"github.com/OCharnyshevich/overworld/internal/game/player"
	"github.com/OCharnyshevich/overworld/internal/game/quest"
	"github.com/OCharnyshevich/overworld/internal/game/session"
	"github.com/OCharnyshevich/overworld/internal/game/world"
)

var (
	colorText     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorPanel    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	colorTree     = color.RGBA{0x0b, 0x4d, 0x0b, 0xff}
	colorTrunk    = color.RGBA{0x5c, 0x40, 0x33, 0xff}
	colorPortal   = color.RGBA{0xc0, 0x40, 0xff, 0xff}
	colorChest    = color.RGBA{0xb8, 0x86, 0x0b, 0xff}
	colorOpened   = color.RGBA{0x5a, 0x45, 0x20, 0xff}
	colorPlayer   = color.RGBA{0x1e, 0x90, 0xff, 0xff}
	colorHealth   = color.RGBA{0xdc, 0x14, 0x3c, 0xff}
	colorHealthBg = color.RGBA{0x30, 0x30, 0x30, 0xff}
	colorSlot     = color.RGBA{0x40, 0x40, 0x40, 0xd0}
)

// decorationColors index world.Tile.Decoration.
var decorationColors = [...]color.RGBA{
	{0xff, 0xd7, 0x00, 0xff}, // flower
	{0xa9, 0xa9, 0xa9, 0xff}, // rock
	{0x6b, 0x8e, 0x23, 0xff}, // bush
	{0xf5, 0xde, 0xb3, 0xff}, // mushroom
}

const nightMax = 0.6

// Draw renders the visible part of the world, then the overlays.
func (c *Client) Draw(screen *ebiten.Image) {
	s := c.game.State()
	cam := viewport.Camera{Focus: s.Player.Pos, Width: c.width, Height: c.height}

	c.drawTiles(screen, s.World, cam)
	c.drawEntities(screen, s, cam)
	c.drawPlayer(screen, s.Player, cam)

	if a := viewport.NightAlpha(s.Daylight(), nightMax); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(c.width), float32(c.height), color.RGBA{0, 0, 0, a}, false)
	}

	c.drawHUD(screen, s)
	c.drawMinimap(screen, s)
	c.drawInventory(screen, s.Player.Inventory)
	c.drawMessages(screen, s.Messages)
	if s.Dialog != nil {
		c.drawDialog(screen, s.Dialog)
	}
	if s.GameOver {
		c.drawGameOver(screen, s)
	}
}

func (c *Client) drawTiles(screen *ebiten.Image, w *world.World, cam viewport.Camera) {
	ts := w.Dimensions().TileSize
	size := float32(ts)
	x0, y0, x1, y1 := cam.TileRange(ts)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t := w.GetTile(x, y)
			sx, sy := cam.ToScreen(w.TilePos(x, y))
			vector.DrawFilledRect(screen, sx, sy, size, size, t.Biome.Color(), false)

			cx, cy := sx+size/2, sy+size/2
			switch {
			case t.Tree:
				vector.DrawFilledRect(screen, cx-size/10, cy, size/5, size/2-2, colorTrunk, false)
				vector.DrawFilledCircle(screen, cx, cy-size/8, size*0.35, colorTree, true)
			case t.Decoration != world.NoDecoration && t.Decoration < len(decorationColors):
				vector.DrawFilledCircle(screen, cx+size/5, cy+size/5, size/10, decorationColors[t.Decoration], true)
			}
			if t.Portal {
				vector.StrokeCircle(screen, cx, cy, size*0.4, 3, colorPortal, true)
			}
			if t.Chest {
				vector.StrokeRect(screen, sx+size/4, sy+size/4, size/2, size/2, 1, colorChest, false)
			}
		}
	}
}

func (c *Client) drawEntities(screen *ebiten.Image, s *session.State, cam viewport.Camera) {
	size := float32(s.World.Dimensions().TileSize)
	for _, e := range s.Visible {
		cx, cy := cam.ToScreen(s.Center(e))
		if cx < -size || cy < -size || cx > float32(c.width)+size || cy > float32(c.height)+size {
			continue
		}
		switch e.Kind {
		case entity.KindEnemy:
			vector.DrawFilledCircle(screen, cx, cy, size*0.4, e.Enemy.Type.Stats().Color, true)
			frac := float32(e.Enemy.Health) / float32(e.Enemy.MaxHealth)
			vector.DrawFilledRect(screen, cx-size/2, cy-size*0.6, size, 4, colorHealthBg, false)
			vector.DrawFilledRect(screen, cx-size/2, cy-size*0.6, size*frac, 4, colorHealth, false)
		case entity.KindNPC:
			vector.DrawFilledRect(screen, cx-size*0.3, cy-size*0.4, size*0.6, size*0.8, e.NPC.Template.Def().Color, false)
			text.Draw(screen, e.NPC.Name, basicfont.Face7x13, int(cx)-len(e.NPC.Name)*7/2, int(cy-size*0.5), colorText)
		case entity.KindChest:
			clr := colorChest
			if e.Chest.Opened {
				clr = colorOpened
			}
			vector.DrawFilledRect(screen, cx-size*0.3, cy-size*0.2, size*0.6, size*0.45, clr, false)
		case entity.KindPortal:
			vector.StrokeCircle(screen, cx, cy, size*0.45, 2, colorText, true)
		}
	}
}

func (c *Client) drawPlayer(screen *ebiten.Image, p *player.Player, cam viewport.Camera) {
	x, y := cam.ToScreen(p.Pos)
	vector.DrawFilledCircle(screen, x, y, 11, colorPlayer, true)
	f := p.Pos.Add(p.Facing.Mul(14))
	fx, fy := cam.ToScreen(f)
	vector.DrawFilledCircle(screen, fx, fy, 3, colorText, true)
}

func (c *Client) drawHUD(screen *ebiten.Image, s *session.State) {
	p := s.Player
	vector.DrawFilledRect(screen, 8, 8, 230, 118, colorPanel, false)
	lines := []string{
		fmt.Sprintf("Level %d  XP %d/%d", p.Level, p.XP, p.XPNeeded),
		fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth),
		fmt.Sprintf("ATK %d  DEF %d  Gold %d", p.TotalAttack(), p.TotalDefense(), p.Gold),
		fmt.Sprintf("Day %d  %02.0f%%", s.Day(), s.TimeOfDay()*100),
		fmt.Sprintf("Biome %s  Found %d", s.World.GetBiome(s.World.TileAt(p.Pos)), len(s.Discovered)),
		fmt.Sprintf("Kills %d  Chests %d", s.Kills, s.Chests),
	}
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, 16, 26+i*16, colorText)
	}
	frac := float32(p.Health) / float32(p.MaxHealth)
	vector.DrawFilledRect(screen, 110, 31, 120, 6, colorHealthBg, false)
	vector.DrawFilledRect(screen, 110, 31, 120*frac, 6, colorHealth, false)

	y := 140
	for _, q := range s.Quests.All() {
		label := q.Title
		switch q.Status {
		case quest.Active:
			label = fmt.Sprintf("%s %d/%d", q.Title, min(q.Progress, q.Goal), q.Goal)
		case quest.Complete:
			label = q.Title + " (done)"
		}
		text.Draw(screen, label, basicfont.Face7x13, 16, y, colorText)
		y += 16
	}
}

func (c *Client) drawMinimap(screen *ebiten.Image, s *session.State) {
	x := float64(c.width - minimapSize - 8)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, 8)
	screen.DrawImage(c.minimap, op)
	vector.StrokeRect(screen, float32(x), 8, minimapSize, minimapSize, 1, colorText, false)

	d := s.World.Dimensions()
	px, py := viewport.MinimapPoint(s.Player.Pos, float64(d.WorldSize*d.TileSize), minimapSize)
	vector.DrawFilledCircle(screen, float32(x)+px, 8+py, 2, colorHealth, false)
}

func (c *Client) drawInventory(screen *ebiten.Image, inv *player.Inventory) {
	const slot = 44
	n := len(slotKeys)
	x0 := (c.width - n*(slot+4)) / 2
	y := c.height - slot - 8
	for i := 0; i < n; i++ {
		x := x0 + i*(slot+4)
		vector.DrawFilledRect(screen, float32(x), float32(y), slot, slot, colorSlot, false)
		text.Draw(screen, fmt.Sprint(i+1), basicfont.Face7x13, x+3, y+12, colorText)
		s := inv.GetSlot(i)
		if s.IsEmpty() {
			continue
		}
		text.Draw(screen, abbrev(s.Item), basicfont.Face7x13, x+4, y+28, colorText)
		if s.Count > 1 {
			text.Draw(screen, fmt.Sprintf("x%d", s.Count), basicfont.Face7x13, x+20, y+40, colorText)
		}
	}
	gear := "Weapon: -"
	if !inv.Weapon.IsEmpty() {
		gear = "Weapon: " + item.Lookup(inv.Weapon.Item).Name
	}
	if !inv.Armor.IsEmpty() {
		gear += "  Armor: " + item.Lookup(inv.Armor.Item).Name
	}
	text.Draw(screen, gear, basicfont.Face7x13, x0, y-6, colorText)
}

// abbrev shortens an item name to fit a slot.
func abbrev(id item.ID) string {
	name := item.Lookup(id).Name
	if len(name) > 5 {
		return name[:5]
	}
	return name
}

func (c *Client) drawMessages(screen *ebiten.Image, msgs []string) {
	y := c.height - 80 - len(msgs)*16
	for _, m := range msgs {
		text.Draw(screen, m, basicfont.Face7x13, 16, y, colorText)
		y += 16
	}
}

func (c *Client) drawDialog(screen *ebiten.Image, d *session.DialogSession) {
	w := float32(c.width) * 0.6
	x := (float32(c.width) - w) / 2
	y := float32(c.height) - 200
	vector.DrawFilledRect(screen, x, y, w, 90, colorPanel, false)
	vector.StrokeRect(screen, x, y, w, 90, 2, colorText, false)
	text.Draw(screen, d.Speaker, basicfont.Face7x13, int(x)+12, int(y)+20, colorChest)
	text.Draw(screen, d.Line(), basicfont.Face7x13, int(x)+12, int(y)+44, colorText)
	text.Draw(screen, "[E] continue", basicfont.Face7x13, int(x+w)-96, int(y)+80, colorText)
}

func (c *Client) drawGameOver(screen *ebiten.Image, s *session.State) {
	vector.DrawFilledRect(screen, 0, 0, float32(c.width), float32(c.height), colorPanel, false)
	msg := fmt.Sprintf("You died on day %d at level %d. Press Esc to quit.", s.Day(), s.Player.Level)
	text.Draw(screen, msg, basicfont.Face7x13, c.width/2-len(msg)*7/2, c.height/2, colorHealth)
}
