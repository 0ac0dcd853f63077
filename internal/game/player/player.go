package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/overworld/internal/game/item"
)

// Starting stats and per-level growth.
const (
	StartHealth   = 100
	StartAttack   = 10
	StartDefense  = 2
	StartXPNeeded = 100
	Speed         = 150.0 // pixels per second

	xpGrowth         = 1.5
	healthPerLevel   = 10
	attackPerLevel   = 2
	defensePerLevel  = 1
	hitboxHalfExtent = 11.0
)

// Player is the avatar controlled by input. Positions are the pixel center
// of its hitbox.
type Player struct {
	Level     int
	XP        int
	XPNeeded  int
	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Gold      int
	Speed     float64

	Pos    mgl64.Vec2
	Facing mgl64.Vec2

	Inventory *Inventory
}

// NewPlayer creates a level 1 player at pos.
func NewPlayer(pos mgl64.Vec2) *Player {
	return &Player{
		Level:     1,
		XPNeeded:  StartXPNeeded,
		Health:    StartHealth,
		MaxHealth: StartHealth,
		Attack:    StartAttack,
		Defense:   StartDefense,
		Speed:     Speed,
		Pos:       pos,
		Facing:    mgl64.Vec2{0, 1},
		Inventory: NewInventory(),
	}
}

// TotalAttack returns base attack plus the equipped weapon's bonus.
func (p *Player) TotalAttack() int {
	a := p.Attack
	if w := p.Inventory.Weapon; !w.IsEmpty() {
		a += item.Lookup(w.Item).Attack
	}
	return a
}

// TotalDefense returns base defense plus the equipped armor's bonus.
func (p *Player) TotalDefense() int {
	d := p.Defense
	if a := p.Inventory.Armor; !a.IsEmpty() {
		d += item.Lookup(a.Item).Defense
	}
	return d
}

// GainXP adds experience and applies every level-up it pays for. It returns
// the number of levels gained.
func (p *Player) GainXP(amount int) int {
	p.XP += amount
	levels := 0
	for p.XP >= p.XPNeeded {
		p.XP -= p.XPNeeded
		p.Level++
		p.XPNeeded = int(float64(p.XPNeeded) * xpGrowth)
		p.MaxHealth += healthPerLevel
		p.Attack += attackPerLevel
		p.Defense += defensePerLevel
		p.Health = p.MaxHealth
		levels++
	}
	return levels
}

// TakeDamage lowers health, flooring at zero.
func (p *Player) TakeDamage(amount int) {
	p.Health = max(0, p.Health-amount)
}

// Heal restores up to amount health without exceeding the maximum and
// returns how much was restored.
func (p *Player) Heal(amount int) int {
	before := p.Health
	p.Health = min(p.MaxHealth, p.Health+amount)
	return p.Health - before
}

// Dead reports whether health has reached zero.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// UseResult describes what using an inventory slot did.
type UseResult struct {
	Item     item.ID
	Equipped bool
	Healed   int
	Gold     int
	XP       int
	LevelUps int
}

// Use applies the item in backpack slot index: consumables are spent,
// weapons and armor are equipped. An empty slot reports false and changes
// nothing.
func (p *Player) Use(index int) (UseResult, bool) {
	s := p.Inventory.GetSlot(index)
	if s.IsEmpty() {
		return UseResult{}, false
	}
	def := item.Lookup(s.Item)
	res := UseResult{Item: s.Item}

	if def.Category != item.Consumable {
		res.Equipped = p.Inventory.Equip(index)
		return res, res.Equipped
	}

	p.Inventory.RemoveOne(index)
	res.Healed = p.Heal(def.Heal)
	p.Gold += def.Gold
	res.Gold = def.Gold
	res.XP = def.XP
	res.LevelUps = p.GainXP(def.XP)
	return res, true
}

// Move displaces the player by delta, resolving the X axis before the Y
// axis. An axis step is dropped when any hitbox corner would leave walkable
// ground.
func (p *Player) Move(delta mgl64.Vec2, walkable func(mgl64.Vec2) bool) {
	if delta.Len() > 0 {
		p.Facing = delta.Normalize()
	}
	if next := (mgl64.Vec2{p.Pos.X() + delta.X(), p.Pos.Y()}); p.fits(next, walkable) {
		p.Pos = next
	}
	if next := (mgl64.Vec2{p.Pos.X(), p.Pos.Y() + delta.Y()}); p.fits(next, walkable) {
		p.Pos = next
	}
}

func (p *Player) fits(center mgl64.Vec2, walkable func(mgl64.Vec2) bool) bool {
	h := hitboxHalfExtent
	for _, c := range [4]mgl64.Vec2{
		{center.X() - h, center.Y() - h},
		{center.X() + h, center.Y() - h},
		{center.X() - h, center.Y() + h},
		{center.X() + h, center.Y() + h},
	} {
		if !walkable(c) {
			return false
		}
	}
	return true
}

// Teleport places the player at pos without collision checks.
func (p *Player) Teleport(pos mgl64.Vec2) {
	p.Pos = pos
}
