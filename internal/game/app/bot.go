package app

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/item"
	"github.com/OCharnyshevich/overworld/internal/game/session"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// Bot produces input for headless runs. It wanders in straight legs and
// reacts to whatever comes within reach.
type Bot struct {
	rng    *gen.Random
	dir    mgl64.Vec2
	timer  float64
	last   mgl64.Vec2
	talked map[uuid.UUID]bool
}

// NewBot creates a Bot whose choices are a pure function of seed.
func NewBot(seed int64) *Bot {
	return &Bot{rng: gen.NewRandom(seed), talked: make(map[uuid.UUID]bool)}
}

// Next returns the input for the coming step.
func (b *Bot) Next(s *session.State, dt float64) session.Input {
	in := session.Input{UseSlot: session.NoSlot}

	if s.Dialog != nil {
		in.Interact = true
		return in
	}

	b.timer -= dt
	stuck := s.Player.Pos.Sub(b.last).Len() < 1e-9 && b.dir.Len() > 0
	if b.timer <= 0 || stuck {
		angle := b.rng.Range(0, 2*math.Pi)
		b.dir = mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
		b.timer = b.rng.Range(1, 4)
	}
	b.last = s.Player.Pos
	in.Move = b.dir

	for _, e := range s.Visible {
		d := s.Center(e).Sub(s.Player.Pos).Len()
		if d > session.ReachRange {
			continue
		}
		switch e.Kind {
		case entity.KindEnemy:
			in.Attack = true
		case entity.KindNPC:
			if !b.talked[e.ID] {
				b.talked[e.ID] = true
				in.Interact = true
			}
		case entity.KindChest:
			if !e.Chest.Opened {
				in.Interact = true
			}
		}
	}

	in.UseSlot = b.pickSlot(s)
	return in
}

// pickSlot drinks a potion below half health and equips gear into empty
// equipment slots.
func (b *Bot) pickSlot(s *session.State) int {
	p := s.Player
	for i, slot := range p.Inventory.Slots {
		if slot.IsEmpty() {
			continue
		}
		switch item.Lookup(slot.Item).Category {
		case item.Consumable:
			if slot.Item == item.HealthPotion && p.Health*2 < p.MaxHealth {
				return i
			}
			if slot.Item != item.HealthPotion {
				return i
			}
		case item.Weapon:
			if p.Inventory.Weapon.IsEmpty() {
				return i
			}
		case item.Armor:
			if p.Inventory.Armor.IsEmpty() {
				return i
			}
		}
	}
	return session.NoSlot
}
