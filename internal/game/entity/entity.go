package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/overworld/internal/game/item"
)

// Kind tags which payload of an Entity is populated.
type Kind uint8

const (
	KindEnemy Kind = iota
	KindNPC
	KindChest
	KindPortal
)

var kindNames = [...]string{
	KindEnemy:  "enemy",
	KindNPC:    "npc",
	KindChest:  "chest",
	KindPortal: "portal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown entity kind %q", text)
}

// AIState is the enemy behavior state.
type AIState uint8

const (
	Wandering AIState = iota
	Seeking
	Attacking
)

func (s AIState) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case Attacking:
		return "attacking"
	default:
		return "wandering"
	}
}

// Enemy is the mutable combat payload of an enemy entity.
type Enemy struct {
	Type       EnemyType
	Health     int
	MaxHealth  int
	Attack     int
	Speed      float64
	XPReward   int
	GoldReward int

	State       AIState
	Vel         mgl64.Vec2
	Cooldown    float64 // seconds until the next attack may land
	WanderTimer float64 // seconds until a new drift direction is picked
}

// NPC is the payload of a non-hostile character.
type NPC struct {
	Template NPCTemplate
	Name     string
	Dialog   []string
	QuestID  string
}

// Chest holds loot until opened. Opened chests stay in the world.
type Chest struct {
	Loot   []item.ID
	Opened bool
}

// Portal teleports the player to Target, in pixels.
type Portal struct {
	Target mgl64.Vec2
}

// Entity is a dynamic world object. Exactly one payload pointer matching Kind
// is non-nil. Positions are in pixels.
type Entity struct {
	ID     uuid.UUID
	Kind   Kind
	Pos    mgl64.Vec2
	Active bool

	Enemy  *Enemy
	NPC    *NPC
	Chest  *Chest
	Portal *Portal
}

// NewEnemy creates an enemy with the stat row of t.
func NewEnemy(id uuid.UUID, t EnemyType, pos mgl64.Vec2) *Entity {
	s := t.Stats()
	return &Entity{
		ID:     id,
		Kind:   KindEnemy,
		Pos:    pos,
		Active: true,
		Enemy: &Enemy{
			Type:       t,
			Health:     s.Health,
			MaxHealth:  s.Health,
			Attack:     s.Attack,
			Speed:      s.Speed,
			XPReward:   s.XPReward,
			GoldReward: s.GoldReward,
		},
	}
}

// NewNPC creates an NPC from a template.
func NewNPC(id uuid.UUID, t NPCTemplate, pos mgl64.Vec2) *Entity {
	d := t.Def()
	return &Entity{
		ID:     id,
		Kind:   KindNPC,
		Pos:    pos,
		Active: true,
		NPC: &NPC{
			Template: t,
			Name:     d.Name,
			Dialog:   d.Dialog,
			QuestID:  d.QuestID,
		},
	}
}

// NewChest creates an unopened chest holding loot.
func NewChest(id uuid.UUID, loot []item.ID, pos mgl64.Vec2) *Entity {
	return &Entity{
		ID:     id,
		Kind:   KindChest,
		Pos:    pos,
		Active: true,
		Chest:  &Chest{Loot: loot},
	}
}

// NewPortal creates a portal leading to target.
func NewPortal(id uuid.UUID, pos, target mgl64.Vec2) *Entity {
	return &Entity{
		ID:     id,
		Kind:   KindPortal,
		Pos:    pos,
		Active: true,
		Portal: &Portal{Target: target},
	}
}

// TakeDamage subtracts amount from an active enemy's health and reports
// whether the hit killed it. Other kinds ignore damage.
func (e *Entity) TakeDamage(amount int) bool {
	if e.Kind != KindEnemy || !e.Active {
		return false
	}
	e.Enemy.Health -= amount
	if e.Enemy.Health <= 0 {
		e.Die()
		return true
	}
	return false
}

// Die deactivates the entity. Death is terminal.
func (e *Entity) Die() {
	e.Active = false
	if e.Enemy != nil {
		e.Enemy.Health = 0
		e.Enemy.Vel = mgl64.Vec2{}
	}
}

// Open marks a chest opened and returns its loot. Opening an opened chest,
// or a non-chest, returns nil.
func (e *Entity) Open() []item.ID {
	if e.Kind != KindChest || e.Chest.Opened {
		return nil
	}
	e.Chest.Opened = true
	loot := make([]item.ID, len(e.Chest.Loot))
	copy(loot, e.Chest.Loot)
	return loot
}

// Visible reports whether the entity belongs in the per-frame visible set.
// Dead enemies drop out; opened chests remain.
func (e *Entity) Visible() bool {
	return e.Active
}
