package entity

import (
	"fmt"
	"image/color"
)

// EnemyType selects a row of the enemy stat table.
type EnemyType uint8

const (
	Slime EnemyType = iota
	Wolf
	Goblin
	Skeleton
	Orc
	Demon
	Dragon
)

// EnemyStats is the fixed stat row for an enemy type. Speed is in pixels per
// second.
type EnemyStats struct {
	Name       string
	Health     int
	Attack     int
	Speed      float64
	XPReward   int
	GoldReward int
	Color      color.RGBA
}

var enemyTable = [...]EnemyStats{
	Slime:    {Name: "slime", Health: 20, Attack: 3, Speed: 40, XPReward: 10, GoldReward: 2, Color: color.RGBA{0x7c, 0xfc, 0x00, 0xff}},
	Wolf:     {Name: "wolf", Health: 35, Attack: 6, Speed: 90, XPReward: 20, GoldReward: 4, Color: color.RGBA{0x69, 0x69, 0x69, 0xff}},
	Goblin:   {Name: "goblin", Health: 40, Attack: 7, Speed: 70, XPReward: 25, GoldReward: 8, Color: color.RGBA{0x55, 0x6b, 0x2f, 0xff}},
	Skeleton: {Name: "skeleton", Health: 50, Attack: 9, Speed: 60, XPReward: 35, GoldReward: 10, Color: color.RGBA{0xf5, 0xf5, 0xdc, 0xff}},
	Orc:      {Name: "orc", Health: 80, Attack: 12, Speed: 55, XPReward: 50, GoldReward: 15, Color: color.RGBA{0x2e, 0x8b, 0x57, 0xff}},
	Demon:    {Name: "demon", Health: 120, Attack: 18, Speed: 75, XPReward: 90, GoldReward: 30, Color: color.RGBA{0x8b, 0x00, 0x00, 0xff}},
	Dragon:   {Name: "dragon", Health: 300, Attack: 30, Speed: 65, XPReward: 250, GoldReward: 100, Color: color.RGBA{0xff, 0x45, 0x00, 0xff}},
}

// Stats returns the stat row for t. The type set is closed, so a miss is a
// programming error.
func (t EnemyType) Stats() EnemyStats {
	if int(t) >= len(enemyTable) {
		panic(fmt.Sprintf("entity: unknown enemy type %d", t))
	}
	return enemyTable[t]
}

func (t EnemyType) String() string { return t.Stats().Name }

// RollEnemyType maps a uniform roll to an enemy type. Dragons only appear in
// mountains; elsewhere the top band falls through to demons.
func RollEnemyType(r float64, mountain bool) EnemyType {
	switch {
	case r > 0.95 && mountain:
		return Dragon
	case r > 0.85:
		return Demon
	case r > 0.70:
		return Orc
	case r > 0.50:
		return Skeleton
	case r > 0.30:
		return Goblin
	case r > 0.15:
		return Wolf
	default:
		return Slime
	}
}

// NPCTemplate selects one of the fixed NPC archetypes.
type NPCTemplate uint8

const (
	Merchant NPCTemplate = iota
	Sage
	Elder
	Explorer
)

// NPCTemplateCount is the number of NPC templates chunk population picks from.
const NPCTemplateCount = 4

// NPCDef is the fixed definition of an NPC template.
type NPCDef struct {
	Name    string
	Dialog  []string
	QuestID string // empty when the NPC offers no quest
	Color   color.RGBA
}

var npcTable = [...]NPCDef{
	Merchant: {
		Name: "Merchant",
		Dialog: []string{
			"Welcome, traveler! Dangerous roads out there.",
			"Chests in the wild hold potions and steel. Keep your eyes open.",
		},
		Color: color.RGBA{0xda, 0xa5, 0x20, 0xff},
	},
	Sage: {
		Name: "Sage",
		Dialog: []string{
			"The land shifts from snow to sand to swamp.",
			"Walk five different lands and return wiser.",
		},
		QuestID: "discover_biomes",
		Color:   color.RGBA{0x93, 0x70, 0xdb, 0xff},
	},
	Elder: {
		Name: "Elder",
		Dialog: []string{
			"Monsters grow bolder every night.",
			"Slay ten of them and the village will reward you.",
		},
		QuestID: "slay_monsters",
		Color:   color.RGBA{0xcd, 0x85, 0x3f, 0xff},
	},
	Explorer: {
		Name: "Explorer",
		Dialog: []string{
			"I have mapped half this world and still find new treasure.",
			"Open three chests and tell me what you found.",
		},
		QuestID: "treasure_hunter",
		Color:   color.RGBA{0x46, 0x82, 0xb4, 0xff},
	},
}

// Def returns the definition of t. A miss is a programming error.
func (t NPCTemplate) Def() NPCDef {
	if int(t) >= len(npcTable) {
		panic(fmt.Sprintf("entity: unknown npc template %d", t))
	}
	return npcTable[t]
}
