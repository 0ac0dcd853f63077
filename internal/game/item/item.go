package item

import "fmt"

// ID names an item kind. Chest loot and inventory slots carry IDs.
type ID string

const (
	HealthPotion ID = "health_potion"
	IronSword    ID = "iron_sword"
	SteelArmor   ID = "steel_armor"
	GoldPouch    ID = "gold_pouch"
	MagicScroll  ID = "magic_scroll"
)

// Category decides what using an item does.
type Category uint8

const (
	Consumable Category = iota
	Weapon
	Armor
)

// Def describes an item kind.
type Def struct {
	ID       ID
	Name     string
	Category Category
	Heal     int // health restored by a consumable
	Gold     int // gold granted by a consumable
	XP       int // experience granted by a consumable
	Attack   int // attack bonus while equipped
	Defense  int // defense bonus while equipped
	MaxStack int
}

var catalog = map[ID]Def{
	HealthPotion: {ID: HealthPotion, Name: "Health Potion", Category: Consumable, Heal: 30, MaxStack: 10},
	IronSword:    {ID: IronSword, Name: "Iron Sword", Category: Weapon, Attack: 5, MaxStack: 1},
	SteelArmor:   {ID: SteelArmor, Name: "Steel Armor", Category: Armor, Defense: 4, MaxStack: 1},
	GoldPouch:    {ID: GoldPouch, Name: "Gold Pouch", Category: Consumable, Gold: 25, MaxStack: 10},
	MagicScroll:  {ID: MagicScroll, Name: "Magic Scroll", Category: Consumable, XP: 50, MaxStack: 5},
}

// LootTable is the fixed pool chest contents are drawn from. Order matters:
// chunk population indexes it with PRNG draws.
var LootTable = [5]ID{HealthPotion, IronSword, SteelArmor, GoldPouch, MagicScroll}

// Lookup returns the definition for id. The catalog is closed, so a miss is
// a programming error.
func Lookup(id ID) Def {
	d, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("item: unknown item %q", id))
	}
	return d
}

// Known reports whether id is in the catalog.
func Known(id ID) bool {
	_, ok := catalog[id]
	return ok
}
