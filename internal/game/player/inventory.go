package player

import "github.com/OCharnyshevich/overworld/internal/game/item"

// InventorySize is the number of backpack slots.
const InventorySize = 20

// Slot is one inventory cell.
type Slot struct {
	Item  item.ID `json:"item,omitempty"`
	Count int     `json:"count,omitempty"`
}

// EmptySlot is a convenience value for an empty slot.
var EmptySlot = Slot{}

// IsEmpty returns true if the slot holds nothing.
func (s Slot) IsEmpty() bool {
	return s.Item == "" || s.Count <= 0
}

// Inventory holds the backpack and the two equipment slots.
type Inventory struct {
	Slots  [InventorySize]Slot
	Weapon Slot
	Armor  Slot
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// GetSlot returns the slot at index, or EmptySlot when index is out of range.
func (inv *Inventory) GetSlot(index int) Slot {
	if index < 0 || index >= InventorySize {
		return EmptySlot
	}
	return inv.Slots[index]
}

// SetSlot sets the contents of a backpack slot.
func (inv *Inventory) SetSlot(index int, slot Slot) {
	inv.Slots[index] = slot
}

// RemoveOne decrements the count of the given slot by 1 and returns the
// removed item. If the slot becomes empty, it is set to EmptySlot.
func (inv *Inventory) RemoveOne(index int) item.ID {
	s := inv.GetSlot(index)
	if s.IsEmpty() {
		return ""
	}
	s.Count--
	if s.Count <= 0 {
		inv.Slots[index] = EmptySlot
	} else {
		inv.Slots[index] = s
	}
	return s.Item
}

// AddItem inserts count items by merging into existing stacks first, then
// placing into empty slots in index order. It returns how many did not fit.
func (inv *Inventory) AddItem(id item.ID, count int) int {
	if count <= 0 {
		return 0
	}
	maxStack := item.Lookup(id).MaxStack
	remaining := count

	// First pass: merge into existing stacks.
	for i := range inv.Slots {
		s := &inv.Slots[i]
		if s.IsEmpty() || s.Item != id {
			continue
		}
		transfer := min(remaining, maxStack-s.Count)
		if transfer <= 0 {
			continue
		}
		s.Count += transfer
		remaining -= transfer
		if remaining == 0 {
			return 0
		}
	}

	// Second pass: place in empty slots.
	for i := range inv.Slots {
		if !inv.Slots[i].IsEmpty() {
			continue
		}
		place := min(remaining, maxStack)
		inv.Slots[i] = Slot{Item: id, Count: place}
		remaining -= place
		if remaining == 0 {
			return 0
		}
	}
	return remaining
}

// Count returns how many of id the backpack holds.
func (inv *Inventory) Count(id item.ID) int {
	n := 0
	for _, s := range inv.Slots {
		if !s.IsEmpty() && s.Item == id {
			n += s.Count
		}
	}
	return n
}

// Equip moves one item from the backpack slot into its equipment slot and
// returns the previously equipped item to the backpack. It reports false
// when the slot does not hold a weapon or armor.
func (inv *Inventory) Equip(index int) bool {
	s := inv.GetSlot(index)
	if s.IsEmpty() {
		return false
	}
	var target *Slot
	switch item.Lookup(s.Item).Category {
	case item.Weapon:
		target = &inv.Weapon
	case item.Armor:
		target = &inv.Armor
	default:
		return false
	}

	prev := *target
	*target = Slot{Item: inv.RemoveOne(index), Count: 1}
	if !prev.IsEmpty() {
		inv.AddItem(prev.Item, prev.Count)
	}
	return true
}
