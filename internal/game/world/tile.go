package world

import "github.com/OCharnyshevich/overworld/internal/game/world/gen"

// NoDecoration marks a tile without a decoration variant.
const NoDecoration = -1

// Per-tile feature probabilities, drawn after the biome's tree chance.
const (
	chestChance      = 0.002
	portalChance     = 0.0005
	decorationChance = 0.1
)

// Tile is the static content of one world tile. Tiles are derived from the
// seeds and their coordinates alone and never change once generated.
type Tile struct {
	Biome      gen.Biome `json:"biome"`
	Tree       bool      `json:"tree,omitempty"`
	Chest      bool      `json:"chest,omitempty"`
	Portal     bool      `json:"portal,omitempty"`
	Decoration int       `json:"decoration"` // 0..3 or NoDecoration
}

// boundaryTile is returned for every coordinate outside the world.
var boundaryTile = Tile{Biome: gen.Water, Decoration: NoDecoration}

// Walkable reports whether the player or an enemy may stand on the tile.
func (t Tile) Walkable() bool {
	return !t.Biome.IsWater() && !t.Tree
}

// generateTile derives a tile's features. The draw order is fixed: tree,
// chest, portal, decoration gate, decoration variant.
func generateTile(b gen.Biome, x, y int) Tile {
	r := gen.NewRandom(gen.TileSeed(x, y))
	t := Tile{Biome: b, Decoration: NoDecoration}

	t.Tree = r.Next() < b.TreeChance()
	t.Chest = r.Next() < chestChance
	t.Portal = r.Next() < portalChance
	if r.Next() < decorationChance {
		t.Decoration = r.Int(0, 3)
	}

	if b.IsWater() {
		t.Tree = false
		t.Decoration = NoDecoration
	}
	return t
}

// key packs a coordinate pair into a map key.
func key(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
