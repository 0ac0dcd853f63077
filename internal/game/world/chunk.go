package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/item"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// Per-chunk spawn gates. The enemy gate scales the origin biome's enemy chance.
const (
	enemyChanceScale = 5
	npcChance        = 0.001
	chestSpawnChance = 0.01
)

// idSpace namespaces deterministic entity IDs.
var idSpace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("overworld/entity"))

func entityID(cx, cy int, kind entity.Kind, n int) uuid.UUID {
	return uuid.NewSHA1(idSpace, []byte(fmt.Sprintf("%d/%d/%s/%d", cx, cy, kind, n)))
}

// populateChunk materializes the entities of chunk (cx, cy). Only the chunk
// seed and the origin biome influence the enemy, NPC and chest draws, which
// happen in that order. Portal entities follow, one per portal tile.
func (w *World) populateChunk(cx, cy int) []*entity.Entity {
	cs := w.dims.ChunkSize
	originX, originY := cx*cs, cy*cs
	biome := w.GetBiome(originX, originY)
	r := gen.NewRandom(gen.ChunkSeed(cx, cy))

	var out []*entity.Entity
	place := func() mgl64.Vec2 {
		ox := r.Int(0, cs)
		oy := r.Int(0, cs)
		return w.TilePos(originX+ox, originY+oy)
	}

	if r.Next() < biome.EnemyChance()*enemyChanceScale {
		t := entity.RollEnemyType(r.Next(), biome == gen.Mountain)
		out = append(out, entity.NewEnemy(entityID(cx, cy, entity.KindEnemy, 0), t, place()))
	}

	if r.Next() < npcChance {
		tmpl := entity.NPCTemplate(r.Int(0, entity.NPCTemplateCount-1))
		out = append(out, entity.NewNPC(entityID(cx, cy, entity.KindNPC, 0), tmpl, place()))
	}

	if r.Next() < chestSpawnChance {
		n := r.Int(1, 3)
		loot := make([]item.ID, n)
		for i := range loot {
			loot[i] = item.LootTable[r.Int(0, len(item.LootTable)-1)]
		}
		out = append(out, entity.NewChest(entityID(cx, cy, entity.KindChest, 0), loot, place()))
	}

	n := 0
	for ty := originY; ty < originY+cs; ty++ {
		for tx := originX; tx < originX+cs; tx++ {
			if !w.GetTile(tx, ty).Portal {
				continue
			}
			out = append(out, entity.NewPortal(entityID(cx, cy, entity.KindPortal, n), w.TilePos(tx, ty), w.PortalTarget(tx, ty)))
			n++
		}
	}
	return out
}
