package world

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// portalSeedOffset separates the portal destination stream from the tile
// feature stream of the same coordinate.
const (
	portalSeedOffset = 7_777_777
	portalTries      = 16
)

// Dimensions fixes the world extent in tiles, the chunk edge in tiles and the
// tile edge in pixels.
type Dimensions struct {
	WorldSize int
	ChunkSize int
	TileSize  int
}

// DefaultDimensions returns the reference 256-tile world of 16-tile chunks and
// 32-pixel tiles.
func DefaultDimensions() Dimensions {
	return Dimensions{WorldSize: 256, ChunkSize: 16, TileSize: 32}
}

// World lazily generates tiles and chunk entities and memoizes both for the
// lifetime of the process. It is not safe for concurrent use; the game loop
// owns it.
type World struct {
	classifier *gen.Classifier
	dims       Dimensions
	log        *slog.Logger

	tiles  map[uint64]Tile
	chunks map[uint64][]*entity.Entity
}

// NewWorld creates an empty World over the given classifier.
func NewWorld(classifier *gen.Classifier, dims Dimensions, log *slog.Logger) *World {
	return &World{
		classifier: classifier,
		dims:       dims,
		log:        log,
		tiles:      make(map[uint64]Tile),
		chunks:     make(map[uint64][]*entity.Entity),
	}
}

// Dimensions returns the world's fixed dimensions.
func (w *World) Dimensions() Dimensions { return w.dims }

// InBounds reports whether tile (x, y) lies inside the world.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.dims.WorldSize && y < w.dims.WorldSize
}

// GetBiome classifies tile (x, y). It is a pure function of the seeds and
// the coordinate and is not bounded by the world extent.
func (w *World) GetBiome(x, y int) gen.Biome {
	return w.classifier.BiomeAt(x, y)
}

// GetTile returns the tile at (x, y), generating it on first access.
// Coordinates outside the world yield a water tile that is never cached.
func (w *World) GetTile(x, y int) Tile {
	if !w.InBounds(x, y) {
		return boundaryTile
	}
	k := key(x, y)
	if t, ok := w.tiles[k]; ok {
		return t
	}
	t := generateTile(w.GetBiome(x, y), x, y)
	w.tiles[k] = t
	return t
}

// GetChunkEntities returns the live entities of chunk (cx, cy), populating
// the chunk on first access. Every call returns the same entity values, so
// mutations made through one result are seen through the next.
func (w *World) GetChunkEntities(cx, cy int) []*entity.Entity {
	k := key(cx, cy)
	if es, ok := w.chunks[k]; ok {
		return es
	}
	es := w.populateChunk(cx, cy)
	w.chunks[k] = es
	w.log.Debug("chunk materialized", "cx", cx, "cy", cy, "entities", len(es))
	return es
}

// VisibleEntities collects the visible entities of the chunks within radius
// of the chunk containing pos. A radius of 1 covers the 3×3 neighborhood.
func (w *World) VisibleEntities(pos mgl64.Vec2, radius int) []*entity.Entity {
	tx, ty := w.TileAt(pos)
	cx, cy := w.ChunkOf(tx, ty)

	var out []*entity.Entity
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			for _, e := range w.GetChunkEntities(cx+dx, cy+dy) {
				if e.Visible() {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

// TileAt returns the tile containing pixel position pos.
func (w *World) TileAt(pos mgl64.Vec2) (int, int) {
	ts := float64(w.dims.TileSize)
	return int(math.Floor(pos.X() / ts)), int(math.Floor(pos.Y() / ts))
}

// TilePos returns the pixel position of tile (x, y)'s top-left corner.
func (w *World) TilePos(x, y int) mgl64.Vec2 {
	ts := float64(w.dims.TileSize)
	return mgl64.Vec2{float64(x) * ts, float64(y) * ts}
}

// ChunkOf returns the chunk containing tile (x, y).
func (w *World) ChunkOf(x, y int) (int, int) {
	return floorDiv(x, w.dims.ChunkSize), floorDiv(y, w.dims.ChunkSize)
}

// Walkable reports whether the tile under pixel position pos can be stood on.
func (w *World) Walkable(pos mgl64.Vec2) bool {
	return w.GetTile(w.TileAt(pos)).Walkable()
}

// PortalTarget returns the pixel position a portal at tile (x, y) leads to:
// the center of a walkable tile picked from a stream seeded by the portal's
// coordinate. The world center is used when no pick is walkable.
func (w *World) PortalTarget(x, y int) mgl64.Vec2 {
	r := gen.NewRandom(gen.TileSeed(x, y) + portalSeedOffset)
	half := float64(w.dims.TileSize) / 2
	for i := 0; i < portalTries; i++ {
		tx := r.Int(0, w.dims.WorldSize-1)
		ty := r.Int(0, w.dims.WorldSize-1)
		t := w.GetTile(tx, ty)
		if t.Walkable() && !t.Portal {
			return w.TilePos(tx, ty).Add(mgl64.Vec2{half, half})
		}
	}
	c := w.dims.WorldSize / 2
	return w.TilePos(c, c).Add(mgl64.Vec2{half, half})
}

// SpawnPoint returns the center of the walkable tile nearest the world
// center, searching outward ring by ring.
func (w *World) SpawnPoint() mgl64.Vec2 {
	c := w.dims.WorldSize / 2
	half := float64(w.dims.TileSize) / 2
	for ring := 0; ring < w.dims.WorldSize/2; ring++ {
		for dy := -ring; dy <= ring; dy++ {
			for dx := -ring; dx <= ring; dx++ {
				if max(abs(dx), abs(dy)) != ring {
					continue
				}
				if t := w.GetTile(c+dx, c+dy); t.Walkable() && !t.Portal {
					return w.TilePos(c+dx, c+dy).Add(mgl64.Vec2{half, half})
				}
			}
		}
	}
	return w.TilePos(c, c).Add(mgl64.Vec2{half, half})
}

// CachedTiles returns the number of memoized tiles.
func (w *World) CachedTiles() int { return len(w.tiles) }

// CachedChunks returns the number of populated chunks.
func (w *World) CachedChunks() int { return len(w.chunks) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
