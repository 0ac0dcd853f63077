package worldmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/OCharnyshevich/overworld/internal/game/world"
)

var (
	treeShade   = color.RGBA{0x10, 0x40, 0x10, 0xff}
	portalColor = color.RGBA{0xc0, 0x40, 0xff, 0xff}
	chestColor  = color.RGBA{0xb8, 0x86, 0x0b, 0xff}
)

// Render draws the whole world at one pixel per tile. Trees darken their
// tile; portals and chests are marked in their own colors.
func Render(w *world.World) *image.RGBA {
	n := w.Dimensions().WorldSize
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, TileColor(w.GetTile(x, y)))
		}
	}
	return img
}

// TileColor returns the map color of a tile.
func TileColor(t world.Tile) color.RGBA {
	switch {
	case t.Portal:
		return portalColor
	case t.Chest:
		return chestColor
	case t.Tree:
		return blend(t.Biome.Color(), treeShade, 0.45)
	default:
		return t.Biome.Color()
	}
}

// Scale resizes src to size×size with nearest-neighbor sampling, keeping
// biome edges crisp.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}
