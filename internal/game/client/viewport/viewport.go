// Package viewport holds the camera math of the desktop client, kept free of
// any graphics dependency.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps world pixels to screen pixels with the focus at the screen
// center.
type Camera struct {
	Focus  mgl64.Vec2
	Width  int
	Height int
}

// Origin returns the world position of the screen's top-left corner.
func (c Camera) Origin() mgl64.Vec2 {
	return c.Focus.Sub(mgl64.Vec2{float64(c.Width) / 2, float64(c.Height) / 2})
}

// ToScreen converts a world pixel position to screen coordinates.
func (c Camera) ToScreen(p mgl64.Vec2) (float32, float32) {
	d := p.Sub(c.Origin())
	return float32(d.X()), float32(d.Y())
}

// TileRange returns the inclusive tile bounds covering the screen for the
// given tile size.
func (c Camera) TileRange(tileSize int) (x0, y0, x1, y1 int) {
	o := c.Origin()
	ts := float64(tileSize)
	x0 = int(math.Floor(o.X() / ts))
	y0 = int(math.Floor(o.Y() / ts))
	x1 = int(math.Floor((o.X() + float64(c.Width)) / ts))
	y1 = int(math.Floor((o.Y() + float64(c.Height)) / ts))
	return x0, y0, x1, y1
}

// MoveVector turns pressed directions into a movement intent. Opposite keys
// cancel.
func MoveVector(up, down, left, right bool) mgl64.Vec2 {
	var v mgl64.Vec2
	if up {
		v[1]--
	}
	if down {
		v[1]++
	}
	if left {
		v[0]--
	}
	if right {
		v[0]++
	}
	return v
}

// NightAlpha is the opacity of the darkness overlay for a daylight level in
// [0, 1]. Full daylight adds nothing; midnight caps at max.
func NightAlpha(daylight, max float64) uint8 {
	d := math.Max(0, math.Min(1, daylight))
	return uint8(math.Round((1 - d) * max * 255))
}

// MinimapPoint places world pixel p on a square minimap of size pixels.
func MinimapPoint(p mgl64.Vec2, worldPixels float64, size int) (float32, float32) {
	s := float64(size) / worldPixels
	return float32(p.X() * s), float32(p.Y() * s)
}
