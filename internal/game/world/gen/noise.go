package gen

import "math"

// Perlin is 2D gradient noise over a seeded permutation table.
// Produces values in the range [-1, 1].
type Perlin struct {
	perm [512]int
}

// NewPerlin creates a noise field whose permutation table is shuffled by a
// Random stream seeded with seed.
func NewPerlin(seed int64) *Perlin {
	n := &Perlin{}

	// Initialize with identity permutation.
	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle driven by the world PRNG.
	rng := NewRandom(seed)
	for i := 255; i > 0; i-- {
		j := rng.Int(0, i)
		p[i], p[j] = p[j], p[i]
	}

	// Double the permutation table for wrapping.
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// Noise returns 2D gradient noise for the given coordinates.
func (n *Perlin) Noise(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255

	xf := x - fx
	yf := y - fy
	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(u, grad2(aa, xf, yf), grad2(ba, xf-1, yf))
	x2 := lerp(u, grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Octave layers multiple octaves of noise for natural-looking terrain.
// Returns a value roughly in [-1, 1].
func (n *Perlin) Octave(x, y float64, octaves int, persistence float64) float64 {
	return octave(n.Noise, x, y, octaves, persistence)
}

func octave(noise func(x, y float64) float64, x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	frequency := 1.0
	amplitude := 1.0

	for range octaves {
		total += noise(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad2(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}
