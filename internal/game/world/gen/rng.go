package gen

import "math"

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 1<<31 - 1
)

// Random is a seeded linear congruential stream. Two streams built from the
// same seed and driven by the same sequence of calls produce identical values.
type Random struct {
	state uint32
}

// NewRandom creates a stream from a seed. Only the low 31 bits of the seed
// influence the sequence.
func NewRandom(seed int64) *Random {
	return &Random{state: uint32(uint64(seed) & lcgMask)}
}

// TileSeed returns the per-tile feature seed for a tile coordinate.
func TileSeed(x, y int) int64 {
	return int64(x)*10000 + int64(y)
}

// ChunkSeed returns the entity population seed for a chunk coordinate.
func ChunkSeed(cx, cy int) int64 {
	return int64(cx)*100000 + int64(cy) + 99999
}

func (r *Random) step() uint32 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) & lcgMask
	return r.state
}

// belowOne is the largest float64 less than 1.
var belowOne = math.Nextafter(1, 0)

// Next advances the stream and returns state / (2^31-1) in [0, 1). The
// register value 2^31-1 would map to exactly 1.0 and yields belowOne instead.
func (r *Random) Next() float64 {
	return math.Min(float64(r.step())/lcgMask, belowOne)
}

// Range returns a value in [min, max).
func (r *Random) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// Int returns an integer in [min, max], both ends inclusive.
func (r *Random) Int(min, max int) int {
	v := int(math.Floor(r.Range(float64(min), float64(max+1))))
	// Rounding in Range can still land on max+1 for wide ranges.
	if v > max {
		v = max
	}
	return v
}

// Int63 implements math/rand.Source so third-party generators can be seeded
// from a deterministic stream. Each call consumes two draws.
func (r *Random) Int63() int64 {
	hi := int64(r.step())
	lo := int64(r.step())
	return hi<<32 | lo
}

// Seed implements math/rand.Source.
func (r *Random) Seed(seed int64) {
	r.state = uint32(uint64(seed) & lcgMask)
}
