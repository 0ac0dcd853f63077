package gen

import perlin "github.com/aquilax/go-perlin"

// Noise backends accepted by NewField.
const (
	BackendPerlin  = "perlin"
	BackendAquilax = "aquilax"
)

// Field is a seeded 2D noise source.
type Field interface {
	Noise(x, y float64) float64
	Octave(x, y float64, octaves int, persistence float64) float64
}

// NewField builds the noise field for the named backend. Unknown names fall
// back to the built-in Perlin field.
func NewField(backend string, seed int64) Field {
	switch backend {
	case BackendAquilax:
		return NewAquilaxField(seed)
	default:
		return NewPerlin(seed)
	}
}

// AquilaxField adapts github.com/aquilax/go-perlin to Field. Its gradient
// tables are drawn from a Random stream so the field stays reproducible.
type AquilaxField struct {
	p *perlin.Perlin
}

// NewAquilaxField creates a single-iteration go-perlin generator seeded from
// the world PRNG. Octaves are layered by Octave, not by the library.
func NewAquilaxField(seed int64) *AquilaxField {
	return &AquilaxField{p: perlin.NewPerlinRandSource(2, 2, 1, NewRandom(seed))}
}

// Noise returns raw go-perlin noise, roughly in [-0.7, 0.7].
func (f *AquilaxField) Noise(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}

// Octave layers octaves with the same normalization as Perlin.Octave.
func (f *AquilaxField) Octave(x, y float64, octaves int, persistence float64) float64 {
	return octave(f.Noise, x, y, octaves, persistence)
}
