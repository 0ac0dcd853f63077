package gen

import (
	"fmt"
	"image/color"
)

// Biome classifies terrain and governs its color and spawn rates.
type Biome uint8

const (
	Plains Biome = iota
	Forest
	Desert
	Snow
	Swamp
	Mountain
	Water
	DeepWater
)

// BiomeInfo holds the fixed properties of a biome.
type BiomeInfo struct {
	Name        string
	Color       color.RGBA
	TreeChance  float64
	EnemyChance float64
}

var biomeTable = [...]BiomeInfo{
	Plains:    {Name: "plains", Color: color.RGBA{0x7e, 0xc8, 0x50, 0xff}, TreeChance: 0.05, EnemyChance: 0.02},
	Forest:    {Name: "forest", Color: color.RGBA{0x22, 0x8b, 0x22, 0xff}, TreeChance: 0.4, EnemyChance: 0.03},
	Desert:    {Name: "desert", Color: color.RGBA{0xed, 0xc9, 0xaf, 0xff}, TreeChance: 0.01, EnemyChance: 0.02},
	Snow:      {Name: "snow", Color: color.RGBA{0xff, 0xfa, 0xfa, 0xff}, TreeChance: 0.1, EnemyChance: 0.015},
	Swamp:     {Name: "swamp", Color: color.RGBA{0x4a, 0x5d, 0x23, 0xff}, TreeChance: 0.2, EnemyChance: 0.04},
	Mountain:  {Name: "mountain", Color: color.RGBA{0x80, 0x80, 0x80, 0xff}, TreeChance: 0.05, EnemyChance: 0.05},
	Water:     {Name: "water", Color: color.RGBA{0x41, 0x69, 0xe1, 0xff}, TreeChance: 0, EnemyChance: 0},
	DeepWater: {Name: "deep_water", Color: color.RGBA{0x00, 0x00, 0x8b, 0xff}, TreeChance: 0, EnemyChance: 0},
}

// AllBiomes returns every biome in declaration order.
func AllBiomes() []Biome {
	out := make([]Biome, len(biomeTable))
	for i := range biomeTable {
		out[i] = Biome(i)
	}
	return out
}

// Info returns the fixed properties of b. The biome set is closed, so an
// unknown value is a programming error.
func (b Biome) Info() BiomeInfo {
	if int(b) >= len(biomeTable) {
		panic(fmt.Sprintf("gen: unknown biome %d", b))
	}
	return biomeTable[b]
}

func (b Biome) String() string       { return b.Info().Name }
func (b Biome) Color() color.RGBA    { return b.Info().Color }
func (b Biome) TreeChance() float64  { return b.Info().TreeChance }
func (b Biome) EnemyChance() float64 { return b.Info().EnemyChance }

// IsWater reports whether b is shallow or deep water.
func (b Biome) IsWater() bool {
	return b == Water || b == DeepWater
}

// MarshalText encodes the biome by name.
func (b Biome) MarshalText() ([]byte, error) {
	if int(b) >= len(biomeTable) {
		return nil, fmt.Errorf("unknown biome %d", b)
	}
	return []byte(biomeTable[b].Name), nil
}

// UnmarshalText decodes a biome name written by MarshalText.
func (b *Biome) UnmarshalText(text []byte) error {
	for i, info := range biomeTable {
		if info.Name == string(text) {
			*b = Biome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown biome %q", text)
}

// Climate is the noise sample a biome is derived from.
type Climate struct {
	Elevation   float64
	Moisture    float64
	Temperature float64
}

// Classifier selects biomes from a terrain field and a moisture/temperature
// field.
type Classifier struct {
	terrain Field
	climate Field
}

// NewClassifier creates a Classifier. Temperature reuses the climate field at
// a large offset instead of a third field.
func NewClassifier(terrain, climate Field) *Classifier {
	return &Classifier{terrain: terrain, climate: climate}
}

// Sample returns the climate at world tile coordinates.
func (c *Classifier) Sample(x, y int) Climate {
	fx, fy := float64(x), float64(y)
	return Climate{
		Elevation:   c.terrain.Octave(fx*0.02, fy*0.02, 4, 0.5),
		Moisture:    c.climate.Octave(fx*0.015, fy*0.015, 4, 0.5),
		Temperature: c.climate.Octave(fx*0.01+1000, fy*0.01+1000, 4, 0.5),
	}
}

// BiomeAt returns the biome at world tile coordinates.
func (c *Classifier) BiomeAt(x, y int) Biome {
	return Classify(c.Sample(x, y))
}

// Classify maps a climate sample to a biome. Rules are evaluated in order and
// the first match wins; reordering them changes the world.
func Classify(cl Climate) Biome {
	switch {
	case cl.Elevation < -0.3:
		return DeepWater
	case cl.Elevation < -0.1:
		return Water
	case cl.Elevation > 0.6:
		return Mountain
	case cl.Temperature < -0.2:
		return Snow
	case cl.Moisture < -0.2 && cl.Temperature > 0.2:
		return Desert
	case cl.Moisture > 0.3 && cl.Elevation < 0.1:
		return Swamp
	case cl.Moisture > 0 && cl.Elevation > 0.1:
		return Forest
	default:
		return Plains
	}
}
