package gen

import (
	"math"
	"testing"
)

func TestPerlinDeterministic(t *testing.T) {
	n1 := NewPerlin(12345)
	n2 := NewPerlin(12345)

	if n1.perm != n2.perm {
		t.Fatal("permutation tables differ for the same seed")
	}
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		y := float64(i) * 0.2
		if n1.Noise(x, y) != n2.Noise(x, y) {
			t.Fatalf("Noise not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestPerlinPermutationIsShuffledIdentity(t *testing.T) {
	n := NewPerlin(67890)

	var seen [256]bool
	identity := true
	for i := 0; i < 256; i++ {
		v := n.perm[i]
		if v < 0 || v > 255 || seen[v] {
			t.Fatalf("perm[%d] = %d is not a permutation entry", i, v)
		}
		seen[v] = true
		if v != i {
			identity = false
		}
		if n.perm[i+256] != v {
			t.Fatalf("perm[%d] = %d, want duplicate %d", i+256, n.perm[i+256], v)
		}
	}
	if identity {
		t.Error("permutation was not shuffled")
	}
}

func TestPerlinRange(t *testing.T) {
	n := NewPerlin(42)

	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		y := float64(i)*0.53 - 500
		v := n.Noise(x, y)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Noise(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
	}
}

func TestPerlinZeroAtLattice(t *testing.T) {
	n := NewPerlin(3)
	for i := -5; i <= 5; i++ {
		if v := n.Noise(float64(i), float64(i*3)); v != 0 {
			t.Fatalf("Noise at lattice point (%d,%d) = %f, want 0", i, i*3, v)
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	n1 := NewPerlin(1)
	n2 := NewPerlin(2)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i)*0.1 + 0.05
		y := float64(i)*0.2 + 0.05
		if n1.Noise(x, y) != n2.Noise(x, y) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

func TestOctaveRange(t *testing.T) {
	for _, f := range []Field{NewPerlin(123), NewAquilaxField(123)} {
		for i := 0; i < 1000; i++ {
			x := float64(i)*0.1 - 50
			y := float64(i)*0.2 - 50
			v := f.Octave(x, y, 6, 0.5)
			if v < -1.0 || v > 1.0 {
				t.Fatalf("%T Octave = %f, out of [-1,1]", f, v)
			}
		}
	}
}

func TestOctaveSingleLayerMatchesNoise(t *testing.T) {
	n := NewPerlin(9)
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.31, float64(i)*0.17
		if n.Octave(x, y, 1, 0.5) != n.Noise(x, y) {
			t.Fatalf("one-octave sample differs from Noise at (%f,%f)", x, y)
		}
	}
	if got := n.Octave(1.5, 1.5, 0, 0.5); got != 0 {
		t.Errorf("zero octaves = %f, want 0", got)
	}
}

func TestOctaveSmoothness(t *testing.T) {
	n := NewPerlin(456)

	// Adjacent samples should not differ by more than some reasonable amount.
	prev := n.Octave(0, 0, 4, 0.5)
	step := 0.01
	for i := 1; i < 1000; i++ {
		x := float64(i) * step
		curr := n.Octave(x, 0, 4, 0.5)
		diff := math.Abs(curr - prev)
		if diff > 0.1 {
			t.Fatalf("noise changed too rapidly at x=%f: diff=%f", x, diff)
		}
		prev = curr
	}
}

func TestAquilaxFieldDeterministic(t *testing.T) {
	f1 := NewField(BackendAquilax, 12345)
	f2 := NewField(BackendAquilax, 12345)
	for i := 0; i < 100; i++ {
		x := float64(i)*0.13 + 0.1
		y := float64(i)*0.29 + 0.1
		if f1.Noise(x, y) != f2.Noise(x, y) {
			t.Fatalf("aquilax noise not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestNewFieldBackends(t *testing.T) {
	if _, ok := NewField(BackendPerlin, 1).(*Perlin); !ok {
		t.Error("perlin backend should build *Perlin")
	}
	if _, ok := NewField(BackendAquilax, 1).(*AquilaxField); !ok {
		t.Error("aquilax backend should build *AquilaxField")
	}
	if _, ok := NewField("bogus", 1).(*Perlin); !ok {
		t.Error("unknown backend should fall back to *Perlin")
	}
}
