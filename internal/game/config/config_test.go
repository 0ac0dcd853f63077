package config

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TerrainSeed != 12345 || cfg.BiomeSeed != 67890 {
		t.Errorf("seeds = %d/%d", cfg.TerrainSeed, cfg.BiomeSeed)
	}
	if cfg.WorldSize != 256 || cfg.ChunkSize != 16 || cfg.TileSize != 32 {
		t.Errorf("dimensions = %d/%d/%d", cfg.WorldSize, cfg.ChunkSize, cfg.TileSize)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"world too small": func(c *Config) { c.WorldSize = 4 },
		"zero chunk":      func(c *Config) { c.ChunkSize = 0 },
		"unknown backend": func(c *Config) { c.NoiseBackend = "simplex" },
		"zero dt":         func(c *Config) { c.MaxFrameDT = 0 },
		"huge radius":     func(c *Config) { c.ViewRadius = 40 },
		"bad log level":   func(c *Config) { c.LogLevel = "verbose" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadPartialFile(t *testing.T) {
	p := writeFile(t, "game.yaml", "terrain_seed: 42\nnoise_backend: aquilax\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TerrainSeed != 42 || cfg.NoiseBackend != "aquilax" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.BiomeSeed != 67890 || cfg.WorldSize != 256 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	p := writeFile(t, "game.yaml", "terrain_sead: 42\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	p := writeFile(t, "game.yaml", "tile_size: 1\n")
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "validate config") {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	p := writeFile(t, "empty.yaml", "")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TerrainSeed = 7
	cfg.ViewRadius = 3

	file := DefaultConfig()
	file.TerrainSeed = 99
	file.ViewRadius = 2
	file.BiomeSeed = 5

	Merge(cfg, file, map[string]bool{"terrain-seed": true})
	if cfg.TerrainSeed != 7 {
		t.Errorf("explicit flag overwritten: %d", cfg.TerrainSeed)
	}
	if cfg.ViewRadius != 2 || cfg.BiomeSeed != 5 {
		t.Errorf("file values not merged: radius=%d biome=%d", cfg.ViewRadius, cfg.BiomeSeed)
	}
}

func TestFetchLocalFile(t *testing.T) {
	src := writeFile(t, "remote.yaml", "world_size: 128\n")
	cfg, err := LoadSource(context.Background(), src)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if cfg.WorldSize != 128 {
		t.Errorf("world size = %d", cfg.WorldSize)
	}

	dst, err := Fetch(context.Background(), src, t.TempDir())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if _, err := Load(dst); err != nil {
		t.Errorf("fetched file unreadable: %v", err)
	}
}

func TestSchemaDocument(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", data)
	}
	for _, k := range []string{"terrain_seed", "biome_seed", "world_size", "noise_backend"} {
		if _, ok := props[k]; !ok {
			t.Errorf("schema missing %s", k)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Error("default level should be info")
	}
	cfg.LogLevel = "debug"
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Error("debug level not mapped")
	}
}
