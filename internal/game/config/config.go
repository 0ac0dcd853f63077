package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the game configuration.
type Config struct {
	TerrainSeed  int64   `json:"terrain_seed" yaml:"terrain_seed" jsonschema:"description=Seed of the elevation noise field"`
	BiomeSeed    int64   `json:"biome_seed" yaml:"biome_seed" jsonschema:"description=Seed of the moisture and temperature noise field"`
	WorldSize    int     `json:"world_size" yaml:"world_size" jsonschema:"minimum=16,maximum=65536,description=World edge in tiles"`
	ChunkSize    int     `json:"chunk_size" yaml:"chunk_size" jsonschema:"minimum=1,maximum=256,description=Chunk edge in tiles"`
	TileSize     int     `json:"tile_size" yaml:"tile_size" jsonschema:"minimum=4,maximum=256,description=Tile edge in pixels"`
	NoiseBackend string  `json:"noise_backend" yaml:"noise_backend" jsonschema:"enum=perlin,enum=aquilax"`
	MaxFrameDT   float64 `json:"max_frame_dt" yaml:"max_frame_dt" jsonschema:"exclusiveMinimum=0,maximum=1,description=Upper bound on one simulation step in seconds"`
	ViewRadius   int     `json:"view_radius" yaml:"view_radius" jsonschema:"minimum=0,maximum=8,description=Chunks around the player kept active"`
	ScreenWidth  int     `json:"screen_width" yaml:"screen_width" jsonschema:"minimum=160,maximum=7680"`
	ScreenHeight int     `json:"screen_height" yaml:"screen_height" jsonschema:"minimum=120,maximum=4320"`
	ObserverAddr string  `json:"observer_addr" yaml:"observer_addr" jsonschema:"description=Loopback address of the spectator websocket; empty disables it"`
	JournalDir   string  `json:"journal_dir" yaml:"journal_dir" jsonschema:"description=Directory of the gameplay journal; empty disables it"`
	LogLevel     string  `json:"log_level" yaml:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// DefaultConfig returns a Config with the reference world.
func DefaultConfig() *Config {
	return &Config{
		TerrainSeed:  12345,
		BiomeSeed:    67890,
		WorldSize:    256,
		ChunkSize:    16,
		TileSize:     32,
		NoiseBackend: "perlin",
		MaxFrameDT:   0.1,
		ViewRadius:   1,
		ScreenWidth:  960,
		ScreenHeight: 640,
		LogLevel:     "info",
	}
}

// Load reads a YAML config file on top of the defaults. The file is checked
// against the schema before it is decoded.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if doc != nil {
		if err := validateDocument(doc); err != nil {
			return nil, fmt.Errorf("validate config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["terrain-seed"] {
		cfg.TerrainSeed = fromFile.TerrainSeed
	}
	if !explicitFlags["biome-seed"] {
		cfg.BiomeSeed = fromFile.BiomeSeed
	}
	if !explicitFlags["world-size"] {
		cfg.WorldSize = fromFile.WorldSize
	}
	if !explicitFlags["chunk-size"] {
		cfg.ChunkSize = fromFile.ChunkSize
	}
	if !explicitFlags["tile-size"] {
		cfg.TileSize = fromFile.TileSize
	}
	if !explicitFlags["noise"] {
		cfg.NoiseBackend = fromFile.NoiseBackend
	}
	if !explicitFlags["max-dt"] {
		cfg.MaxFrameDT = fromFile.MaxFrameDT
	}
	if !explicitFlags["view-radius"] {
		cfg.ViewRadius = fromFile.ViewRadius
	}
	if !explicitFlags["width"] {
		cfg.ScreenWidth = fromFile.ScreenWidth
	}
	if !explicitFlags["height"] {
		cfg.ScreenHeight = fromFile.ScreenHeight
	}
	if !explicitFlags["observe"] {
		cfg.ObserverAddr = fromFile.ObserverAddr
	}
	if !explicitFlags["journal"] {
		cfg.JournalDir = fromFile.JournalDir
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
