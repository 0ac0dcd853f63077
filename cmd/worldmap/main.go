package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/overworld/internal/game/app"
	"github.com/OCharnyshevich/overworld/internal/game/config"
	"github.com/OCharnyshevich/overworld/internal/game/worldmap"
)

func main() {
	cfg := config.DefaultConfig()

	configSrc := flag.String("config", "", "config file or go-getter source")
	out := flag.String("out", "out", "output directory")
	scale := flag.Int("scale", 0, "resize the map to this many pixels per side; 0 keeps one pixel per tile")
	dump := flag.Bool("dump", false, "also write every tile as zstd-compressed JSON lines")
	schema := flag.Bool("schema", false, "also write the config JSON schema")
	flag.Int64Var(&cfg.TerrainSeed, "terrain-seed", cfg.TerrainSeed, "seed of the elevation field")
	flag.Int64Var(&cfg.BiomeSeed, "biome-seed", cfg.BiomeSeed, "seed of the moisture and temperature field")
	flag.IntVar(&cfg.WorldSize, "world-size", cfg.WorldSize, "world edge in tiles")
	flag.StringVar(&cfg.NoiseBackend, "noise", cfg.NoiseBackend, "noise backend: perlin or aquilax")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *configSrc != "" {
		fromFile, err := config.LoadSource(ctx, *configSrc)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if err := config.Validate(cfg); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	store, err := worldmap.New(*out, log)
	if err != nil {
		log.Error("open output", "error", err)
		os.Exit(1)
	}

	w := app.NewWorld(cfg, log)
	img := worldmap.Render(w)
	if *scale > 0 {
		img = worldmap.Scale(img, *scale)
	}
	if _, err := store.SavePNG("map.png", img); err != nil {
		log.Error("save map", "error", err)
		os.Exit(1)
	}

	if *dump {
		if _, err := store.SaveTiles("tiles.jsonl.zst", w); err != nil {
			log.Error("save tiles", "error", err)
			os.Exit(1)
		}
	}
	if *schema {
		data, err := config.Schema()
		if err != nil {
			log.Error("build schema", "error", err)
			os.Exit(1)
		}
		if _, err := store.SaveBytes("config.schema.json", data); err != nil {
			log.Error("save schema", "error", err)
			os.Exit(1)
		}
	}
}
