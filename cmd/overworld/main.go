package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/overworld/internal/game/app"
	"github.com/OCharnyshevich/overworld/internal/game/client"
	"github.com/OCharnyshevich/overworld/internal/game/config"
)

func main() {
	cfg := config.DefaultConfig()

	configSrc := flag.String("config", "", "config file or go-getter source (https://, git::, s3::)")
	headless := flag.Bool("headless", false, "run without a window, driven by a bot")
	ticks := flag.Int("ticks", 3600, "steps to simulate in headless mode")
	realtime := flag.Bool("realtime", false, "pace headless steps to 60 per second")
	bindFlags(cfg)
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	boot := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *configSrc != "" {
		fromFile, err := config.LoadSource(ctx, *configSrc)
		if err != nil {
			boot.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if err := config.Validate(cfg); err != nil {
		boot.Error("invalid config", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	g := app.New(cfg, log)
	defer func() {
		if err := g.Close(); err != nil {
			log.Error("close game", "error", err)
		}
	}()
	g.Start(ctx)

	if *headless {
		if err := g.RunHeadless(ctx, *ticks, *realtime); err != nil {
			log.Error("headless run", "error", err)
		}
		return
	}
	if err := client.Run(g); err != nil {
		log.Error("client error", "error", err)
	}
}

func bindFlags(cfg *config.Config) {
	flag.Int64Var(&cfg.TerrainSeed, "terrain-seed", cfg.TerrainSeed, "seed of the elevation field")
	flag.Int64Var(&cfg.BiomeSeed, "biome-seed", cfg.BiomeSeed, "seed of the moisture and temperature field")
	flag.IntVar(&cfg.WorldSize, "world-size", cfg.WorldSize, "world edge in tiles")
	flag.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "chunk edge in tiles")
	flag.IntVar(&cfg.TileSize, "tile-size", cfg.TileSize, "tile edge in pixels")
	flag.StringVar(&cfg.NoiseBackend, "noise", cfg.NoiseBackend, "noise backend: perlin or aquilax")
	flag.Float64Var(&cfg.MaxFrameDT, "max-dt", cfg.MaxFrameDT, "longest simulation step in seconds")
	flag.IntVar(&cfg.ViewRadius, "view-radius", cfg.ViewRadius, "chunks around the player kept active")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "window width")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "window height")
	flag.StringVar(&cfg.ObserverAddr, "observe", cfg.ObserverAddr, "loopback address for the spectator websocket")
	flag.StringVar(&cfg.JournalDir, "journal", cfg.JournalDir, "directory for the gameplay journal")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
}
