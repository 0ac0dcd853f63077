package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OCharnyshevich/overworld/internal/game/config"
	"github.com/OCharnyshevich/overworld/internal/game/journal"
	"github.com/OCharnyshevich/overworld/internal/game/observer"
	"github.com/OCharnyshevich/overworld/internal/game/session"
	"github.com/OCharnyshevich/overworld/internal/game/world"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// Game wires the world, the session and the optional journal and observer.
// Tick must be called from one goroutine.
type Game struct {
	cfg      *config.Config
	log      *slog.Logger
	world    *world.World
	state    *session.State
	journal  *journal.Writer
	observer *observer.Server
}

// NewWorld builds the world described by cfg.
func NewWorld(cfg *config.Config, log *slog.Logger) *world.World {
	classifier := gen.NewClassifier(
		gen.NewField(cfg.NoiseBackend, cfg.TerrainSeed),
		gen.NewField(cfg.NoiseBackend, cfg.BiomeSeed),
	)
	dims := world.Dimensions{WorldSize: cfg.WorldSize, ChunkSize: cfg.ChunkSize, TileSize: cfg.TileSize}
	return world.NewWorld(classifier, dims, log.With("component", "world"))
}

// New creates a Game with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) *Game {
	w := NewWorld(cfg, log)
	opts := session.Options{MaxDT: cfg.MaxFrameDT, ViewRadius: cfg.ViewRadius, Seed: cfg.TerrainSeed}
	g := &Game{
		cfg:   cfg,
		log:   log,
		world: w,
		state: session.New(w, opts, log.With("component", "session")),
	}
	if cfg.JournalDir != "" {
		g.journal = journal.NewWriter(cfg.JournalDir, "events")
	}
	if cfg.ObserverAddr != "" {
		g.observer = observer.NewServer(log.With("component", "observer"))
	}

	log.Info("game created",
		"terrainSeed", cfg.TerrainSeed,
		"biomeSeed", cfg.BiomeSeed,
		"worldSize", cfg.WorldSize,
		"noise", cfg.NoiseBackend,
		"spawn", g.state.Player.Pos,
	)
	return g
}

// State returns the live session.
func (g *Game) State() *session.State { return g.state }

// World returns the world.
func (g *Game) World() *world.World { return g.world }

// Config returns the config the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Start launches the observer server, if configured, until ctx is cancelled.
func (g *Game) Start(ctx context.Context) {
	if g.observer == nil {
		return
	}
	go func() {
		if err := g.observer.ListenAndServe(ctx, g.cfg.ObserverAddr); err != nil {
			g.log.Error("observer stopped", "error", err)
		}
	}()
}

// Tick steps the session once and forwards its events and snapshot.
func (g *Game) Tick(dt float64, in session.Input) {
	g.state.Step(dt, in)

	events := g.state.DrainEvents()
	if g.journal != nil {
		for _, ev := range events {
			if err := g.journal.Write(ev); err != nil {
				g.log.Error("journal write failed, disabling journal", "error", err)
				_ = g.journal.Close()
				g.journal = nil
				break
			}
		}
	}
	if g.observer != nil {
		if err := g.observer.Publish(g.state.Snapshot()); err != nil {
			g.log.Error("publish frame", "error", err)
		}
	}
}

// RunHeadless drives the game with a bot for ticks steps of 1/60 s, or until
// ctx is cancelled or the player dies. With realtime set, steps are paced to
// the wall clock so spectators can follow.
func (g *Game) RunHeadless(ctx context.Context, ticks int, realtime bool) error {
	const dt = 1.0 / 60
	bot := NewBot(g.cfg.TerrainSeed)

	var pace <-chan time.Time
	if realtime {
		t := time.NewTicker(time.Second / 60)
		defer t.Stop()
		pace = t.C
	}

	for i := 0; i < ticks; i++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		g.Tick(dt, bot.Next(g.state, dt))
		if g.state.GameOver {
			break
		}
	}

	s := g.state
	g.log.Info("headless run finished",
		"ticks", s.Tick,
		"day", s.Day(),
		"level", s.Player.Level,
		"kills", s.Kills,
		"chests", s.Chests,
		"biomes", len(s.Discovered),
		"cachedTiles", g.world.CachedTiles(),
		"cachedChunks", g.world.CachedChunks(),
		"gameOver", s.GameOver,
	)
	return nil
}

// Close flushes the journal.
func (g *Game) Close() error {
	if g.journal == nil {
		return nil
	}
	if err := g.journal.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return nil
}
