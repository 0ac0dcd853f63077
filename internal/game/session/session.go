package session

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/player"
	"github.com/OCharnyshevich/overworld/internal/game/quest"
	"github.com/OCharnyshevich/overworld/internal/game/world"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// DayLength is the length of one in-game day in seconds.
const DayLength = 120.0

// Options tunes a session.
type Options struct {
	MaxDT      float64 // upper bound on a single step, in seconds
	ViewRadius int     // chunks around the player kept in the visible set
	Seed       int64   // seeds enemy wander directions
}

// DefaultOptions returns the reference tuning: 0.1 s steps over a 3×3 chunk
// neighborhood.
func DefaultOptions() Options {
	return Options{MaxDT: 0.1, ViewRadius: 1, Seed: 1}
}

// Input is the player's intent for one step.
type Input struct {
	Move     mgl64.Vec2 // direction; any length, zero to stand still
	Attack   bool
	Interact bool
	UseSlot  int // backpack slot to use, or NoSlot
}

// NoSlot means no inventory slot is used this step.
const NoSlot = -1

// Idle is the input that does nothing.
var Idle = Input{UseSlot: NoSlot}

// State is the whole mutable game. It is owned by the loop that steps it and
// is not safe for concurrent use.
type State struct {
	World  *world.World
	Player *player.Player
	Quests *quest.Log

	Discovered []gen.Biome
	Clock      float64
	Tick       uint64
	Kills      int
	Chests     int

	Visible  []*entity.Entity
	Dialog   *DialogSession
	Messages []string
	GameOver bool

	opts           Options
	log            *slog.Logger
	rng            *gen.Random
	attackCooldown float64
	events         []Event
}

// New starts a session on w with the player at the world's spawn point.
func New(w *world.World, opts Options, log *slog.Logger) *State {
	s := &State{
		World:  w,
		Player: player.NewPlayer(w.SpawnPoint()),
		Quests: quest.NewLog(),
		opts:   opts,
		log:    log,
		rng:    gen.NewRandom(opts.Seed),
	}
	s.discover()
	s.refreshVisible()
	s.message("Explore the world. Talk to people with E, fight with Space.")
	return s
}

// Day returns the current day, starting at 1.
func (s *State) Day() int {
	return int(s.Clock/DayLength) + 1
}

// TimeOfDay returns the fraction of the current day elapsed, in [0, 1).
func (s *State) TimeOfDay() float64 {
	return math.Mod(s.Clock, DayLength) / DayLength
}

// Daylight returns 1 at noon and 0 at midnight. A day starts at dawn.
func (s *State) Daylight() float64 {
	return 0.5 + 0.5*math.Sin(2*math.Pi*s.TimeOfDay())
}

// Step advances the game by dt seconds, clamped to the configured maximum.
// The order is fixed: player input, enemies, then bookkeeping.
func (s *State) Step(dt float64, in Input) {
	if s.GameOver {
		return
	}
	dt = math.Max(0, math.Min(dt, s.opts.MaxDT))
	s.Tick++
	s.Clock += dt
	s.attackCooldown = math.Max(0, s.attackCooldown-dt)

	s.refreshVisible()
	if s.Dialog != nil {
		if in.Interact {
			s.advanceDialog()
		}
	} else {
		s.applyInput(dt, in)
		s.refreshVisible()
	}

	s.stepEnemies(dt)
	s.updateQuests()

	if s.Player.Dead() {
		s.GameOver = true
		s.emit(EventGameOver, "", s.Player.Level)
		s.message("You have fallen.")
		s.log.Info("player died", "level", s.Player.Level, "kills", s.Kills, "day", s.Day())
	}

	// Rebuild after combat so dead enemies drop out this frame.
	s.refreshVisible()
}

// refreshVisible rebuilds the visible set around the player's chunk.
func (s *State) refreshVisible() {
	s.Visible = s.World.VisibleEntities(s.Player.Pos, s.opts.ViewRadius)
}

func (s *State) applyInput(dt float64, in Input) {
	if in.UseSlot != NoSlot {
		s.useSlot(in.UseSlot)
	}
	if in.Move.Len() > 0 {
		s.Player.Move(in.Move.Normalize().Mul(s.Player.Speed*dt), s.World.Walkable)
		s.discover()
		s.checkPortal()
	}
	if in.Attack {
		s.playerAttack()
	}
	if in.Interact {
		s.interact()
	}
}

// discover records the biome under the player the first time it is seen.
func (s *State) discover() {
	b := s.World.GetBiome(s.World.TileAt(s.Player.Pos))
	for _, d := range s.Discovered {
		if d == b {
			return
		}
	}
	s.Discovered = append(s.Discovered, b)
	s.emit(EventBiome, b.String(), len(s.Discovered))
	s.message(fmt.Sprintf("Discovered %s.", b))
}

func (s *State) checkPortal() {
	tx, ty := s.World.TileAt(s.Player.Pos)
	if !s.World.GetTile(tx, ty).Portal {
		return
	}
	target := s.World.PortalTarget(tx, ty)
	s.Player.Teleport(target)
	s.emit(EventPortal, fmt.Sprintf("%d,%d", tx, ty), 0)
	s.message("The portal pulls you somewhere else.")
	s.log.Debug("portal used", "from_x", tx, "from_y", ty, "to", target)
	s.discover()
}

func (s *State) useSlot(index int) {
	res, ok := s.Player.Use(index)
	if !ok {
		return
	}
	name := res.Item
	switch {
	case res.Equipped:
		s.message(fmt.Sprintf("Equipped %s.", name))
	case res.Healed > 0:
		s.message(fmt.Sprintf("Recovered %d health.", res.Healed))
	case res.Gold > 0:
		s.message(fmt.Sprintf("Found %d gold.", res.Gold))
	case res.XP > 0:
		s.message(fmt.Sprintf("Gained %d experience.", res.XP))
	}
	s.emit(EventItem, string(name), 0)
	s.levelUps(res.LevelUps)
}

func (s *State) levelUps(n int) {
	for i := 0; i < n; i++ {
		s.emit(EventLevelUp, "", s.Player.Level-n+i+1)
	}
	if n > 0 {
		s.message(fmt.Sprintf("Level up! You are now level %d.", s.Player.Level))
		s.log.Info("level up", "level", s.Player.Level, "max_health", s.Player.MaxHealth)
	}
}

func (s *State) counters() quest.Counters {
	return quest.Counters{Biomes: len(s.Discovered), Kills: s.Kills, Chests: s.Chests}
}

func (s *State) updateQuests() {
	for _, q := range s.Quests.Update(s.counters()) {
		s.Player.Gold += q.RewardGold
		s.emit(EventQuest, string(q.ID), q.RewardXP)
		s.message(fmt.Sprintf("Quest complete: %s (+%d xp, +%d gold)", q.Title, q.RewardXP, q.RewardGold))
		s.log.Info("quest completed", "quest", q.ID)
		s.levelUps(s.Player.GainXP(q.RewardXP))
	}
}
