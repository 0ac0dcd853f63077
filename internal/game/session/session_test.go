package session

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/item"
	"github.com/OCharnyshevich/overworld/internal/game/player"
	"github.com/OCharnyshevich/overworld/internal/game/quest"
	"github.com/OCharnyshevich/overworld/internal/game/world"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

type constField float64

func (f constField) Noise(x, y float64) float64 { return float64(f) }
func (f constField) Octave(x, y float64, octaves int, persistence float64) float64 {
	return float64(f)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSession(terrain, climate gen.Field) *State {
	w := world.NewWorld(gen.NewClassifier(terrain, climate), world.DefaultDimensions(), testLogger())
	return New(w, DefaultOptions(), testLogger())
}

func newSeededSession() *State {
	return newSession(gen.NewPerlin(12345), gen.NewPerlin(67890))
}

// findEnemy returns the first enemy in the chunks around the origin.
func findEnemy(t *testing.T, s *State) *entity.Entity {
	t.Helper()
	for cy := 0; cy < 16; cy++ {
		for cx := 0; cx < 16; cx++ {
			for _, e := range s.World.GetChunkEntities(cx, cy) {
				if e.Kind == entity.KindEnemy && e.Active {
					return e
				}
			}
		}
	}
	t.Fatal("no enemy found")
	return nil
}

func attack() Input { return Input{Attack: true, UseSlot: NoSlot} }

func TestNewSession(t *testing.T) {
	s := newSeededSession()
	if !s.World.Walkable(s.Player.Pos) {
		t.Errorf("spawn %v not walkable", s.Player.Pos)
	}
	if len(s.Discovered) != 1 {
		t.Errorf("discovered = %v, want the spawn biome", s.Discovered)
	}
	if s.Day() != 1 {
		t.Errorf("day = %d", s.Day())
	}
}

func TestStepClampsDT(t *testing.T) {
	s := newSeededSession()
	s.Step(5, Idle)
	if s.Clock != 0.1 {
		t.Errorf("clock = %v, want 0.1", s.Clock)
	}
	s.Step(-1, Idle)
	if s.Clock != 0.1 || s.Tick != 2 {
		t.Errorf("clock=%v tick=%d", s.Clock, s.Tick)
	}
}

func TestClock(t *testing.T) {
	s := newSeededSession()
	s.Clock = DayLength*2 + DayLength/4
	if s.Day() != 3 {
		t.Errorf("day = %d, want 3", s.Day())
	}
	if got := s.TimeOfDay(); got != 0.25 {
		t.Errorf("time of day = %v, want 0.25", got)
	}
	if got := s.Daylight(); got < 0.999 {
		t.Errorf("daylight at quarter day = %v, want noon", got)
	}
}

func TestKillRemovesEnemyFromVisible(t *testing.T) {
	s := newSession(constField(0.7), constField(0)) // mountains
	e := findEnemy(t, s)
	e.Enemy.Health = 30
	s.Player.Attack = 35
	s.Player.Teleport(s.Center(e))

	s.Step(0.016, attack())

	if e.Active {
		t.Fatal("enemy survived 35 damage with 30 health")
	}
	for _, v := range s.Visible {
		if v == e {
			t.Fatal("dead enemy still in the visible list")
		}
	}
	if s.Kills != 1 {
		t.Errorf("kills = %d, want 1", s.Kills)
	}
	if s.Player.XP != e.Enemy.XPReward && s.Player.Level == 1 {
		t.Errorf("xp = %d, want %d", s.Player.XP, e.Enemy.XPReward)
	}
	if s.Player.Gold != e.Enemy.GoldReward {
		t.Errorf("gold = %d, want %d", s.Player.Gold, e.Enemy.GoldReward)
	}

	var kill bool
	for _, ev := range s.DrainEvents() {
		if ev.Type == EventKill && ev.Subject == e.Enemy.Type.String() {
			kill = true
		}
	}
	if !kill {
		t.Error("no kill event")
	}
	if len(s.DrainEvents()) != 0 {
		t.Error("drain should empty the buffer")
	}
}

func TestKillTriggersLevelUp(t *testing.T) {
	s := newSession(constField(0.7), constField(0))
	e := findEnemy(t, s)
	s.Player.Attack = 1000
	s.Player.XP = 100 - e.Enemy.XPReward
	s.Player.Health = 10
	s.Player.Teleport(s.Center(e))

	s.Step(0.016, attack())

	if s.Player.Level != 2 || s.Player.XP != 0 {
		t.Fatalf("level=%d xp=%d, want 2 and 0", s.Player.Level, s.Player.XP)
	}
	if s.Player.MaxHealth != 110 {
		t.Errorf("max health = %d, want 110", s.Player.MaxHealth)
	}
}

func TestAttackCooldown(t *testing.T) {
	s := newSession(constField(0.7), constField(0))
	e := findEnemy(t, s)
	e.Enemy.Health = 1000
	s.Player.Teleport(s.Center(e))

	s.Step(0.016, attack())
	after := e.Enemy.Health
	if after != 1000-s.Player.TotalAttack() {
		t.Fatalf("health = %d after one hit", after)
	}
	s.Step(0.016, attack())
	if e.Enemy.Health != after {
		t.Error("second attack landed during cooldown")
	}
}

func TestEnemiesDamagePlayer(t *testing.T) {
	s := newSession(constField(0.7), constField(0))
	e := findEnemy(t, s)
	s.Player.Teleport(s.Center(e))

	s.Step(0.016, Idle)
	if s.Player.Health >= player.StartHealth {
		t.Errorf("adjacent enemy dealt no damage, health %d", s.Player.Health)
	}
}

func TestGameOver(t *testing.T) {
	s := newSeededSession()
	s.Player.Health = 0
	s.Step(0.016, Idle)
	if !s.GameOver {
		t.Fatal("dead player should end the game")
	}
	tick := s.Tick
	s.Step(0.016, Idle)
	if s.Tick != tick {
		t.Error("steps after game over should do nothing")
	}
}

func TestChestInteract(t *testing.T) {
	s := newSeededSession()
	chest := entity.NewChest(uuid.New(), []item.ID{item.HealthPotion, item.IronSword}, s.Player.Pos.Sub(s.halfTile()))
	s.Visible = []*entity.Entity{chest}

	s.interact()
	if !chest.Chest.Opened || s.Chests != 1 {
		t.Fatalf("opened=%v chests=%d", chest.Chest.Opened, s.Chests)
	}
	if s.Player.Inventory.Count(item.HealthPotion) != 1 || s.Player.Inventory.Count(item.IronSword) != 1 {
		t.Error("loot not added to the inventory")
	}

	s.interact()
	if s.Chests != 1 || s.Player.Inventory.Count(item.HealthPotion) != 1 {
		t.Error("opened chest gave loot twice")
	}
}

func TestChestOutOfReach(t *testing.T) {
	s := newSeededSession()
	chest := entity.NewChest(uuid.New(), []item.ID{item.GoldPouch}, s.Player.Pos.Add(mgl64.Vec2{200, 0}))
	s.Visible = []*entity.Entity{chest}
	s.interact()
	if chest.Chest.Opened {
		t.Error("chest opened from 200px away")
	}
}

func TestDialogOffersAndAcceptsQuest(t *testing.T) {
	s := newSeededSession()
	npc := entity.NewNPC(uuid.New(), entity.Elder, s.Player.Pos.Sub(s.halfTile()))
	s.Visible = []*entity.Entity{npc}

	s.interact()
	if s.Dialog == nil || s.Dialog.Speaker != "Elder" {
		t.Fatalf("dialog = %+v", s.Dialog)
	}
	if s.Quests.Get(quest.SlayMonsters).Status != quest.Offered {
		t.Fatalf("quest status = %v", s.Quests.Get(quest.SlayMonsters).Status)
	}
	first := s.Dialog.Line()

	interact := Input{Interact: true, UseSlot: NoSlot}
	s.Step(0.016, interact)
	if s.Dialog == nil || s.Dialog.Line() == first {
		t.Fatal("dialog did not advance")
	}
	s.Step(0.016, interact)
	if s.Dialog != nil {
		t.Fatal("dialog should close after the last line")
	}
	if s.Quests.Get(quest.SlayMonsters).Status != quest.Active {
		t.Errorf("quest status = %v, want active", s.Quests.Get(quest.SlayMonsters).Status)
	}
}

func TestDialogFreezesMovement(t *testing.T) {
	s := newSeededSession()
	s.Dialog = &DialogSession{Lines: []string{"hello"}}
	start := s.Player.Pos
	s.Step(0.1, Input{Move: mgl64.Vec2{1, 0}, UseSlot: NoSlot})
	if s.Player.Pos != start {
		t.Error("player moved during dialog")
	}
}

func TestQuestCompletionRewardsOnce(t *testing.T) {
	s := newSeededSession()
	s.Quests.Offer(quest.DiscoverBiomes)
	s.Quests.Accept(quest.DiscoverBiomes)
	s.Discovered = []gen.Biome{gen.Plains, gen.Forest, gen.Desert, gen.Snow, gen.Swamp}

	s.Step(0.016, Idle)
	if s.Quests.Get(quest.DiscoverBiomes).Status != quest.Complete {
		t.Fatal("quest not complete")
	}
	gold := s.Player.Gold
	if gold < 50 {
		t.Errorf("gold = %d, want the 50 reward", gold)
	}
	s.Step(0.016, Idle)
	if s.Player.Gold != gold {
		t.Error("reward granted twice")
	}
}

func TestPortalTeleports(t *testing.T) {
	s := newSeededSession()
	ws := s.World.Dimensions().WorldSize
	for y := 0; y < ws; y++ {
		for x := 0; x < ws; x++ {
			if !s.World.GetTile(x, y).Portal {
				continue
			}
			s.Player.Teleport(s.World.TilePos(x, y).Add(s.halfTile()))
			s.checkPortal()
			if want := s.World.PortalTarget(x, y); s.Player.Pos != want {
				t.Fatalf("pos = %v, want %v", s.Player.Pos, want)
			}
			return
		}
	}
	t.Skip("no portal tile in this world")
}

func TestUseSlotThroughStep(t *testing.T) {
	s := newSeededSession()
	s.Player.Inventory.AddItem(item.HealthPotion, 1)
	s.Step(0.016, Input{UseSlot: 0})
	if n := s.Player.Inventory.Count(item.HealthPotion); n != 0 {
		t.Errorf("potions left = %d, want 0", n)
	}
}

func TestMessageLogBounded(t *testing.T) {
	s := newSeededSession()
	for i := 0; i < 12; i++ {
		s.message("m")
	}
	if len(s.Messages) != maxMessages {
		t.Errorf("messages = %d, want %d", len(s.Messages), maxMessages)
	}
}

func TestSnapshotEncodesVisible(t *testing.T) {
	s := newSession(constField(0.7), constField(0))
	e := findEnemy(t, s)
	s.Player.Teleport(s.Center(e))
	s.Step(0.016, Idle)

	f := s.Snapshot()
	if len(f.Entities) != len(s.Visible) {
		t.Fatalf("snapshot has %d entities, visible %d", len(f.Entities), len(s.Visible))
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal frame: %v", err)
	}
	for _, want := range []string{`"kind":"enemy"`, `"biome":"mountain"`, e.ID.String()} {
		if !strings.Contains(string(data), want) {
			t.Errorf("frame JSON missing %s", want)
		}
	}
}

func TestWanderingBotIsDeterministic(t *testing.T) {
	run := func() mgl64.Vec2 {
		s := newSeededSession()
		for i := 0; i < 300; i++ {
			dir := mgl64.Vec2{1, 0}
			if i%100 >= 50 {
				dir = mgl64.Vec2{0, 1}
			}
			s.Step(1.0/60, Input{Move: dir, UseSlot: NoSlot})
		}
		return s.Player.Pos
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same inputs ended at %v and %v", a, b)
	}
}
