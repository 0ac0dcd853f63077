package session

import (
	"github.com/google/uuid"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/quest"
	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// Frame is an immutable view of one step, safe to hand to other goroutines.
type Frame struct {
	Tick      uint64       `json:"tick"`
	Day       int          `json:"day"`
	TimeOfDay float64      `json:"time_of_day"`
	Player    PlayerView   `json:"player"`
	Entities  []EntityView `json:"entities"`
	Quests    []QuestView  `json:"quests,omitempty"`
	Biomes    []gen.Biome  `json:"biomes"`
	Kills     int          `json:"kills"`
	Chests    int          `json:"chests"`
	Dialog    *DialogView  `json:"dialog,omitempty"`
	GameOver  bool         `json:"game_over,omitempty"`
}

// PlayerView is the player part of a Frame.
type PlayerView struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	XPNeeded  int       `json:"xp_needed"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"max_health"`
	Attack    int       `json:"attack"`
	Defense   int       `json:"defense"`
	Gold      int       `json:"gold"`
	Biome     gen.Biome `json:"biome"`
}

// EntityView is one visible entity in a Frame.
type EntityView struct {
	ID     uuid.UUID   `json:"id"`
	Kind   entity.Kind `json:"kind"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Name   string      `json:"name,omitempty"`
	Health int         `json:"health,omitempty"`
	State  string      `json:"state,omitempty"`
	Opened bool        `json:"opened,omitempty"`
}

// QuestView is one known quest in a Frame.
type QuestView struct {
	ID       quest.ID     `json:"id"`
	Status   quest.Status `json:"status"`
	Progress int          `json:"progress"`
	Goal     int          `json:"goal"`
}

// DialogView is the open dialog in a Frame.
type DialogView struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
}

// Snapshot copies the observable state of the current step.
func (s *State) Snapshot() Frame {
	p := s.Player
	f := Frame{
		Tick:      s.Tick,
		Day:       s.Day(),
		TimeOfDay: s.TimeOfDay(),
		Player: PlayerView{
			X: p.Pos.X(), Y: p.Pos.Y(),
			Level: p.Level, XP: p.XP, XPNeeded: p.XPNeeded,
			Health: p.Health, MaxHealth: p.MaxHealth,
			Attack: p.TotalAttack(), Defense: p.TotalDefense(),
			Gold:  p.Gold,
			Biome: s.World.GetBiome(s.World.TileAt(p.Pos)),
		},
		Entities: make([]EntityView, 0, len(s.Visible)),
		Biomes:   append([]gen.Biome(nil), s.Discovered...),
		Kills:    s.Kills,
		Chests:   s.Chests,
		GameOver: s.GameOver,
	}
	for _, e := range s.Visible {
		v := EntityView{ID: e.ID, Kind: e.Kind, X: e.Pos.X(), Y: e.Pos.Y()}
		switch e.Kind {
		case entity.KindEnemy:
			v.Name = e.Enemy.Type.String()
			v.Health = e.Enemy.Health
			v.State = e.Enemy.State.String()
		case entity.KindNPC:
			v.Name = e.NPC.Name
		case entity.KindChest:
			v.Opened = e.Chest.Opened
		}
		f.Entities = append(f.Entities, v)
	}
	for _, q := range s.Quests.All() {
		f.Quests = append(f.Quests, QuestView{ID: q.ID, Status: q.Status, Progress: q.Progress, Goal: q.Goal})
	}
	if s.Dialog != nil {
		f.Dialog = &DialogView{Speaker: s.Dialog.Speaker, Line: s.Dialog.Line()}
	}
	return f
}
