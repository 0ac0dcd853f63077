package quest

import "fmt"

// ID names a quest.
type ID string

const (
	DiscoverBiomes ID = "discover_biomes"
	SlayMonsters   ID = "slay_monsters"
	TreasureHunter ID = "treasure_hunter"
)

// Status is a quest's position in its lifecycle. Quests only move forward.
type Status uint8

const (
	Unknown Status = iota
	Offered
	Active
	Complete
)

func (s Status) String() string {
	switch s {
	case Offered:
		return "offered"
	case Active:
		return "active"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for _, st := range [...]Status{Unknown, Offered, Active, Complete} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown quest status %q", text)
}

// Def is a fixed quest definition.
type Def struct {
	ID          ID
	Title       string
	Description string
	Goal        int
	RewardXP    int
	RewardGold  int
}

var table = [...]Def{
	{ID: DiscoverBiomes, Title: "Wanderer", Description: "Discover 5 different biomes", Goal: 5, RewardXP: 100, RewardGold: 50},
	{ID: SlayMonsters, Title: "Monster Slayer", Description: "Defeat 10 monsters", Goal: 10, RewardXP: 150, RewardGold: 100},
	{ID: TreasureHunter, Title: "Treasure Hunter", Description: "Open 3 chests", Goal: 3, RewardXP: 120, RewardGold: 75},
}

// Lookup returns the definition of id. Quest ids come from fixed tables, so
// a miss is a programming error.
func Lookup(id ID) Def {
	for _, d := range table {
		if d.ID == id {
			return d
		}
	}
	panic(fmt.Sprintf("quest: unknown quest %q", id))
}

// Counters are the running totals quest goals are measured against.
type Counters struct {
	Biomes int
	Kills  int
	Chests int
}

func (c Counters) progress(id ID) int {
	switch id {
	case DiscoverBiomes:
		return c.Biomes
	case SlayMonsters:
		return c.Kills
	case TreasureHunter:
		return c.Chests
	default:
		return 0
	}
}

// Quest is the player's record of one quest.
type Quest struct {
	Def
	Status   Status
	Progress int
}

// Log tracks every quest the player has been offered.
type Log struct {
	quests [len(table)]Quest
}

// NewLog creates a log with every quest unknown.
func NewLog() *Log {
	l := &Log{}
	for i, d := range table {
		l.quests[i] = Quest{Def: d}
	}
	return l
}

func (l *Log) find(id ID) *Quest {
	for i := range l.quests {
		if l.quests[i].ID == id {
			return &l.quests[i]
		}
	}
	panic(fmt.Sprintf("quest: unknown quest %q", id))
}

// Get returns a copy of the quest record for id.
func (l *Log) Get(id ID) Quest {
	return *l.find(id)
}

// Offer marks an unknown quest offered and reports whether it changed.
func (l *Log) Offer(id ID) bool {
	q := l.find(id)
	if q.Status != Unknown {
		return false
	}
	q.Status = Offered
	return true
}

// Accept activates an offered quest and reports whether it changed.
func (l *Log) Accept(id ID) bool {
	q := l.find(id)
	if q.Status != Offered {
		return false
	}
	q.Status = Active
	return true
}

// Update refreshes the progress of active quests and returns the quests that
// completed on this call. A quest completes at most once.
func (l *Log) Update(c Counters) []Quest {
	var done []Quest
	for i := range l.quests {
		q := &l.quests[i]
		if q.Status != Active {
			continue
		}
		q.Progress = min(c.progress(q.ID), q.Goal)
		if q.Progress >= q.Goal {
			q.Status = Complete
			done = append(done, *q)
		}
	}
	return done
}

// All returns copies of every quest the player knows about, in table order.
func (l *Log) All() []Quest {
	var out []Quest
	for _, q := range l.quests {
		if q.Status != Unknown {
			out = append(out, q)
		}
	}
	return out
}
