package session

// EventType names a gameplay event.
type EventType string

const (
	EventKill     EventType = "kill"
	EventLevelUp  EventType = "level_up"
	EventChest    EventType = "chest"
	EventQuest    EventType = "quest"
	EventPortal   EventType = "portal"
	EventBiome    EventType = "biome"
	EventItem     EventType = "item"
	EventGameOver EventType = "game_over"
)

// Event is one gameplay fact produced during a step. Events are buffered on
// the State until drained by the loop.
type Event struct {
	Tick    uint64    `json:"tick"`
	Type    EventType `json:"type"`
	Subject string    `json:"subject,omitempty"`
	Value   int       `json:"value,omitempty"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
}

// maxMessages bounds the on-screen message log.
const maxMessages = 5

func (s *State) emit(typ EventType, subject string, value int) {
	s.events = append(s.events, Event{
		Tick:    s.Tick,
		Type:    typ,
		Subject: subject,
		Value:   value,
		X:       s.Player.Pos.X(),
		Y:       s.Player.Pos.Y(),
	})
}

// DrainEvents returns the events buffered since the last call.
func (s *State) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *State) message(msg string) {
	s.Messages = append(s.Messages, msg)
	if n := len(s.Messages); n > maxMessages {
		s.Messages = s.Messages[n-maxMessages:]
	}
}
