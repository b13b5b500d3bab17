package sim

import "github.com/vovakirdan/dodge-arcade/internal/core"

// EventType identifies a side effect emitted by the simulation for
// render, sound or persistence adapters.
type EventType int

const (
	EventCollect          EventType = iota // Normal bubble collected
	EventPowerupCollected                  // Powerup bubble collected
	EventPowerupExpired                    // Powerup timer ran out
	EventCarPassed                         // Car left the road without a collision
	EventGameOver                          // World transitioned to over
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventCollect:
		return "collect"
	case EventPowerupCollected:
		return "powerup-collected"
	case EventPowerupExpired:
		return "powerup-expired"
	case EventCarPassed:
		return "car-passed"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event describes one side effect. Fields not relevant to the type are zero.
type Event struct {
	Type    EventType
	Kind    Kind       // Entity kind involved
	Powerup Powerup    // For powerup events
	Points  int        // Score awarded by this event
	X, Y    float64    // Center of the entity involved, world pixels
	Color   core.Color // Display hint copied from the entity
	Score   int        // Score after the event
}

// emit stamps the current score on e and queues it for the next DrainEvents call.
func (w *World) emit(e Event) {
	e.Score = w.score
	w.events = append(w.events, e)
}

// DrainEvents returns the events queued since the last call and clears the queue.
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	events := w.events
	w.events = nil
	return events
}
