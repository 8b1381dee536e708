package timer

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventPaused    EventType = "paused"
	EventResumed   EventType = "resumed"
	EventTick      EventType = "tick"
	EventStopped   EventType = "stopped"
	EventCompleted EventType = "completed"
)

// Event represents a timer update for observers.
//
// Events are delivered after the clock's lock is released, so a tick taken
// just before a pause can arrive after the paused event. Every state change
// bumps Generation; an event whose Generation is lower than one already
// seen from the same clock is stale.
type Event struct {
	Type       EventType
	Snapshot   models.Snapshot
	Generation uint64
	At         time.Time
}
