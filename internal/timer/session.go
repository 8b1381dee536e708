package timer

import (
	"sync"

	"github.com/akyairhashvil/pomo/internal/models"
)

// Session owns the active clock and forwards commands and queries to it.
// Starting a new interval replaces the active clock; the previous one is
// released and its events are no longer delivered.
type Session struct {
	durations  models.Durations
	options    Options
	onComplete func()

	mu     sync.RWMutex
	active *Clock

	obsMu     sync.Mutex
	observers []chan Event
	closed    bool
}

// NewSession creates a session whose initial clock is an unstarted work
// sprint. onComplete is invoked once per interval that runs to its end.
func NewSession(durations models.Durations, options Options, onComplete func()) *Session {
	s := &Session{
		durations:  durations,
		options:    options.withDefaults(),
		onComplete: onComplete,
	}
	s.active = s.newClock(models.WorkSprint)
	return s
}

// StartWork starts a fresh work sprint.
func (s *Session) StartWork() { s.start(models.WorkSprint) }

// StartShortBreak starts a fresh short break.
func (s *Session) StartShortBreak() { s.start(models.ShortBreak) }

// StartLongBreak starts a fresh long break.
func (s *Session) StartLongBreak() { s.start(models.LongBreak) }

// Start starts a fresh interval of kind.
func (s *Session) Start(kind models.IntervalKind) { s.start(kind) }

func (s *Session) start(kind models.IntervalKind) {
	clock := s.newClock(kind)

	s.mu.Lock()
	previous := s.active
	s.active = clock
	s.mu.Unlock()

	if previous != nil {
		previous.release()
	}
	clock.Start()
}

func (s *Session) newClock(kind models.IntervalKind) *Clock {
	clock := NewClock(kind, s.durations.Seconds(kind), s.options, s.onComplete)
	clock.emit = func(event Event) { s.forward(clock, event) }
	return clock
}

// PauseToggle forwards to the active clock.
func (s *Session) PauseToggle() { s.current().PauseToggle() }

// Stop forwards to the active clock.
func (s *Session) Stop() { s.current().Stop() }

// LoadProgress returns the active clock's percentage. It may trigger the
// completion callback.
func (s *Session) LoadProgress() int { return s.current().Progress() }

// LoadRemainingTime returns the active clock's remaining seconds.
func (s *Session) LoadRemainingTime() int { return s.current().Remaining() }

// Kind returns the active interval kind.
func (s *Session) Kind() models.IntervalKind { return s.current().Kind() }

// Status returns the active clock status.
func (s *Session) Status() models.TimerStatus { return s.current().Status() }

// Snapshot returns the active clock's state without side effects.
func (s *Session) Snapshot() models.Snapshot { return s.current().Snapshot() }

// Durations returns the configured interval lengths.
func (s *Session) Durations() models.Durations { return s.durations }

// The lock is released before the clock is used so a completion callback can
// query the session again.
func (s *Session) current() *Clock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Subscribe registers a new observer channel.
func (s *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.observers = append(s.observers, ch)
	return ch
}

// Close stops the active clock and closes observers.
func (s *Session) Close() {
	s.current().Stop()

	s.obsMu.Lock()
	if s.closed {
		s.obsMu.Unlock()
		return
	}
	s.closed = true
	observers := s.observers
	s.observers = nil
	s.obsMu.Unlock()

	for _, ch := range observers {
		close(ch)
	}
}

func (s *Session) forward(source *Clock, event Event) {
	if s.current() != source {
		return
	}
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for _, ch := range s.observers {
		select {
		case ch <- event:
		default:
		}
	}
}
