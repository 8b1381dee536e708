package models

import (
	"fmt"
	"strings"
	"time"
)

// IntervalKind enumerates the kinds of timed intervals.
type IntervalKind int

const (
	WorkSprint IntervalKind = iota
	ShortBreak
	LongBreak
)

// IntervalKinds lists every kind in display order.
var IntervalKinds = []IntervalKind{WorkSprint, ShortBreak, LongBreak}

func (k IntervalKind) String() string {
	switch k {
	case WorkSprint:
		return "Work"
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	default:
		return fmt.Sprintf("IntervalKind(%d)", int(k))
	}
}

// Key returns the stable identifier used in config files and settings.
func (k IntervalKind) Key() string {
	switch k {
	case WorkSprint:
		return "work"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	default:
		return ""
	}
}

// ParseIntervalKind accepts a Key() value or a common short alias.
func ParseIntervalKind(s string) (IntervalKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work", "pomodoro", "w":
		return WorkSprint, nil
	case "short_break", "short", "s":
		return ShortBreak, nil
	case "long_break", "long", "l":
		return LongBreak, nil
	}
	return 0, fmt.Errorf("unknown interval kind %q", s)
}

// TimerStatus enumerates the lifecycle states of a single interval.
type TimerStatus int

const (
	StatusStopped TimerStatus = iota
	StatusRunning
	StatusPaused
)

func (s TimerStatus) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return fmt.Sprintf("TimerStatus(%d)", int(s))
	}
}

// Durations holds the total length of each interval kind.
type Durations struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns 25/5/15 minutes.
func DefaultDurations() Durations {
	return Durations{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// For returns the configured duration of kind.
func (d Durations) For(kind IntervalKind) time.Duration {
	switch kind {
	case ShortBreak:
		return d.ShortBreak
	case LongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

// Seconds returns the duration of kind in whole seconds, never less than one.
func (d Durations) Seconds(kind IntervalKind) int {
	secs := int(d.For(kind) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// With returns a copy with the duration of kind replaced.
func (d Durations) With(kind IntervalKind, value time.Duration) Durations {
	switch kind {
	case ShortBreak:
		d.ShortBreak = value
	case LongBreak:
		d.LongBreak = value
	default:
		d.Work = value
	}
	return d
}

// Validate rejects durations shorter than one second.
func (d Durations) Validate() error {
	for _, kind := range IntervalKinds {
		if d.For(kind) < time.Second {
			return fmt.Errorf("%s duration must be at least 1s, got %s", kind.Key(), d.For(kind))
		}
	}
	return nil
}

// Snapshot is a point-in-time view of an interval for rendering.
type Snapshot struct {
	Kind      IntervalKind
	Status    TimerStatus
	Elapsed   int
	Total     int
	Remaining int
	Progress  int
}
