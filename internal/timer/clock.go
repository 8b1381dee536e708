// Package timer implements the interval clock and the session that owns the
// currently active clock.
package timer

import (
	"math"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Options contains runtime options for clocks.
type Options struct {
	// TickInterval is the wall-clock length of one counted second.
	TickInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = config.TickInterval
	}
	return o
}

// Clock times a single interval. Elapsed and status are guarded by mu; every
// access holds it for that access only and never across a wait.
type Clock struct {
	kind       models.IntervalKind
	total      int
	options    Options
	onComplete func()
	emit       func(Event)

	mu         sync.Mutex
	elapsed    int
	status     models.TimerStatus
	generation uint64
	halted     bool
}

// NewClock creates a stopped clock of kind lasting total seconds.
// onComplete may be nil.
func NewClock(kind models.IntervalKind, total int, options Options, onComplete func()) *Clock {
	if total < 1 {
		total = 1
	}
	return &Clock{
		kind:       kind,
		total:      total,
		options:    options.withDefaults(),
		onComplete: onComplete,
	}
}

// Start sets the clock running and launches a tick loop that continues from
// the current elapsed value. A clock that has been stopped never restarts.
func (c *Clock) Start() {
	c.mu.Lock()
	gen, base, ok := c.armLocked()
	eventType := EventStarted
	if base > 0 {
		eventType = EventResumed
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	if !ok {
		return
	}
	c.publish(eventType, snap, gen)
	go c.run(gen, base)
}

// armLocked moves the clock to running and claims a new tick generation, so
// any loop left over from an earlier run exits on its next tick.
func (c *Clock) armLocked() (uint64, int, bool) {
	if c.halted {
		return 0, 0, false
	}
	c.status = models.StatusRunning
	c.generation++
	return c.generation, c.elapsed, true
}

// PauseToggle pauses a running clock and resumes a paused one. It does
// nothing on a stopped clock.
func (c *Clock) PauseToggle() {
	c.mu.Lock()
	switch c.status {
	case models.StatusRunning:
		c.status = models.StatusPaused
		c.generation++
		gen := c.generation
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.publish(EventPaused, snap, gen)
	case models.StatusPaused:
		c.mu.Unlock()
		c.Start()
	default:
		c.mu.Unlock()
	}
}

// Stop halts the clock for good. The tick loop notices within one tick and
// exits without touching elapsed.
func (c *Clock) Stop() {
	c.mu.Lock()
	wasHalted := c.halted
	c.status = models.StatusStopped
	c.halted = true
	c.generation++
	gen := c.generation
	snap := c.snapshotLocked()
	c.mu.Unlock()
	if !wasHalted {
		c.publish(EventStopped, snap, gen)
	}
}

// release detaches a superseded clock from its tick loop without changing
// its observable status.
func (c *Clock) release() {
	c.mu.Lock()
	c.generation++
	c.mu.Unlock()
}

// Progress returns the completed percentage in [0,100]. The first call that
// sees a running clock at its total stops it and invokes the completion
// callback; the check and the transition share one critical section so the
// callback runs exactly once.
func (c *Clock) Progress() int {
	c.mu.Lock()
	pct := percent(c.elapsed, c.total)
	completed := false
	if c.elapsed >= c.total && c.status == models.StatusRunning {
		c.status = models.StatusStopped
		c.halted = true
		c.generation++
		completed = true
	}
	gen := c.generation
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if completed {
		c.publish(EventCompleted, snap, gen)
		if c.onComplete != nil {
			c.onComplete()
		}
	}
	return pct
}

// Remaining returns the seconds left, never negative.
func (c *Clock) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return remaining(c.elapsed, c.total)
}

// Elapsed returns the whole seconds counted so far.
func (c *Clock) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Status returns the current status.
func (c *Clock) Status() models.TimerStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Kind returns the interval kind.
func (c *Clock) Kind() models.IntervalKind { return c.kind }

// Total returns the interval length in seconds.
func (c *Clock) Total() int { return c.total }

// Snapshot returns a consistent view of the clock without side effects.
func (c *Clock) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Clock) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		Kind:      c.kind,
		Status:    c.status,
		Elapsed:   c.elapsed,
		Total:     c.total,
		Remaining: remaining(c.elapsed, c.total),
		Progress:  percent(c.elapsed, c.total),
	}
}

// run emits at most total-base ticks. Each tick sets elapsed to the tick's
// position measured from the loop start, so slow or dropped ticks do not
// accumulate drift.
func (c *Clock) run(gen uint64, base int) {
	startedAt := time.Now()
	ticker := time.NewTicker(c.options.TickInterval)
	defer ticker.Stop()

	for n := 1; n <= c.total-base; n++ {
		tickTime := <-ticker.C
		index := tickIndex(base, n, tickTime.Sub(startedAt), c.options.TickInterval)
		snap, more, ok := c.advance(gen, index)
		if !ok {
			return
		}
		c.publish(EventTick, snap, gen)
		if !more {
			return
		}
	}
}

func (c *Clock) advance(gen uint64, index int) (models.Snapshot, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen || c.status != models.StatusRunning {
		return models.Snapshot{}, false, false
	}
	if index > c.total {
		index = c.total
	}
	if index > c.elapsed {
		c.elapsed = index
	}
	return c.snapshotLocked(), c.elapsed < c.total, true
}

// tickIndex is the elapsed value for the n-th tick of a loop that started at
// base. It follows wall-clock time since the loop started, so a late tick
// catches up, and never falls below base+n.
func tickIndex(base, n int, since, interval time.Duration) int {
	index := base + int(since/interval)
	if index < base+n {
		index = base + n
	}
	return index
}

// publish runs outside mu, so observers may receive events out of order.
// gen is the generation the event was produced under.
func (c *Clock) publish(eventType EventType, snap models.Snapshot, gen uint64) {
	if c.emit == nil {
		return
	}
	c.emit(Event{Type: eventType, Snapshot: snap, Generation: gen, At: time.Now()})
}

func remaining(elapsed, total int) int {
	if left := total - elapsed; left > 0 {
		return left
	}
	return 0
}

// percent rounds to the nearest whole percent but reports 100 only once
// elapsed has reached total.
func percent(elapsed, total int) int {
	if total <= 0 || elapsed >= total {
		return 100
	}
	pct := int(math.Round(float64(elapsed) / float64(total) * 100))
	if pct >= 100 {
		return 99
	}
	if pct < 0 {
		return 0
	}
	return pct
}
