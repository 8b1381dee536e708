// Package notify announces finished intervals to the user.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// Notifier delivers a single user-facing message.
//
//go:generate mockgen -source=notify.go -destination=mock_notifier_test.go -package=notify
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Message is the content of a notification.
type Message struct {
	Title string
	Body  string
}

// CompletionMessage describes the end of an interval of kind.
func CompletionMessage(kind models.IntervalKind) Message {
	switch kind {
	case models.WorkSprint:
		return Message{Title: config.NotifyTitle, Body: "Work sprint finished. Time for a break."}
	case models.ShortBreak, models.LongBreak:
		return Message{Title: config.NotifyTitle, Body: fmt.Sprintf("%s is over. Back to work.", kind)}
	default:
		return Message{Title: config.NotifyTitle, Body: "Interval finished."}
	}
}

// Dispatcher turns interval completion into notifications. Fire returns at
// once; delivery happens on its own goroutine and failures are logged, not
// retried. Wait lets a process that is about to exit drain pending deliveries.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	message  func() Message
	pending  sync.WaitGroup
}

func NewDispatcher(n Notifier, timeout time.Duration, message func() Message) *Dispatcher {
	if timeout <= 0 {
		timeout = config.NotifyTimeout
	}
	return &Dispatcher{notifier: n, timeout: timeout, message: message}
}

// Fire announces one completion. It has the shape of a completion callback.
func (d *Dispatcher) Fire() {
	msg := d.message()
	slog.Info("interval complete", "body", msg.Body)
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		util.LogError("notify", d.notifier.Notify(ctx, msg.Title, msg.Body))
	}()
}

// Wait blocks until every fired notification has been delivered or timeout
// passes. It reports whether all deliveries finished.
func (d *Dispatcher) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		d.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		slog.Warn("notification still pending at exit", "timeout", timeout.String())
		return false
	}
}

// Callback builds a zero-argument completion callback whose deliveries
// nothing waits for.
func Callback(n Notifier, timeout time.Duration, message func() Message) func() {
	return NewDispatcher(n, timeout, message).Fire
}

// Bell rings the terminal bell.
type Bell struct {
	mu  sync.Mutex
	Out io.Writer
}

func NewBell(out io.Writer) *Bell {
	return &Bell{Out: out}
}

func (b *Bell) Notify(ctx context.Context, title, body string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.Out, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Multi delivers to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, title, body string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, title, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(context.Context, string, string) error { return nil }
