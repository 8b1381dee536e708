package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/godbus/dbus/v5"
	"github.com/golang/mock/gomock"
)

func TestCallbackDeliversAsynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockNotifier(ctrl)

	done := make(chan struct{})
	mock.EXPECT().
		Notify(gomock.Any(), "pomo", "Work sprint finished. Time for a break.").
		DoAndReturn(func(ctx context.Context, title, body string) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("expected a deadline on the notify context")
			}
			close(done)
			return nil
		}).
		Times(1)

	cb := Callback(mock, time.Second, func() Message { return CompletionMessage(models.WorkSprint) })
	cb()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier was not called")
	}
}

func TestCallbackSwallowsNotifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockNotifier(ctrl)

	done := make(chan struct{})
	mock.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) error {
			defer close(done)
			return errors.New("no notification daemon")
		})

	Callback(mock, 0, func() Message { return CompletionMessage(models.ShortBreak) })()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier was not called")
	}
}

func TestMultiJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockNotifier(ctrl)
	second := NewMockNotifier(ctrl)
	boom := errors.New("boom")

	first.EXPECT().Notify(gomock.Any(), "t", "b").Return(boom)
	second.EXPECT().Notify(gomock.Any(), "t", "b").Return(nil)

	err := Multi{first, second}.Notify(context.Background(), "t", "b")
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to contain boom, got %v", err)
	}
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	if err := NewBell(&buf).Notify(context.Background(), "t", "b"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if buf.String() != "\a" {
		t.Fatalf("bell wrote %q", buf.String())
	}
}

func TestNopNotifier(t *testing.T) {
	if err := (Nop{}).Notify(context.Background(), "t", "b"); err != nil {
		t.Fatalf("Nop returned %v", err)
	}
}

func TestCompletionMessage(t *testing.T) {
	if !strings.Contains(CompletionMessage(models.LongBreak).Body, "Long Break") {
		t.Fatalf("long break message should name the kind: %+v", CompletionMessage(models.LongBreak))
	}
	if CompletionMessage(models.ShortBreak).Title != "pomo" {
		t.Fatalf("unexpected title")
	}
}

func TestDBusConnectFailure(t *testing.T) {
	d := NewDBus("pomo", time.Second)
	d.connect = func(...dbus.ConnOption) (*dbus.Conn, error) { return nil, errors.New("no bus") }
	err := d.Notify(context.Background(), "t", "b")
	if err == nil || !strings.Contains(err.Error(), "connect session bus") {
		t.Fatalf("expected connect error, got %v", err)
	}
}

func TestDispatcherWaitDrainsDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockNotifier(ctrl)

	var delivered atomic.Bool
	mock.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) error {
			time.Sleep(50 * time.Millisecond)
			delivered.Store(true)
			return nil
		}).
		Times(1)

	d := NewDispatcher(mock, time.Second, func() Message { return CompletionMessage(models.WorkSprint) })
	d.Fire()
	if !d.Wait(2 * time.Second) {
		t.Fatalf("Wait reported pending deliveries")
	}
	if !delivered.Load() {
		t.Fatalf("Wait returned before the notifier finished")
	}
}

func TestDispatcherWaitTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockNotifier(ctrl)

	release := make(chan struct{})
	mock.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, title, body string) error {
			<-release
			return nil
		})

	d := NewDispatcher(mock, time.Second, func() Message { return CompletionMessage(models.LongBreak) })
	d.Fire()
	if d.Wait(20 * time.Millisecond) {
		t.Fatalf("expected Wait to give up while delivery is blocked")
	}
	close(release)
	if !d.Wait(time.Second) {
		t.Fatalf("expected delivery to finish after release")
	}
}

func TestDispatcherWaitWithNothingPending(t *testing.T) {
	d := NewDispatcher(Nop{}, 0, func() Message { return Message{} })
	if !d.Wait(10 * time.Millisecond) {
		t.Fatalf("Wait with no deliveries should return true")
	}
}
