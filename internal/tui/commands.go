package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

type EventMsg timer.Event

type eventsClosedMsg struct{}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return EventMsg(event)
	}
}
