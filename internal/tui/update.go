package tui

import (
	"fmt"
	"log/slog"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.refresh()
		return m, tickCmd(m.tick)
	case EventMsg:
		m = m.handleEvent(timer.Event(msg))
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetGaugeWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinGaugeWidth, config.TargetGaugeWidth)
	}
	return m
}

func (m Model) handleEvent(event timer.Event) Model {
	kind := event.Snapshot.Kind
	switch event.Type {
	case timer.EventStarted:
		m.status = fmt.Sprintf("%s started", kind)
	case timer.EventPaused:
		m.status = fmt.Sprintf("%s paused", kind)
	case timer.EventResumed:
		m.status = fmt.Sprintf("%s resumed", kind)
	case timer.EventStopped:
		m.status = fmt.Sprintf("%s stopped", kind)
	case timer.EventCompleted:
		m.status = fmt.Sprintf("%s complete", kind)
	case timer.EventTick:
		return m
	}
	slog.Debug("timer event", "type", string(event.Type), "kind", kind.Key(), "elapsed", event.Snapshot.Elapsed)
	return m
}

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Keys: []string{"w"}, Handler: startHandler(models.WorkSprint), Description: "work"})
	r.Register(KeyBinding{Keys: []string{"s"}, Handler: startHandler(models.ShortBreak), Description: "short break"})
	r.Register(KeyBinding{Keys: []string{"l"}, Handler: startHandler(models.LongBreak), Description: "long break"})
	r.Register(KeyBinding{Keys: []string{"p", " "}, Label: "p/space", Handler: handlePauseToggle, Description: "pause"})
	r.Register(KeyBinding{Keys: []string{"x"}, Handler: handleStop, Description: "stop"})
	r.Register(KeyBinding{Keys: []string{"t"}, Handler: handleTheme, Description: "theme"})
	r.Register(KeyBinding{Keys: []string{"q", "esc"}, Label: "q/esc", Handler: handleQuit, Description: "quit"})
	return r
}

func startHandler(kind models.IntervalKind) KeyHandler {
	return func(m Model, key string) (Model, tea.Cmd, bool) {
		m.session.Start(kind)
		m.refresh()
		return m, nil, true
	}
}

func handlePauseToggle(m Model, key string) (Model, tea.Cmd, bool) {
	m.session.PauseToggle()
	m.refresh()
	return m, nil, true
}

func handleStop(m Model, key string) (Model, tea.Cmd, bool) {
	m.session.Stop()
	m.refresh()
	return m, nil, true
}

func handleTheme(m Model, key string) (Model, tea.Cmd, bool) {
	name := nextTheme(m.themeName)
	m.theme, m.themeName = ThemeByName(name)
	width := m.progress.Width
	m.progress = newProgress(m.theme, width)
	if m.store != nil {
		if err := m.store.SetTheme(m.ctx, m.themeName); err != nil {
			util.LogError("save theme", err)
			m.status = "Could not save theme"
			return m, nil, true
		}
	}
	m.status = fmt.Sprintf("Theme: %s", m.theme.Name)
	return m, nil, true
}

func handleQuit(m Model, key string) (Model, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}
