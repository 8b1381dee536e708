// Package tui renders the active interval and maps keys to session commands.
package tui

import (
	"context"
	"os"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ThemeStore persists the selected theme. It may be nil.
type ThemeStore interface {
	SetTheme(ctx context.Context, name string) error
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	session  *timer.Session
	store    ThemeStore
	events   <-chan timer.Event
	keys     *HandlerRegistry
	progress progress.Model
	tick     time.Duration

	theme     Theme
	themeName string
	snapshot  models.Snapshot
	percent   int
	status    string
	width     int
	height    int
	quitting  bool
}

// NewModel builds the UI around session. The model subscribes to session
// events for status messages.
func NewModel(ctx context.Context, session *timer.Session, store ThemeStore, themeName string) Model {
	theme, key := ThemeByName(themeName)
	m := Model{
		ctx:       ctx,
		session:   session,
		store:     store,
		events:    session.Subscribe(config.EventBuffer),
		keys:      defaultKeys(),
		tick:      config.TickInterval,
		theme:     theme,
		themeName: key,
	}
	m.progress = newProgress(theme, config.TargetGaugeWidth)
	m.refresh()
	return m
}

func newProgress(theme Theme, width int) progress.Model {
	p := progress.New(progress.WithGradient(theme.GaugeFrom, theme.GaugeTo), progress.WithoutPercentage())
	p.Width = width
	return p
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tick), waitForEvent(m.events))
}

// refresh polls the session. LoadProgress may fire the completion callback.
func (m *Model) refresh() {
	m.percent = m.session.LoadProgress()
	m.snapshot = m.session.Snapshot()
}

// Run starts the program and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// IsTTY reports whether stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
