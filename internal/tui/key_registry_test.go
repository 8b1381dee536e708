package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var order []string
	r.Register(KeyBinding{Keys: []string{"a"}, Priority: 1, Handler: func(m Model, key string) (Model, tea.Cmd, bool) {
		order = append(order, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Keys: []string{"a"}, Priority: 5, Handler: func(m Model, key string) (Model, tea.Cmd, bool) {
		order = append(order, "high")
		return m, nil, false
	}})

	_, _, handled := r.Handle(Model{}, "a")
	if !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(order, ",") != "high,low" {
		t.Fatalf("handler order = %v", order)
	}
	if _, _, handled := r.Handle(Model{}, "b"); handled {
		t.Fatalf("unbound key reported handled")
	}
}

func TestDefaultKeysHelp(t *testing.T) {
	help := defaultKeys().Help()
	for _, want := range []string{"[w]work", "[s]short break", "[l]long break", "[p/space]pause", "[q/esc]quit"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help %q missing %q", help, want)
		}
	}
}

func TestNextThemeWraps(t *testing.T) {
	names := ThemeNames()
	last := names[len(names)-1]
	if got := nextTheme(last); got != names[0] {
		t.Fatalf("nextTheme(%q) = %q, want %q", last, got, names[0])
	}
	if got := nextTheme("missing"); got != names[0] {
		t.Fatalf("nextTheme(missing) = %q", got)
	}
	if _, key := ThemeByName("missing"); key != "default" {
		t.Fatalf("ThemeByName fallback = %q", key)
	}
}

func TestHelpFallsBackToFirstKey(t *testing.T) {
	r := NewHandlerRegistry()
	noop := func(m Model, key string) (Model, tea.Cmd, bool) { return m, nil, true }
	r.Register(KeyBinding{Keys: []string{"a", "b"}, Handler: noop, Description: "alpha"})
	r.Register(KeyBinding{Keys: []string{"c", "d"}, Label: "c/d", Handler: noop, Description: "gamma"})
	r.Register(KeyBinding{Keys: []string{"e"}, Handler: noop})
	if got := r.Help(); got != "[a]alpha | [c/d]gamma" {
		t.Fatalf("Help() = %q", got)
	}
}
