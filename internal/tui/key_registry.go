package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Label       string
	Description string
	Priority    int
}

func (b KeyBinding) Matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Matches(key) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		label := b.Label
		if label == "" {
			label = b.Keys[0]
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, " | ")
}
