package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Work      lipgloss.Style
	Break     lipgloss.Style
	Paused    lipgloss.Style
	Clock     lipgloss.Style
	Status    lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	GaugeFrom string
	GaugeTo   string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(1, 0),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		GaugeFrom: "#FF7CCB",
		GaugeTo:   "#FDFF8C",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                             // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		GaugeFrom: "#BD93F9",
		GaugeTo:   "#FF79C6",
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("245"),
		Header:    lipgloss.NewStyle().Bold(true),
		Work:      lipgloss.NewStyle().Bold(true),
		Break:     lipgloss.NewStyle().Underline(true),
		Paused:    lipgloss.NewStyle().Italic(true),
		Clock:     lipgloss.NewStyle().Bold(true).Padding(1, 0),
		Status:    lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Highlight: lipgloss.NewStyle().Reverse(true),
		GaugeFrom: "#FFFFFF",
		GaugeTo:   "#FFFFFF",
	},
}

// ThemeNames returns the theme keys in stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named theme and its key, falling back to default.
func ThemeByName(name string) (Theme, string) {
	if t, ok := Themes[name]; ok {
		return t, name
	}
	return Themes["default"], "default"
}

// nextTheme returns the key that follows current in ThemeNames order.
func nextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
