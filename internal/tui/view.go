package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	header := t.Header.Render("pomo") + t.Dim.Render(" v"+versionLabel())
	kind := m.kindStyle().Render(m.snapshot.Kind.String())
	status := t.Dim.Render(FormatStatus(m.snapshot))
	clock := t.Clock.Render(FormatTimeRemaining(m.snapshot.Remaining))
	gauge := fmt.Sprintf("%s %3d%%", m.progress.ViewAs(float64(m.percent)/100), m.percent)

	lines := []string{
		header,
		"",
		kind + "  " + status,
		clock,
		gauge,
		"",
		t.Status.Render(m.status),
		m.footer(),
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
	return t.Base.Render(box)
}

func (m Model) kindStyle() lipgloss.Style {
	if m.snapshot.Status == models.StatusPaused {
		return m.theme.Paused
	}
	if m.snapshot.Kind == models.WorkSprint {
		return m.theme.Work
	}
	return m.theme.Break
}

func (m Model) footer() string {
	help := m.keys.Help()
	if m.width > 0 {
		// border, padding and margin take 10 columns
		if limit := m.width - 10; limit > 0 {
			help = ansi.Truncate(help, limit, config.TruncationSuffix)
		}
	}
	return m.theme.Dim.Render(help)
}
