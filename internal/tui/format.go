package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomo/internal/models"
)

// FormatTimeRemaining formats whole seconds as mm:ss, or hh:mm:ss past an hour.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatStatus returns a human-readable interval status.
func FormatStatus(snap models.Snapshot) string {
	switch snap.Status {
	case models.StatusRunning:
		return fmt.Sprintf("Running - %s remaining", FormatTimeRemaining(snap.Remaining))
	case models.StatusPaused:
		return fmt.Sprintf("Paused - %s remaining", FormatTimeRemaining(snap.Remaining))
	default:
		if snap.Elapsed >= snap.Total && snap.Total > 0 {
			return "Completed"
		}
		if snap.Elapsed > 0 {
			return fmt.Sprintf("Stopped - %s left", FormatTimeRemaining(snap.Remaining))
		}
		return "Ready"
	}
}
