package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
)

// runPlain polls the session once per tick and prints a progress line until
// the interval stops or ctx is cancelled.
func runPlain(ctx context.Context, out io.Writer, session *timer.Session, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	printProgress(out, session.LoadProgress(), session.Snapshot())
	for {
		select {
		case <-ctx.Done():
			session.Stop()
			fmt.Fprintln(out, "interrupted")
			return nil
		case <-ticker.C:
			pct := session.LoadProgress()
			snap := session.Snapshot()
			printProgress(out, pct, snap)
			if snap.Status == models.StatusStopped {
				return nil
			}
		}
	}
}

func printProgress(out io.Writer, pct int, snap models.Snapshot) {
	fmt.Fprintf(out, "%-11s %s %3d%%  %s\n",
		snap.Kind, tui.FormatTimeRemaining(snap.Remaining), pct, tui.FormatStatus(snap))
}
