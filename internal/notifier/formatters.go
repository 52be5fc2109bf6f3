package notifier

import (
	"fmt"
	"strings"
	"time"

	"ticketwatch/internal/models"
)

const timestampFormat = "2006-01-02 15:04:05 UTC"

// FormatStartupMessage builds the first-run startup notice.
func FormatStartupMessage(targets []string, heartbeatInterval time.Duration, now time.Time) string {
	var b strings.Builder
	b.WriteString("✅ Ticket watcher started.\n")
	fmt.Fprintf(&b, "Time: %s\n", now.UTC().Format(timestampFormat))
	fmt.Fprintf(&b, "Watching %d pages. Heartbeat: every %s.\n", len(targets), heartbeatInterval)
	for _, t := range targets {
		fmt.Fprintf(&b, "• %s\n", t)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatHeartbeatMessage builds the periodic liveness ping.
func FormatHeartbeatMessage(now time.Time) string {
	return fmt.Sprintf("🟢 Ticket watcher: still ON (%s).", now.UTC().Format(timestampFormat))
}

// FormatSignalMessage builds the notification text for one fired signal.
func FormatSignalMessage(signal models.Signal) string {
	switch signal.Kind {
	case models.SignalSaleOpen:
		msg := fmt.Sprintf("🎟️ The tickets page changed and the sale looks open.\n%s", signal.URL)
		if signal.DiffSummary != "" {
			msg += fmt.Sprintf("\nChange: %s", signal.DiffSummary)
		}
		return msg

	case models.SignalReappeared:
		return fmt.Sprintf("🔄 The tickets page is back online.\n%s", signal.URL)

	case models.SignalNewTicketLinks:
		var b strings.Builder
		if signal.Strong {
			b.WriteString("🎯 Strong signal: the landing page lost the \"date to be announced\" phrase and now links to ticket pages:\n")
		} else {
			b.WriteString("🔎 Weak signal: the landing page changed and carries ticket-looking links:\n")
		}
		for _, link := range signal.Links {
			fmt.Fprintf(&b, "• %s\n", link)
		}
		if signal.DiffSummary != "" {
			fmt.Fprintf(&b, "Change: %s", signal.DiffSummary)
		}
		return strings.TrimRight(b.String(), "\n")

	default:
		return fmt.Sprintf("ℹ️ Page changed: %s", signal.URL)
	}
}
