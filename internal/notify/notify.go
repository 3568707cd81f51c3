// Package notify delivers reconciliation digests to chat platforms. Delivery
// is best-effort: a failed send is logged by the caller and never blocks the
// reconciliation pass itself.
package notify

import (
	"context"
	"fmt"
	"time"
)

// Digest summarizes one reconciliation pass.
type Digest struct {
	Changed      int       // items whose status moved this pass
	NewlyOverdue int       // items that flipped to overdue this pass
	Overdue      int       // items overdue after the pass
	DueSoon      int       // items due soon after the pass
	At           time.Time // when the pass ran
}

// Headline is the one-line summary shared by every platform.
func (d Digest) Headline() string {
	return fmt.Sprintf("Maintenance reconciliation: %d newly overdue", d.NewlyOverdue)
}

// Body is the detail text shared by every platform.
func (d Digest) Body() string {
	return fmt.Sprintf("%d status change(s); %d overdue, %d due soon as of %s",
		d.Changed, d.Overdue, d.DueSoon, d.At.Format("2006-01-02 15:04 MST"))
}

// Notifier is the interface platform-specific senders satisfy.
type Notifier interface {
	// Name identifies the platform for logging.
	Name() string

	// Send delivers one digest to the configured channel.
	Send(ctx context.Context, d Digest) error

	// Close releases any platform connection.
	Close() error
}
