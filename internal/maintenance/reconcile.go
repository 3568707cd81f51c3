package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/notify"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Reconciler re-derives urgency tiers for scheduled and due_soon items.
// Items a caller moved to an explicit state (in_progress, completed,
// cancelled) are never touched, and overdue items stay overdue until a caller
// intervenes. The pass is idempotent: running it twice with the same clock
// changes nothing the second time.
type Reconciler struct {
	items store.MaintenanceStore
	clock clockz.Clock
}

// NewReconciler builds a Reconciler over the given store.
func NewReconciler(items store.MaintenanceStore) *Reconciler {
	return &Reconciler{items: items}
}

// WithClock sets a custom clock for testing.
func (r *Reconciler) WithClock(clock clockz.Clock) *Reconciler {
	r.clock = clock
	return r
}

func (r *Reconciler) clk() clockz.Clock {
	if r.clock == nil {
		return clockz.RealClock
	}
	return r.clock
}

func (r *Reconciler) now() time.Time {
	return r.clk().Now()
}

// Run reclassifies every scheduled and due_soon item and persists the
// statuses that moved. It returns how many items changed.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	items, err := r.items.ListByStatuses(ctx,
		models.StatusScheduled, models.StatusDueSoon)
	if err != nil {
		return 0, fmt.Errorf("maintenance: reconcile: %w", err)
	}

	now := r.now()
	changed := 0
	for i := range items {
		want := ClassifyItem(&items[i], now)
		if want == items[i].Status {
			continue
		}
		err := r.items.UpdateFields(ctx, items[i].ID, map[string]any{"status": want})
		if err != nil {
			return changed, fmt.Errorf("maintenance: reconcile %s: %w", items[i].ID, err)
		}
		changed++
	}
	return changed, nil
}

// countByStatus returns how many items currently sit in each given status.
func (r *Reconciler) countByStatus(ctx context.Context, statuses ...models.Status) (map[models.Status]int, error) {
	items, err := r.items.ListByStatuses(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	counts := make(map[models.Status]int, len(statuses))
	for i := range items {
		counts[items[i].Status]++
	}
	return counts, nil
}

// RunDaemon runs reconciliation on the given 5-field cron schedule until ctx
// is cancelled. A pass that flips items to overdue produces a digest for
// every notifier; send failures are logged and ignored.
func (r *Reconciler) RunDaemon(ctx context.Context, schedule string, log *logrus.Logger, notifiers []notify.Notifier) error {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("maintenance: parse reconcile schedule %q: %w", schedule, err)
	}

	log.WithField("schedule", schedule).Info("reconciler daemon starting")

	for {
		now := r.now()
		next := sched.Next(now)
		select {
		case <-ctx.Done():
			log.Info("reconciler daemon stopped")
			return nil
		case <-r.clk().After(next.Sub(now)):
		}

		before, err := r.countByStatus(ctx, models.StatusOverdue)
		if err != nil {
			log.WithError(err).Error("reconcile precount failed")
			continue
		}
		changed, err := r.Run(ctx)
		if err != nil {
			log.WithError(err).Error("reconcile pass failed")
			continue
		}
		after, err := r.countByStatus(ctx, models.StatusOverdue, models.StatusDueSoon)
		if err != nil {
			log.WithError(err).Error("reconcile postcount failed")
			continue
		}

		newlyOverdue := after[models.StatusOverdue] - before[models.StatusOverdue]
		log.WithFields(logrus.Fields{
			"changed": changed, "newly_overdue": newlyOverdue,
		}).Info("reconcile pass complete")
		if newlyOverdue <= 0 {
			continue
		}

		d := notify.Digest{
			Changed:      changed,
			NewlyOverdue: newlyOverdue,
			Overdue:      after[models.StatusOverdue],
			DueSoon:      after[models.StatusDueSoon],
			At:           r.now(),
		}
		for _, n := range notifiers {
			if err := n.Send(ctx, d); err != nil {
				log.WithError(err).WithField("platform", n.Name()).Warn("digest send failed")
			}
		}
	}
}
