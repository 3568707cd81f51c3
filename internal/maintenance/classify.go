// Package maintenance implements the maintenance item lifecycle: creation,
// partial updates, urgency classification, and the reconciliation pass that
// keeps stored statuses aligned with the calendar and odometer.
package maintenance

import (
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
)

// Classification thresholds. An item within dueSoonDays calendar days or
// dueSoonMileage miles of its due point is due_soon.
const (
	dueSoonDays    = 7
	dueSoonMileage = 500
)

// midnight truncates t to the start of its UTC day. Urgency compares dates,
// not instants: an item due today is not overdue at 23:59. Normalizing to UTC
// keeps stored due dates and the injected clock on the same calendar.
func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysUntil counts whole calendar days from now's date to due's date.
// Negative when due is in the past.
func daysUntil(due, now time.Time) int {
	return int(midnight(due).Sub(midnight(now)) / (24 * time.Hour))
}

// Classify derives the urgency tier for an item as of now. A zero DueMileage
// means mileage tracking is off for the item and only dates count.
//
// Classify only computes the three derived tiers. Callers decide whether to
// apply the result; items in explicit states (in_progress, completed,
// cancelled) keep those states.
func Classify(dueDate time.Time, currentMileage, dueMileage int, now time.Time) models.Status {
	days := daysUntil(dueDate, now)
	mileageTracked := dueMileage > 0

	if days < 0 || (mileageTracked && currentMileage >= dueMileage) {
		return models.StatusOverdue
	}
	if days <= dueSoonDays || (mileageTracked && dueMileage-currentMileage <= dueSoonMileage) {
		return models.StatusDueSoon
	}
	return models.StatusScheduled
}

// ClassifyItem applies Classify to an item's own fields.
func ClassifyItem(item *models.MaintenanceItem, now time.Time) models.Status {
	return Classify(item.DueDate, item.CurrentMileage, item.DueMileage, now)
}
