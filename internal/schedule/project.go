// Package schedule manages recurring maintenance plans and the projection of
// their next occurrence dates.
package schedule

import (
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
)

// mileageRecheck is the provisional horizon for mileage-based schedules.
// Without odometer telemetry the next occurrence cannot be computed from the
// interval, so the schedule resurfaces for a manual check after this long.
const mileageRecheck = 30 * 24 * time.Hour

// Project returns the occurrence after anchor for the given frequency and
// value. Month and year arithmetic follows time.AddDate normalization:
// Jan 31 plus one month lands on Mar 2 or Mar 3 rather than clamping to the
// end of February. A value below 1 is treated as 1.
func Project(anchor time.Time, freq models.Frequency, value int) time.Time {
	if value < 1 {
		value = 1
	}
	switch freq {
	case models.FrequencyDaily:
		return anchor.AddDate(0, 0, value)
	case models.FrequencyWeekly:
		return anchor.AddDate(0, 0, 7*value)
	case models.FrequencyMonthly:
		return anchor.AddDate(0, value, 0)
	case models.FrequencyQuarterly:
		return anchor.AddDate(0, 3*value, 0)
	case models.FrequencyYearly:
		return anchor.AddDate(value, 0, 0)
	case models.FrequencyMileageBased:
		return anchor.Add(mileageRecheck)
	}
	return anchor.Add(mileageRecheck)
}
