package schedule

import (
	"testing"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestProjectFixedFrequencies(t *testing.T) {
	anchor := date(2024, 6, 15)
	cases := []struct {
		freq  models.Frequency
		value int
		want  time.Time
	}{
		{models.FrequencyDaily, 1, date(2024, 6, 16)},
		{models.FrequencyDaily, 10, date(2024, 6, 25)},
		{models.FrequencyWeekly, 1, date(2024, 6, 22)},
		{models.FrequencyWeekly, 2, date(2024, 6, 29)},
		{models.FrequencyMonthly, 1, date(2024, 7, 15)},
		{models.FrequencyMonthly, 6, date(2024, 12, 15)},
		{models.FrequencyQuarterly, 1, date(2024, 9, 15)},
		{models.FrequencyYearly, 1, date(2025, 6, 15)},
	}
	for _, tc := range cases {
		got := Project(anchor, tc.freq, tc.value)
		if !got.Equal(tc.want) {
			t.Errorf("%s x%d: got %v, want %v", tc.freq, tc.value, got, tc.want)
		}
	}
}

func TestProjectMonthEndOverflow(t *testing.T) {
	// Jan 31 + 1 month normalizes past February instead of clamping.
	got := Project(date(2024, 1, 31), models.FrequencyMonthly, 1)
	want := date(2024, 3, 2) // 2024 is a leap year
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestProjectMileageBasedPlaceholder(t *testing.T) {
	anchor := date(2024, 6, 1)
	got := Project(anchor, models.FrequencyMileageBased, 10000)
	if !got.Equal(anchor.Add(30 * 24 * time.Hour)) {
		t.Errorf("got %v, want anchor+30d", got)
	}
}

func TestProjectClampsLowValue(t *testing.T) {
	anchor := date(2024, 6, 1)
	if got := Project(anchor, models.FrequencyDaily, 0); !got.Equal(date(2024, 6, 2)) {
		t.Errorf("value 0: got %v", got)
	}
	if got := Project(anchor, models.FrequencyDaily, -3); !got.Equal(date(2024, 6, 2)) {
		t.Errorf("value -3: got %v", got)
	}
}

func TestProjectNeverBeforeAnchor(t *testing.T) {
	anchor := date(2024, 6, 1)
	for _, freq := range []models.Frequency{
		models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly,
		models.FrequencyQuarterly, models.FrequencyYearly, models.FrequencyMileageBased,
	} {
		if got := Project(anchor, freq, 1); !got.After(anchor) {
			t.Errorf("%s: %v not after anchor", freq, got)
		}
	}
}

func TestProjectTwelveMonthsMatchesYear(t *testing.T) {
	// Safe day of month, so both paths land on the same date.
	anchor := date(2024, 6, 15)
	months := Project(anchor, models.FrequencyMonthly, 12)
	year := Project(anchor, models.FrequencyYearly, 1)
	if !months.Equal(year) {
		t.Errorf("12 months %v != 1 year %v", months, year)
	}
}
