package maintenance

import (
	"testing"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
)

var today = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestClassifyOverdueByDate(t *testing.T) {
	got := Classify(today.AddDate(0, 0, -8), 45230, 45000, today)
	if got != models.StatusOverdue {
		t.Errorf("got %q, want overdue", got)
	}
}

func TestClassifyOverdueByMileage(t *testing.T) {
	// Due date is comfortably out; odometer already past the due mark.
	got := Classify(today.AddDate(0, 0, 30), 45230, 45000, today)
	if got != models.StatusOverdue {
		t.Errorf("got %q, want overdue", got)
	}
	if got := Classify(today.AddDate(0, 0, 30), 45000, 45000, today); got != models.StatusOverdue {
		t.Errorf("equal mileage: got %q, want overdue", got)
	}
}

func TestClassifyDueSoonByDate(t *testing.T) {
	got := Classify(today.AddDate(0, 0, 3), 67890, 70000, today)
	if got != models.StatusDueSoon {
		t.Errorf("got %q, want due_soon", got)
	}
	// Boundary: exactly 7 days out is still due_soon.
	if got := Classify(today.AddDate(0, 0, 7), 0, 0, today); got != models.StatusDueSoon {
		t.Errorf("7 days: got %q, want due_soon", got)
	}
}

func TestClassifyDueSoonByMileage(t *testing.T) {
	got := Classify(today.AddDate(0, 0, 30), 67890, 68000, today)
	if got != models.StatusDueSoon {
		t.Errorf("got %q, want due_soon", got)
	}
	// Boundary: a gap of exactly 500 miles is due_soon; 501 is not.
	if got := Classify(today.AddDate(0, 0, 30), 69500, 70000, today); got != models.StatusDueSoon {
		t.Errorf("gap 500: got %q, want due_soon", got)
	}
	if got := Classify(today.AddDate(0, 0, 30), 69499, 70000, today); got != models.StatusScheduled {
		t.Errorf("gap 501: got %q, want scheduled", got)
	}
}

func TestClassifyScheduled(t *testing.T) {
	got := Classify(today.AddDate(0, 0, 10), 23456, 25000, today)
	if got != models.StatusScheduled {
		t.Errorf("got %q, want scheduled", got)
	}
}

func TestClassifyDueTodayIsNotOverdue(t *testing.T) {
	// Compare dates, not instants: due at 00:00 today, checked at 10:30.
	due := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := Classify(due, 0, 0, today); got != models.StatusDueSoon {
		t.Errorf("got %q, want due_soon", got)
	}
}

func TestClassifyZeroDueMileageDisablesMileage(t *testing.T) {
	// Odometer reads high but no due mileage is set; only the date counts.
	got := Classify(today.AddDate(0, 0, 30), 120000, 0, today)
	if got != models.StatusScheduled {
		t.Errorf("got %q, want scheduled", got)
	}
}
