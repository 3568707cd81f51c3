package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/db"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStores(t *testing.T) *store.Stores {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(gdb)
}

func testService(t *testing.T) (*Service, *clockz.FakeClock) {
	t.Helper()
	clock := clockz.NewFakeClock()
	return NewService(testStores(t).Maintenance).WithClock(clock), clock
}

// validOpts is a baseline CreateOpts that passes validation.
func validOpts(vehicle string, due time.Time) CreateOpts {
	return CreateOpts{
		VehicleID: vehicle, Type: "Oil Change", Priority: models.PriorityMedium,
		DueDate: due, CurrentMileage: 40000, DueMileage: 45000,
	}
}

func TestCreateAllocatesSequentialIDs(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()
	due := clock.Now().AddDate(0, 0, 30)

	first, err := svc.Create(ctx, validOpts("ABC-1234", due))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != "M001" {
		t.Errorf("first ID = %q, want M001", first.ID)
	}
	second, err := svc.Create(ctx, validOpts("XYZ-5678", due))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID != "M002" {
		t.Errorf("second ID = %q, want M002", second.ID)
	}
}

func TestCreateHonorsExplicitID(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()
	due := clock.Now().AddDate(0, 0, 30)

	opts := validOpts("ABC-1234", due)
	opts.ID = "M040"
	if _, err := svc.Create(ctx, opts); err != nil {
		t.Fatalf("create pinned: %v", err)
	}
	next, err := svc.Create(ctx, validOpts("XYZ-5678", due))
	if err != nil {
		t.Fatalf("create next: %v", err)
	}
	if next.ID != "M041" {
		t.Errorf("next ID = %q, want M041", next.ID)
	}
}

func TestCreateClassifiesInitialStatus(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()
	now := clock.Now()

	cases := []struct {
		name string
		due  time.Time
		cur  int
		max  int
		want models.Status
	}{
		{"past due date", now.AddDate(0, 0, -8), 40000, 45000, models.StatusOverdue},
		{"close date", now.AddDate(0, 0, 3), 67890, 70000, models.StatusDueSoon},
		{"close mileage", now.AddDate(0, 0, 30), 67890, 68000, models.StatusDueSoon},
		{"comfortably out", now.AddDate(0, 0, 10), 23456, 25000, models.StatusScheduled},
	}
	for _, tc := range cases {
		opts := validOpts("V-"+tc.name, tc.due)
		opts.CurrentMileage, opts.DueMileage = tc.cur, tc.max
		item, err := svc.Create(ctx, opts)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if item.Status != tc.want {
			t.Errorf("%s: status = %q, want %q", tc.name, item.Status, tc.want)
		}
	}
}

func TestCreateHonorsExplicitStatus(t *testing.T) {
	svc, clock := testService(t)
	opts := validOpts("V1", clock.Now().AddDate(0, 0, 30))
	opts.Status = models.StatusInProgress
	item, err := svc.Create(context.Background(), opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != models.StatusInProgress {
		t.Errorf("status = %q, want in_progress", item.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()
	due := clock.Now().AddDate(0, 0, 30)

	mutate := func(f func(*CreateOpts)) CreateOpts {
		opts := validOpts("V1", due)
		f(&opts)
		return opts
	}
	cases := []struct {
		name string
		opts CreateOpts
	}{
		{"missing vehicle", mutate(func(o *CreateOpts) { o.VehicleID = "" })},
		{"missing type", mutate(func(o *CreateOpts) { o.Type = "" })},
		{"missing due date", mutate(func(o *CreateOpts) { o.DueDate = time.Time{} })},
		{"missing priority", mutate(func(o *CreateOpts) { o.Priority = "" })},
		{"bad priority", mutate(func(o *CreateOpts) { o.Priority = "urgent" })},
		{"bad status", mutate(func(o *CreateOpts) { o.Status = "done" })},
		{"negative mileage", mutate(func(o *CreateOpts) { o.CurrentMileage = -1 })},
		{"missing due mileage", mutate(func(o *CreateOpts) { o.DueMileage = 0 })},
		{"due below current", mutate(func(o *CreateOpts) { o.CurrentMileage = 50000 })},
		{"negative cost", mutate(func(o *CreateOpts) { o.EstimatedCost = -5 })},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.opts)
		var verr *store.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	opts := validOpts("ABC-1234", clock.Now().AddDate(0, 0, 30))
	opts.Priority = models.PriorityHigh
	opts.Notes = "original"
	item, err := svc.Create(ctx, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "updated by dispatcher"
	got, err := svc.Update(ctx, item.ID, UpdateOpts{Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Notes != notes {
		t.Errorf("notes = %q", got.Notes)
	}
	// Untouched fields survive.
	if got.Priority != models.PriorityHigh || got.VehicleID != "ABC-1234" {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestUpdateClearsNullableFields(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	opts := validOpts("ABC-1234", clock.Now().AddDate(0, 0, 30))
	scheduled := clock.Now().AddDate(0, 0, 14)
	opts.ScheduledDate = &scheduled
	item, err := svc.Create(ctx, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cost := 120.0
	if _, err := svc.Update(ctx, item.ID, UpdateOpts{ActualCost: &cost}); err != nil {
		t.Fatalf("set actual cost: %v", err)
	}

	got, err := svc.Update(ctx, item.ID, UpdateOpts{
		ClearScheduledDate: true,
		ClearActualCost:    true,
	})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got.ScheduledDate != nil {
		t.Errorf("scheduled date not cleared: %v", got.ScheduledDate)
	}
	if got.ActualCost != nil {
		t.Errorf("actual cost not cleared: %v", *got.ActualCost)
	}
	// Clearing wins over a simultaneous pointer value.
	later := clock.Now().AddDate(0, 0, 21)
	got, err = svc.Update(ctx, item.ID, UpdateOpts{ScheduledDate: &later, ClearScheduledDate: true})
	if err != nil {
		t.Fatalf("clear with value: %v", err)
	}
	if got.ScheduledDate != nil {
		t.Errorf("clear flag lost to pointer field: %v", got.ScheduledDate)
	}
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, validOpts("ABC-1234", clock.Now().AddDate(0, 0, 30)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clock.Advance(48 * time.Hour)
	got, err := svc.Update(ctx, item.ID, UpdateOpts{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if got.UpdatedAt.Equal(item.UpdatedAt) {
		t.Errorf("empty patch left UpdatedAt at %v", got.UpdatedAt)
	}
	if !got.UpdatedAt.Equal(clock.Now()) {
		t.Errorf("UpdatedAt = %v, want clock time %v", got.UpdatedAt, clock.Now())
	}
}

func TestUpdateStampsCompletedDateOnce(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, validOpts("V1", clock.Now().AddDate(0, 0, 30)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed := models.StatusCompleted
	got, err := svc.Update(ctx, item.ID, UpdateOpts{Status: &completed})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.CompletedDate == nil {
		t.Fatal("completed date not stamped")
	}
	stamp := *got.CompletedDate

	// Re-completing later keeps the first stamp.
	clock.Advance(48 * time.Hour)
	inProgress := models.StatusInProgress
	if _, err := svc.Update(ctx, item.ID, UpdateOpts{Status: &inProgress}); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err = svc.Update(ctx, item.ID, UpdateOpts{Status: &completed})
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if got.CompletedDate == nil || !got.CompletedDate.Equal(stamp) {
		t.Errorf("completed date moved: %v, want %v", got.CompletedDate, stamp)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, validOpts("V1", clock.Now().AddDate(0, 0, 30)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	bad := models.Status("done")
	_, err = svc.Update(ctx, item.ID, UpdateOpts{Status: &bad})
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	svc, _ := testService(t)
	notes := "x"
	_, err := svc.Update(context.Background(), "M999", UpdateOpts{Notes: &notes})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestHistoryRequiresVehicle(t *testing.T) {
	svc, _ := testService(t)
	_, err := svc.History(context.Background(), "")
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestHistoryReturnsAllStates(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()
	now := clock.Now()

	a, err := svc.Create(ctx, validOpts("ABC-1234", now.AddDate(0, 0, 30)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, validOpts("XYZ-5678", now.AddDate(0, 0, 30))); err != nil {
		t.Fatalf("create other: %v", err)
	}
	completed := models.StatusCompleted
	if _, err := svc.Update(ctx, a.ID, UpdateOpts{Status: &completed}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	history, err := svc.History(ctx, "ABC-1234")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != a.ID {
		t.Fatalf("history = %+v", history)
	}
	if history[0].Status != models.StatusCompleted {
		t.Errorf("completed item missing from history")
	}
}
