package crew

import (
	"context"
	"errors"
	"testing"

	"github.com/RavDas/fleet-management-backend/internal/db"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testService(t *testing.T) (*Service, *clockz.FakeClock) {
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
	clock := clockz.NewFakeClock()
	return NewService(store.New(gdb).Technicians).WithClock(clock), clock
}

func TestCreateDefaults(t *testing.T) {
	svc, clock := testService(t)
	tech, err := svc.Create(context.Background(), CreateOpts{
		Name:           "Mike Henderson",
		Email:          "mike.henderson@fleetops.com",
		Specialization: []string{"Engine Diagnostics"},
		Rating:         4.8,
		HourlyRate:     65,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tech.ID != "TECH-001" {
		t.Errorf("ID = %q, want TECH-001", tech.ID)
	}
	if tech.Status != models.TechnicianAvailable {
		t.Errorf("status = %q, want available", tech.Status)
	}
	if !tech.JoinDate.Equal(clock.Now()) {
		t.Errorf("join date = %v, want %v", tech.JoinDate, clock.Now())
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		opts CreateOpts
	}{
		{"missing name", CreateOpts{Rating: 4}},
		{"bad status", CreateOpts{Name: "A", Status: "retired"}},
		{"rating too high", CreateOpts{Name: "A", Rating: 5.5}},
		{"negative rate", CreateOpts{Name: "A", HourlyRate: -1}},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.opts)
		var verr *store.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestUpdateStatusAndCounters(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	tech, err := svc.Create(ctx, CreateOpts{Name: "Sarah Martinez"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	busy := models.TechnicianBusy
	jobs := 3
	got, err := svc.Update(ctx, tech.ID, UpdateOpts{Status: &busy, ActiveJobs: &jobs})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != models.TechnicianBusy || got.ActiveJobs != 3 {
		t.Errorf("after update: %+v", got)
	}
	// Untouched fields survive.
	if got.Name != "Sarah Martinez" {
		t.Errorf("name changed: %q", got.Name)
	}
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := testService(t)
	name := "x"
	_, err := svc.Update(context.Background(), "TECH-999", UpdateOpts{Name: &name})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc, _ := testService(t)
	_, err := svc.List(context.Background(), "sleeping")
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateOpts{Name: "A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateOpts{Name: "B", Status: models.TechnicianOffDuty}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(ctx, models.TechnicianOffDuty)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("list = %+v", got)
	}
}
