package db

import (
	"testing"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/config"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestSeedPopulatesAllTables(t *testing.T) {
	gdb := testDB(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	counts, err := Seed(gdb, now)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if counts.Items == 0 || counts.Technicians == 0 || counts.Parts == 0 || counts.Schedules == 0 {
		t.Fatalf("expected every table seeded, got %+v", counts)
	}

	var got models.MaintenanceItem
	if err := gdb.First(&got, "id = ?", "M001").Error; err != nil {
		t.Fatalf("load M001: %v", err)
	}
	if got.Status != models.StatusOverdue {
		t.Errorf("M001 status = %q, want %q", got.Status, models.StatusOverdue)
	}
	if len(got.PartsNeeded) != 2 {
		t.Errorf("M001 parts = %d, want 2", len(got.PartsNeeded))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := testDB(t)
	now := time.Now().UTC()

	if _, err := Seed(gdb, now); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	counts, err := Seed(gdb, now)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if counts != (SeedCounts{}) {
		t.Fatalf("second seed inserted rows: %+v", counts)
	}
}

func TestDropRemovesTables(t *testing.T) {
	gdb := testDB(t)
	if _, err := Seed(gdb, time.Now().UTC()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Drop(gdb); err != nil {
		t.Fatalf("drop: %v", err)
	}
	for _, m := range AllModels() {
		if gdb.Migrator().HasTable(m) {
			t.Fatalf("table for %T still present after drop", m)
		}
	}
}

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		User: "fleet", Host: "db.internal", Port: 3306, Name: "fleetdb",
	})
	want := "fleet@tcp(db.internal:3306)/fleetdb?parseTime=true"
	if got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
