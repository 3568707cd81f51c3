package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/db"
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
	return NewService(store.New(gdb).Parts).WithClock(clock), clock
}

func TestCreateStampsInitialRestock(t *testing.T) {
	svc, clock := testService(t)
	part, err := svc.Create(context.Background(), CreateOpts{
		Name: "Engine Oil Filter", PartNumber: "EOF-2024-001",
		Category: "Filters", Quantity: 45, MinQuantity: 15, UnitCost: 12.50,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if part.ID != "PART-001" {
		t.Errorf("ID = %q, want PART-001", part.ID)
	}
	if part.LastRestocked == nil || !part.LastRestocked.Equal(clock.Now()) {
		t.Errorf("restock stamp = %v", part.LastRestocked)
	}
}

func TestCreateEmptyStockHasNoStamp(t *testing.T) {
	svc, _ := testService(t)
	part, err := svc.Create(context.Background(), CreateOpts{
		Name: "Brake Fluid", PartNumber: "BF-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if part.LastRestocked != nil {
		t.Errorf("stamp on empty stock: %v", part.LastRestocked)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		opts CreateOpts
	}{
		{"missing name", CreateOpts{PartNumber: "X-1"}},
		{"missing part number", CreateOpts{Name: "X"}},
		{"negative quantity", CreateOpts{Name: "X", PartNumber: "X-1", Quantity: -1}},
		{"negative cost", CreateOpts{Name: "X", PartNumber: "X-1", UnitCost: -1}},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.opts)
		var verr *store.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestUpdateRestockStampsOnIncrease(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	part, err := svc.Create(ctx, CreateOpts{Name: "Coolant", PartNumber: "CL-1", Quantity: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	first := *part.LastRestocked

	// A draw does not move the stamp.
	clock.Advance(24 * time.Hour)
	six := 6
	got, err := svc.Update(ctx, part.ID, UpdateOpts{Quantity: &six})
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !got.LastRestocked.Equal(first) {
		t.Errorf("draw moved stamp: %v", got.LastRestocked)
	}

	// A restock does.
	clock.Advance(24 * time.Hour)
	forty := 40
	got, err = svc.Update(ctx, part.ID, UpdateOpts{Quantity: &forty})
	if err != nil {
		t.Fatalf("restock: %v", err)
	}
	if got.Quantity != 40 {
		t.Errorf("quantity = %d", got.Quantity)
	}
	if !got.LastRestocked.Equal(clock.Now()) {
		t.Errorf("restock stamp = %v, want %v", got.LastRestocked, clock.Now())
	}
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := testService(t)
	n := 5
	_, err := svc.Update(context.Background(), "PART-999", UpdateOpts{Quantity: &n})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLowStock(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateOpts{Name: "Brake Fluid", PartNumber: "BF-1", Quantity: 6, MinQuantity: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateOpts{Name: "Oil Filter", PartNumber: "OF-1", Quantity: 45, MinQuantity: 15}); err != nil {
		t.Fatalf("create: %v", err)
	}

	low, err := svc.LowStock(ctx)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Brake Fluid" {
		t.Fatalf("low = %+v", low)
	}
}

func TestUpdateRefreshesUpdatedAtOnEmptyPatch(t *testing.T) {
	svc, clock := testService(t)
	ctx := context.Background()

	part, err := svc.Create(ctx, CreateOpts{Name: "Coolant", PartNumber: "CL-1", Quantity: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clock.Advance(48 * time.Hour)
	got, err := svc.Update(ctx, part.ID, UpdateOpts{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if got.UpdatedAt.Equal(part.UpdatedAt) {
		t.Errorf("empty patch left UpdatedAt at %v", got.UpdatedAt)
	}
	if !got.UpdatedAt.Equal(clock.Now()) {
		t.Errorf("UpdatedAt = %v, want clock time %v", got.UpdatedAt, clock.Now())
	}
}
