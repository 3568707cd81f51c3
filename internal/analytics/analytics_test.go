package analytics

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

func testAggregator(t *testing.T) (*Aggregator, store.MaintenanceStore, *clockz.FakeClock) {
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
	items := store.New(gdb).Maintenance
	clock := clockz.NewFakeClock()
	return NewAggregator(items).WithClock(clock), items, clock
}

func cost(f float64) *float64 { return &f }

func insert(t *testing.T, items store.MaintenanceStore, it *models.MaintenanceItem) {
	t.Helper()
	if it.DueDate.IsZero() {
		it.DueDate = time.Now().UTC()
	}
	if it.Priority == "" {
		it.Priority = models.PriorityMedium
	}
	if err := items.Insert(context.Background(), it); err != nil {
		t.Fatalf("insert %s: %v", it.ID, err)
	}
}

func TestSummary(t *testing.T) {
	agg, items, _ := testAggregator(t)

	insert(t, items, &models.MaintenanceItem{ID: "M001", VehicleID: "V1", Type: "Oil Change", Status: models.StatusOverdue, Priority: models.PriorityHigh, EstimatedCost: 150})
	insert(t, items, &models.MaintenanceItem{ID: "M002", VehicleID: "V2", Type: "Inspection", Status: models.StatusDueSoon, Priority: models.PriorityMedium, EstimatedCost: 100})
	insert(t, items, &models.MaintenanceItem{ID: "M003", VehicleID: "V3", Type: "Brakes", Status: models.StatusInProgress, Priority: models.PriorityHigh, EstimatedCost: 50})
	insert(t, items, &models.MaintenanceItem{ID: "M004", VehicleID: "V1", Type: "Coolant Flush", Status: models.StatusCompleted, EstimatedCost: 175, ActualCost: cost(190)})
	insert(t, items, &models.MaintenanceItem{ID: "M005", VehicleID: "V2", Type: "Wipers", Status: models.StatusCancelled, EstimatedCost: 45})

	s, err := agg.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Total != 5 {
		t.Errorf("total = %d, want 5", s.Total)
	}
	if s.Overdue != 1 || s.DueSoon != 1 {
		t.Errorf("overdue/dueSoon = %d/%d, want 1/1", s.Overdue, s.DueSoon)
	}
	if s.ByPriority[models.PriorityHigh] != 2 {
		t.Errorf("high priority = %d, want 2", s.ByPriority[models.PriorityHigh])
	}
	// Estimated sums active work only; completed and cancelled are out.
	if s.EstimatedCost != 300 {
		t.Errorf("estimated = %v, want 300", s.EstimatedCost)
	}
	if s.ActualCost != 190 {
		t.Errorf("actual = %v, want 190", s.ActualCost)
	}
}

func TestCostsVariance(t *testing.T) {
	agg, items, _ := testAggregator(t)

	insert(t, items, &models.MaintenanceItem{ID: "M001", VehicleID: "V1", Type: "Oil Change", Status: models.StatusCompleted, EstimatedCost: 300, ActualCost: cost(120)})

	c, err := agg.Costs(context.Background())
	if err != nil {
		t.Fatalf("costs: %v", err)
	}
	if c.TotalEstimated != 300 || c.TotalActual != 120 {
		t.Fatalf("totals = %v/%v", c.TotalEstimated, c.TotalActual)
	}
	if c.Variance != -180 {
		t.Errorf("variance = %v, want -180", c.Variance)
	}
	if c.VariancePercent != -60 {
		t.Errorf("variance%% = %v, want -60", c.VariancePercent)
	}
}

func TestCostsZeroEstimateGuard(t *testing.T) {
	agg, items, _ := testAggregator(t)
	insert(t, items, &models.MaintenanceItem{ID: "M001", VehicleID: "V1", Type: "Software Update", Status: models.StatusCompleted, ActualCost: cost(80)})

	c, err := agg.Costs(context.Background())
	if err != nil {
		t.Fatalf("costs: %v", err)
	}
	if c.VariancePercent != 0 {
		t.Errorf("variance%% = %v, want 0 on zero estimate", c.VariancePercent)
	}
}

func TestCostsBreakdowns(t *testing.T) {
	agg, items, _ := testAggregator(t)

	insert(t, items, &models.MaintenanceItem{ID: "M001", VehicleID: "V1", Type: "Oil Change", Status: models.StatusScheduled, EstimatedCost: 150})
	insert(t, items, &models.MaintenanceItem{ID: "M002", VehicleID: "V1", Type: "Brakes", Status: models.StatusCompleted, EstimatedCost: 850, ActualCost: cost(900)})
	insert(t, items, &models.MaintenanceItem{ID: "M003", VehicleID: "V2", Type: "Oil Change", Status: models.StatusScheduled, EstimatedCost: 150})

	c, err := agg.Costs(context.Background())
	if err != nil {
		t.Fatalf("costs: %v", err)
	}

	vehicles := map[string]VehicleCost{}
	for _, v := range c.ByVehicle {
		vehicles[v.VehicleID] = v
	}
	if v := vehicles["V1"]; v.EstimatedCost != 1000 || v.ActualCost != 900 {
		t.Errorf("V1 = %+v", v)
	}
	if v := vehicles["V2"]; v.EstimatedCost != 150 || v.ActualCost != 0 {
		t.Errorf("V2 = %+v", v)
	}

	types := map[string]TypeCost{}
	for _, tc := range c.ByType {
		types[tc.Type] = tc
	}
	if tc := types["Oil Change"]; tc.Count != 2 || tc.EstimatedCost != 300 {
		t.Errorf("oil change = %+v", tc)
	}
	if tc := types["Brakes"]; tc.Count != 1 || tc.ActualCost != 900 {
		t.Errorf("brakes = %+v", tc)
	}
}

func TestTrendsMonthly(t *testing.T) {
	agg, items, clock := testAggregator(t)
	now := clock.Now()

	// One item this month, two last month (one completed), one far outside
	// the window.
	insert(t, items, &models.MaintenanceItem{ID: "M001", VehicleID: "V1", Type: "A", Status: models.StatusScheduled, EstimatedCost: 100, CreatedAt: now})
	insert(t, items, &models.MaintenanceItem{ID: "M002", VehicleID: "V2", Type: "B", Status: models.StatusScheduled, EstimatedCost: 200, CreatedAt: now.AddDate(0, -1, 0)})
	insert(t, items, &models.MaintenanceItem{ID: "M003", VehicleID: "V3", Type: "C", Status: models.StatusCompleted, EstimatedCost: 50, ActualCost: cost(60), CreatedAt: now.AddDate(0, -1, 0)})
	insert(t, items, &models.MaintenanceItem{ID: "M004", VehicleID: "V4", Type: "D", Status: models.StatusScheduled, EstimatedCost: 999, CreatedAt: now.AddDate(-2, 0, 0)})

	buckets, err := agg.Trends(context.Background(), "month", 3)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(buckets))
	}
	// Oldest to newest; the last bucket is the current month.
	if !buckets[0].Start.Before(buckets[1].Start) || !buckets[1].Start.Before(buckets[2].Start) {
		t.Fatalf("buckets not ascending: %+v", buckets)
	}
	last := buckets[2]
	if last.Items != 1 || last.EstimatedCost != 100 {
		t.Errorf("current month = %+v", last)
	}
	prev := buckets[1]
	if prev.Items != 2 || prev.Completed != 1 || prev.EstimatedCost != 250 || prev.ActualCost != 60 {
		t.Errorf("previous month = %+v", prev)
	}
	if buckets[0].Items != 0 {
		t.Errorf("oldest bucket = %+v, want empty", buckets[0])
	}
}

func TestTrendsRejectsUnknownPeriod(t *testing.T) {
	agg, _, _ := testAggregator(t)
	_, err := agg.Trends(context.Background(), "fortnight", 3)
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestTrendsDefaultLimit(t *testing.T) {
	agg, _, _ := testAggregator(t)
	buckets, err := agg.Trends(context.Background(), "week", 0)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(buckets) != defaultTrendBuckets {
		t.Fatalf("buckets = %d, want %d", len(buckets), defaultTrendBuckets)
	}
}

func TestPeriodLabels(t *testing.T) {
	ts := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		period string
		want   string
	}{
		{"month", "2024-05"},
		{"quarter", "2024-Q2"},
		{"year", "2024"},
		{"week", "2024-W20"},
	}
	for _, tc := range cases {
		got := periodLabel(periodStart(ts, tc.period), tc.period)
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.period, got, tc.want)
		}
	}
}
