// Package analytics folds maintenance items into fleet-level summaries, cost
// breakdowns, and creation trends.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
)

// Aggregator computes read-only analytics over the maintenance store.
type Aggregator struct {
	items store.MaintenanceStore
	clock clockz.Clock
}

// NewAggregator builds an Aggregator over the given store.
func NewAggregator(items store.MaintenanceStore) *Aggregator {
	return &Aggregator{items: items}
}

// WithClock sets a custom clock for testing.
func (a *Aggregator) WithClock(clock clockz.Clock) *Aggregator {
	a.clock = clock
	return a
}

func (a *Aggregator) now() time.Time {
	if a.clock == nil {
		return clockz.RealClock.Now()
	}
	return a.clock.Now()
}

// Summary is the fleet-wide status snapshot.
type Summary struct {
	Total         int                     `json:"total"`
	ByStatus      map[models.Status]int   `json:"byStatus"`
	ByPriority    map[models.Priority]int `json:"byPriority"`
	Overdue       int                     `json:"overdue"`
	DueSoon       int                     `json:"dueSoon"`
	EstimatedCost float64                 `json:"estimatedCost"`
	ActualCost    float64                 `json:"actualCost"`
}

// Summary counts items per status and priority. EstimatedCost sums over items
// still carrying pending or ongoing work; ActualCost sums over completed items
// with a recorded actual.
func (a *Aggregator) Summary(ctx context.Context) (*Summary, error) {
	items, err := a.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: summary: %w", err)
	}

	s := &Summary{
		Total:      len(items),
		ByStatus:   make(map[models.Status]int),
		ByPriority: make(map[models.Priority]int),
	}
	for i := range items {
		it := &items[i]
		s.ByStatus[it.Status]++
		s.ByPriority[it.Priority]++
		if it.Status.Active() {
			s.EstimatedCost += it.EstimatedCost
		}
		if it.Status == models.StatusCompleted && it.ActualCost != nil {
			s.ActualCost += *it.ActualCost
		}
	}
	s.Overdue = s.ByStatus[models.StatusOverdue]
	s.DueSoon = s.ByStatus[models.StatusDueSoon]
	return s, nil
}

// VehicleCost is the per-vehicle slice of the cost breakdown.
type VehicleCost struct {
	VehicleID     string  `json:"vehicleId"`
	EstimatedCost float64 `json:"estimatedCost"`
	ActualCost    float64 `json:"actualCost"`
}

// TypeCost is the per-maintenance-type slice of the cost breakdown.
type TypeCost struct {
	Type          string  `json:"type"`
	Count         int     `json:"count"`
	EstimatedCost float64 `json:"estimatedCost"`
	ActualCost    float64 `json:"actualCost"`
}

// CostAnalytics compares estimated against recorded spend.
type CostAnalytics struct {
	TotalEstimated  float64       `json:"totalEstimated"`
	TotalActual     float64       `json:"totalActual"`
	Variance        float64       `json:"variance"`
	VariancePercent float64       `json:"variancePercent"`
	ByVehicle       []VehicleCost `json:"byVehicle"`
	ByType          []TypeCost    `json:"byType"`
}

// Costs sums estimated cost over every item and actual cost where recorded.
// Variance is actual minus estimated; the percentage guards the zero-estimate
// case.
func (a *Aggregator) Costs(ctx context.Context) (*CostAnalytics, error) {
	items, err := a.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: costs: %w", err)
	}

	c := &CostAnalytics{}
	byVehicle := map[string]*VehicleCost{}
	byType := map[string]*TypeCost{}
	var vehicleOrder, typeOrder []string

	for i := range items {
		it := &items[i]
		actual := 0.0
		if it.ActualCost != nil {
			actual = *it.ActualCost
		}
		c.TotalEstimated += it.EstimatedCost
		c.TotalActual += actual

		v, ok := byVehicle[it.VehicleID]
		if !ok {
			v = &VehicleCost{VehicleID: it.VehicleID}
			byVehicle[it.VehicleID] = v
			vehicleOrder = append(vehicleOrder, it.VehicleID)
		}
		v.EstimatedCost += it.EstimatedCost
		v.ActualCost += actual

		tc, ok := byType[it.Type]
		if !ok {
			tc = &TypeCost{Type: it.Type}
			byType[it.Type] = tc
			typeOrder = append(typeOrder, it.Type)
		}
		tc.Count++
		tc.EstimatedCost += it.EstimatedCost
		tc.ActualCost += actual
	}

	c.Variance = c.TotalActual - c.TotalEstimated
	if c.TotalEstimated != 0 {
		c.VariancePercent = c.Variance / c.TotalEstimated * 100
	}
	for _, id := range vehicleOrder {
		c.ByVehicle = append(c.ByVehicle, *byVehicle[id])
	}
	for _, name := range typeOrder {
		c.ByType = append(c.ByType, *byType[name])
	}
	return c, nil
}

// TrendBucket is one period's slice of the creation trend.
type TrendBucket struct {
	Period        string    `json:"period"`
	Start         time.Time `json:"start"`
	Items         int       `json:"items"`
	Completed     int       `json:"completed"`
	EstimatedCost float64   `json:"estimatedCost"`
	ActualCost    float64   `json:"actualCost"`
}

const defaultTrendBuckets = 6

// Trends buckets items by CreatedAt into limit consecutive periods ending at
// the current one, oldest first. Period is one of week, month, quarter, year.
func (a *Aggregator) Trends(ctx context.Context, period string, limit int) ([]TrendBucket, error) {
	switch period {
	case "week", "month", "quarter", "year":
	default:
		return nil, store.Invalidf("period", "unknown value %q", period)
	}
	if limit <= 0 {
		limit = defaultTrendBuckets
	}

	items, err := a.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: trends: %w", err)
	}

	// Build bucket starts oldest to newest, ending at the current period.
	current := periodStart(a.now(), period)
	starts := make([]time.Time, limit)
	for i := 0; i < limit; i++ {
		starts[limit-1-i] = shiftPeriods(current, period, -i)
	}

	buckets := make([]TrendBucket, limit)
	for i, start := range starts {
		buckets[i] = TrendBucket{Period: periodLabel(start, period), Start: start}
	}

	for i := range items {
		it := &items[i]
		start := periodStart(it.CreatedAt, period)
		for b := range buckets {
			if !buckets[b].Start.Equal(start) {
				continue
			}
			buckets[b].Items++
			if it.Status == models.StatusCompleted {
				buckets[b].Completed++
			}
			buckets[b].EstimatedCost += it.EstimatedCost
			if it.ActualCost != nil {
				buckets[b].ActualCost += *it.ActualCost
			}
			break
		}
	}
	return buckets, nil
}

// periodStart truncates t to the start of its period. Weeks start on Monday.
// Everything is normalized to UTC so stored and freshly-computed timestamps
// bucket identically regardless of their source location.
func periodStart(t time.Time, period string) time.Time {
	t = t.UTC()
	y, m, d := t.Date()
	switch period {
	case "week":
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7 // Monday=0
		return day.AddDate(0, 0, -offset)
	case "month":
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case "quarter":
		qm := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, qm, 1, 0, 0, 0, 0, t.Location())
	default: // year
		return time.Date(y, 1, 1, 0, 0, 0, 0, t.Location())
	}
}

// shiftPeriods moves a period start by n periods (negative moves back).
func shiftPeriods(start time.Time, period string, n int) time.Time {
	switch period {
	case "week":
		return start.AddDate(0, 0, 7*n)
	case "month":
		return start.AddDate(0, n, 0)
	case "quarter":
		return start.AddDate(0, 3*n, 0)
	default: // year
		return start.AddDate(n, 0, 0)
	}
}

func periodLabel(start time.Time, period string) string {
	switch period {
	case "week":
		y, w := start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case "month":
		return start.Format("2006-01")
	case "quarter":
		return fmt.Sprintf("%d-Q%d", start.Year(), (int(start.Month())-1)/3+1)
	default: // year
		return start.Format("2006")
	}
}
