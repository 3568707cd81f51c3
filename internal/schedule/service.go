package schedule

import (
	"context"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
)

// IDPrefix is the display-ID prefix for recurring schedules.
const IDPrefix = "RS-"

// Service owns recurring schedule lifecycle operations.
type Service struct {
	schedules store.ScheduleStore
	ids       *store.IDAllocator
	clock     clockz.Clock
}

// NewService builds a Service over the given store.
func NewService(schedules store.ScheduleStore) *Service {
	return &Service{schedules: schedules, ids: &store.IDAllocator{}}
}

// WithClock sets a custom clock for testing.
func (s *Service) WithClock(clock clockz.Clock) *Service {
	s.clock = clock
	return s
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return clockz.RealClock.Now()
	}
	return s.clock.Now()
}

// CreateOpts holds parameters for creating a recurring schedule.
type CreateOpts struct {
	ID                string // normally empty; the seeder may pin it
	Name              string
	VehicleID         string
	MaintenanceType   string
	Description       string
	Frequency         models.Frequency
	FrequencyValue    int
	EstimatedCost     float64
	EstimatedDuration float64
	AssignedTo        string
}

// Create validates opts, allocates an RS-prefixed ID, projects the first
// occurrence from now, and persists the schedule as active.
func (s *Service) Create(ctx context.Context, opts CreateOpts) (*models.RecurringSchedule, error) {
	if opts.Name == "" {
		return nil, store.Invalidf("name", "is required")
	}
	if opts.VehicleID == "" {
		return nil, store.Invalidf("vehicleId", "is required")
	}
	if opts.MaintenanceType == "" {
		return nil, store.Invalidf("maintenanceType", "is required")
	}
	if !opts.Frequency.Valid() {
		return nil, store.Invalidf("frequency", "unknown value %q", opts.Frequency)
	}
	if opts.FrequencyValue < 1 {
		return nil, store.Invalidf("frequencyValue", "must be at least 1")
	}
	if opts.EstimatedCost < 0 {
		return nil, store.Invalidf("estimatedCost", "must not be negative")
	}
	if opts.EstimatedDuration < 0 {
		return nil, store.Invalidf("estimatedDuration", "must not be negative")
	}

	id := opts.ID
	if id == "" {
		var err error
		if id, err = s.ids.Next(ctx, s.schedules, IDPrefix); err != nil {
			return nil, err
		}
	}

	now := s.now()
	sched := &models.RecurringSchedule{
		ID:                id,
		Name:              opts.Name,
		VehicleID:         opts.VehicleID,
		MaintenanceType:   opts.MaintenanceType,
		Description:       opts.Description,
		Frequency:         opts.Frequency,
		FrequencyValue:    opts.FrequencyValue,
		EstimatedCost:     opts.EstimatedCost,
		EstimatedDuration: opts.EstimatedDuration,
		AssignedTo:        opts.AssignedTo,
		IsActive:          true,
		NextScheduled:     Project(now, opts.Frequency, opts.FrequencyValue),
	}
	if err := s.schedules.Insert(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// UpdateOpts holds a partial schedule update. Nil fields are left untouched.
type UpdateOpts struct {
	Name              *string
	Description       *string
	Frequency         *models.Frequency
	FrequencyValue    *int
	EstimatedCost     *float64
	EstimatedDuration *float64
	AssignedTo        *string
	IsActive          *bool
}

// Update applies the set fields of opts. Changing Frequency or FrequencyValue
// re-projects NextScheduled from LastExecuted (or now when the schedule never
// ran). Inactive schedules are not re-projected.
func (s *Service) Update(ctx context.Context, id string, opts UpdateOpts) (*models.RecurringSchedule, error) {
	existing, err := s.schedules.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if opts.Name != nil {
		if *opts.Name == "" {
			return nil, store.Invalidf("name", "must not be empty")
		}
		fields["name"] = *opts.Name
	}
	if opts.Description != nil {
		fields["description"] = *opts.Description
	}
	if opts.EstimatedCost != nil {
		if *opts.EstimatedCost < 0 {
			return nil, store.Invalidf("estimatedCost", "must not be negative")
		}
		fields["estimated_cost"] = *opts.EstimatedCost
	}
	if opts.EstimatedDuration != nil {
		if *opts.EstimatedDuration < 0 {
			return nil, store.Invalidf("estimatedDuration", "must not be negative")
		}
		fields["estimated_duration"] = *opts.EstimatedDuration
	}
	if opts.AssignedTo != nil {
		fields["assigned_to"] = *opts.AssignedTo
	}
	if opts.IsActive != nil {
		fields["is_active"] = *opts.IsActive
	}

	freq := existing.Frequency
	value := existing.FrequencyValue
	reproject := false
	if opts.Frequency != nil {
		if !opts.Frequency.Valid() {
			return nil, store.Invalidf("frequency", "unknown value %q", *opts.Frequency)
		}
		freq = *opts.Frequency
		fields["frequency"] = freq
		reproject = true
	}
	if opts.FrequencyValue != nil {
		if *opts.FrequencyValue < 1 {
			return nil, store.Invalidf("frequencyValue", "must be at least 1")
		}
		value = *opts.FrequencyValue
		fields["frequency_value"] = value
		reproject = true
	}

	active := existing.IsActive
	if opts.IsActive != nil {
		active = *opts.IsActive
	}
	if reproject && active {
		anchor := s.now()
		if existing.LastExecuted != nil {
			anchor = *existing.LastExecuted
		}
		fields["next_scheduled"] = Project(anchor, freq, value)
	}

	// Even an empty patch refreshes UpdatedAt.
	fields["updated_at"] = s.now()
	if err := s.schedules.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.schedules.Get(ctx, id)
}

// MarkExecuted records one completed occurrence: LastExecuted moves to now,
// TotalExecutions increments, and the next occurrence is projected from now.
func (s *Service) MarkExecuted(ctx context.Context, id string) (*models.RecurringSchedule, error) {
	existing, err := s.schedules.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	err = s.schedules.UpdateFields(ctx, id, map[string]any{
		"last_executed":    now,
		"total_executions": existing.TotalExecutions + 1,
		"next_scheduled":   Project(now, existing.Frequency, existing.FrequencyValue),
	})
	if err != nil {
		return nil, err
	}
	return s.schedules.Get(ctx, id)
}

// Get returns one schedule by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.RecurringSchedule, error) {
	return s.schedules.Get(ctx, id)
}

// Delete removes one schedule by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.schedules.Delete(ctx, id)
}

// List returns schedules ordered by next occurrence.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]models.RecurringSchedule, error) {
	return s.schedules.List(ctx, activeOnly)
}
