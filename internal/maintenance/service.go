package maintenance

import (
	"context"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
)

// IDPrefix is the display-ID prefix for maintenance items.
const IDPrefix = "M"

// Service owns maintenance item lifecycle operations on top of the store.
type Service struct {
	items store.MaintenanceStore
	ids   *store.IDAllocator
	clock clockz.Clock
}

// NewService builds a Service over the given store.
func NewService(items store.MaintenanceStore) *Service {
	return &Service{items: items, ids: &store.IDAllocator{}}
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

// CreateOpts holds parameters for creating a maintenance item. ID and Status
// are normally left empty and derived (allocator, classifier); the seeder and
// imports may pin them.
type CreateOpts struct {
	ID                 string
	Status             models.Status
	VehicleID          string
	Type               string
	Description        string
	Priority           models.Priority
	DueDate            time.Time
	ScheduledDate      *time.Time
	CurrentMileage     int
	DueMileage         int
	EstimatedCost      float64
	AssignedTo         string
	AssignedTechnician string
	Notes              string
	PartsNeeded        models.PartLines
	Attachments        models.Attachments
}

// Create validates opts, allocates the next M-prefixed ID, classifies the
// item's initial urgency, and persists it.
func (s *Service) Create(ctx context.Context, opts CreateOpts) (*models.MaintenanceItem, error) {
	if opts.VehicleID == "" {
		return nil, store.Invalidf("vehicleId", "is required")
	}
	if opts.Type == "" {
		return nil, store.Invalidf("type", "is required")
	}
	if opts.DueDate.IsZero() {
		return nil, store.Invalidf("dueDate", "is required")
	}
	if opts.Priority == "" {
		return nil, store.Invalidf("priority", "is required")
	}
	if !opts.Priority.Valid() {
		return nil, store.Invalidf("priority", "unknown value %q", opts.Priority)
	}
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, store.Invalidf("status", "unknown value %q", opts.Status)
	}
	if opts.CurrentMileage < 0 {
		return nil, store.Invalidf("currentMileage", "must not be negative")
	}
	if opts.DueMileage <= 0 {
		return nil, store.Invalidf("dueMileage", "is required")
	}
	if opts.DueMileage < opts.CurrentMileage {
		return nil, store.Invalidf("dueMileage", "must not be below currentMileage")
	}
	if opts.EstimatedCost < 0 {
		return nil, store.Invalidf("estimatedCost", "must not be negative")
	}

	id := opts.ID
	if id == "" {
		var err error
		if id, err = s.ids.Next(ctx, s.items, IDPrefix); err != nil {
			return nil, err
		}
	}
	status := opts.Status
	now := s.now()
	if status == "" {
		status = Classify(opts.DueDate, opts.CurrentMileage, opts.DueMileage, now)
	}

	item := &models.MaintenanceItem{
		ID:                 id,
		VehicleID:          opts.VehicleID,
		Type:               opts.Type,
		Description:        opts.Description,
		Status:             status,
		Priority:           opts.Priority,
		DueDate:            opts.DueDate,
		ScheduledDate:      opts.ScheduledDate,
		CurrentMileage:     opts.CurrentMileage,
		DueMileage:         opts.DueMileage,
		EstimatedCost:      opts.EstimatedCost,
		AssignedTo:         opts.AssignedTo,
		AssignedTechnician: opts.AssignedTechnician,
		Notes:              opts.Notes,
		PartsNeeded:        opts.PartsNeeded,
		Attachments:        opts.Attachments,
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateOpts holds a partial update. Nil fields are left untouched.
type UpdateOpts struct {
	Type               *string
	Description        *string
	Status             *models.Status
	Priority           *models.Priority
	DueDate            *time.Time
	ScheduledDate      *time.Time
	CurrentMileage     *int
	DueMileage         *int
	EstimatedCost      *float64
	ActualCost         *float64
	AssignedTo         *string
	AssignedTechnician *string
	Notes              *string
	PartsNeeded        *models.PartLines
	Attachments        *models.Attachments

	// ClearScheduledDate and ClearActualCost null the stored value and win
	// over the corresponding pointer field. CompletedDate has no clear flag;
	// once stamped it stays.
	ClearScheduledDate bool
	ClearActualCost    bool
}

// Update applies the set fields of opts to an existing item. Moving an item
// to completed stamps CompletedDate once; a later re-completion keeps the
// original stamp. Statuses are not re-derived here; the reconciler owns that.
func (s *Service) Update(ctx context.Context, id string, opts UpdateOpts) (*models.MaintenanceItem, error) {
	existing, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if opts.Type != nil {
		if *opts.Type == "" {
			return nil, store.Invalidf("type", "must not be empty")
		}
		fields["type"] = *opts.Type
	}
	if opts.Description != nil {
		fields["description"] = *opts.Description
	}
	if opts.Status != nil {
		if !opts.Status.Valid() {
			return nil, store.Invalidf("status", "unknown value %q", *opts.Status)
		}
		fields["status"] = *opts.Status
		if *opts.Status == models.StatusCompleted && existing.CompletedDate == nil {
			fields["completed_date"] = s.now()
		}
	}
	if opts.Priority != nil {
		if !opts.Priority.Valid() {
			return nil, store.Invalidf("priority", "unknown value %q", *opts.Priority)
		}
		fields["priority"] = *opts.Priority
	}
	if opts.DueDate != nil {
		if opts.DueDate.IsZero() {
			return nil, store.Invalidf("dueDate", "must not be empty")
		}
		fields["due_date"] = *opts.DueDate
	}
	if opts.ScheduledDate != nil {
		fields["scheduled_date"] = *opts.ScheduledDate
	}
	if opts.CurrentMileage != nil {
		if *opts.CurrentMileage < 0 {
			return nil, store.Invalidf("currentMileage", "must not be negative")
		}
		fields["current_mileage"] = *opts.CurrentMileage
	}
	if opts.DueMileage != nil {
		if *opts.DueMileage < 0 {
			return nil, store.Invalidf("dueMileage", "must not be negative")
		}
		fields["due_mileage"] = *opts.DueMileage
	}
	if opts.EstimatedCost != nil {
		fields["estimated_cost"] = *opts.EstimatedCost
	}
	if opts.ActualCost != nil {
		fields["actual_cost"] = *opts.ActualCost
	}
	if opts.AssignedTo != nil {
		fields["assigned_to"] = *opts.AssignedTo
	}
	if opts.AssignedTechnician != nil {
		fields["assigned_technician"] = *opts.AssignedTechnician
	}
	if opts.Notes != nil {
		fields["notes"] = *opts.Notes
	}
	if opts.PartsNeeded != nil {
		fields["parts_needed"] = *opts.PartsNeeded
	}
	if opts.Attachments != nil {
		fields["attachments"] = *opts.Attachments
	}
	if opts.ClearScheduledDate {
		fields["scheduled_date"] = nil
	}
	if opts.ClearActualCost {
		fields["actual_cost"] = nil
	}

	// Even an empty patch refreshes UpdatedAt.
	fields["updated_at"] = s.now()
	if err := s.items.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.items.Get(ctx, id)
}

// Get returns one item by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.MaintenanceItem, error) {
	return s.items.Get(ctx, id)
}

// Delete removes one item by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// List returns a filtered, urgency-ordered page of items.
func (s *Service) List(ctx context.Context, f store.MaintenanceFilter, p store.Page) (*store.MaintenancePage, error) {
	return s.items.List(ctx, f, p)
}

// History returns every item ever recorded for a vehicle, newest due first.
func (s *Service) History(ctx context.Context, vehicleID string) ([]models.MaintenanceItem, error) {
	if vehicleID == "" {
		return nil, store.Invalidf("vehicleId", "is required")
	}
	return s.items.ListByVehicle(ctx, vehicleID)
}
