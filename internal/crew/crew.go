// Package crew manages the technician roster.
package crew

import (
	"context"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
)

// IDPrefix is the display-ID prefix for technicians.
const IDPrefix = "TECH-"

// Service owns technician lifecycle operations.
type Service struct {
	techs store.TechnicianStore
	ids   *store.IDAllocator
	clock clockz.Clock
}

// NewService builds a Service over the given store.
func NewService(techs store.TechnicianStore) *Service {
	return &Service{techs: techs, ids: &store.IDAllocator{}}
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

// CreateOpts holds parameters for adding a technician.
type CreateOpts struct {
	ID             string // normally empty; the seeder may pin it
	Name           string
	Email          string
	Phone          string
	Specialization []string
	Status         models.TechnicianStatus // defaults to available
	Rating         float64
	Certifications []string
	HourlyRate     float64
	JoinDate       time.Time // defaults to now
}

// Create validates opts, allocates a TECH-prefixed ID, and persists the
// technician.
func (s *Service) Create(ctx context.Context, opts CreateOpts) (*models.Technician, error) {
	if opts.Name == "" {
		return nil, store.Invalidf("name", "is required")
	}
	if opts.Status == "" {
		opts.Status = models.TechnicianAvailable
	}
	if !opts.Status.Valid() {
		return nil, store.Invalidf("status", "unknown value %q", opts.Status)
	}
	if opts.Rating < 0 || opts.Rating > 5 {
		return nil, store.Invalidf("rating", "must be between 0 and 5")
	}
	if opts.HourlyRate < 0 {
		return nil, store.Invalidf("hourlyRate", "must not be negative")
	}

	id := opts.ID
	if id == "" {
		var err error
		if id, err = s.ids.Next(ctx, s.techs, IDPrefix); err != nil {
			return nil, err
		}
	}
	joined := opts.JoinDate
	if joined.IsZero() {
		joined = s.now()
	}

	tech := &models.Technician{
		ID:             id,
		Name:           opts.Name,
		Email:          opts.Email,
		Phone:          opts.Phone,
		Specialization: models.StringList(opts.Specialization),
		Status:         opts.Status,
		Rating:         opts.Rating,
		Certifications: models.StringList(opts.Certifications),
		HourlyRate:     opts.HourlyRate,
		JoinDate:       joined,
	}
	if err := s.techs.Insert(ctx, tech); err != nil {
		return nil, err
	}
	return tech, nil
}

// UpdateOpts holds a partial technician update. Nil fields are left untouched.
type UpdateOpts struct {
	Name           *string
	Email          *string
	Phone          *string
	Specialization *[]string
	Status         *models.TechnicianStatus
	Rating         *float64
	CompletedJobs  *int
	ActiveJobs     *int
	Certifications *[]string
	HourlyRate     *float64
}

// Update applies the set fields of opts to an existing technician.
func (s *Service) Update(ctx context.Context, id string, opts UpdateOpts) (*models.Technician, error) {
	if _, err := s.techs.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if opts.Name != nil {
		if *opts.Name == "" {
			return nil, store.Invalidf("name", "must not be empty")
		}
		fields["name"] = *opts.Name
	}
	if opts.Email != nil {
		fields["email"] = *opts.Email
	}
	if opts.Phone != nil {
		fields["phone"] = *opts.Phone
	}
	if opts.Specialization != nil {
		fields["specialization"] = models.StringList(*opts.Specialization)
	}
	if opts.Status != nil {
		if !opts.Status.Valid() {
			return nil, store.Invalidf("status", "unknown value %q", *opts.Status)
		}
		fields["status"] = *opts.Status
	}
	if opts.Rating != nil {
		if *opts.Rating < 0 || *opts.Rating > 5 {
			return nil, store.Invalidf("rating", "must be between 0 and 5")
		}
		fields["rating"] = *opts.Rating
	}
	if opts.CompletedJobs != nil {
		if *opts.CompletedJobs < 0 {
			return nil, store.Invalidf("completedJobs", "must not be negative")
		}
		fields["completed_jobs"] = *opts.CompletedJobs
	}
	if opts.ActiveJobs != nil {
		if *opts.ActiveJobs < 0 {
			return nil, store.Invalidf("activeJobs", "must not be negative")
		}
		fields["active_jobs"] = *opts.ActiveJobs
	}
	if opts.Certifications != nil {
		fields["certifications"] = models.StringList(*opts.Certifications)
	}
	if opts.HourlyRate != nil {
		if *opts.HourlyRate < 0 {
			return nil, store.Invalidf("hourlyRate", "must not be negative")
		}
		fields["hourly_rate"] = *opts.HourlyRate
	}

	// Even an empty patch refreshes UpdatedAt.
	fields["updated_at"] = s.now()
	if err := s.techs.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.techs.Get(ctx, id)
}

// Get returns one technician by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Technician, error) {
	return s.techs.Get(ctx, id)
}

// Delete removes one technician by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.techs.Delete(ctx, id)
}

// List returns technicians ordered by name, optionally filtered by status.
func (s *Service) List(ctx context.Context, status models.TechnicianStatus) ([]models.Technician, error) {
	if status != "" && !status.Valid() {
		return nil, store.Invalidf("status", "unknown value %q", status)
	}
	return s.techs.List(ctx, status)
}
