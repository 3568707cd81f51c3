// Package inventory manages the spare parts stock.
package inventory

import (
	"context"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/zoobzio/clockz"
)

// IDPrefix is the display-ID prefix for parts.
const IDPrefix = "PART-"

// Service owns part lifecycle operations.
type Service struct {
	parts store.PartStore
	ids   *store.IDAllocator
	clock clockz.Clock
}

// NewService builds a Service over the given store.
func NewService(parts store.PartStore) *Service {
	return &Service{parts: parts, ids: &store.IDAllocator{}}
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

// CreateOpts holds parameters for adding a part.
type CreateOpts struct {
	ID          string // normally empty; the seeder may pin it
	Name        string
	PartNumber  string
	Category    string
	Quantity    int
	MinQuantity int
	UnitCost    float64
	Supplier    string
	Location    string
	UsedIn      []string
}

// Create validates opts, allocates a PART-prefixed ID, and persists the part.
// A part entering stock with a positive quantity gets its restock stamp.
func (s *Service) Create(ctx context.Context, opts CreateOpts) (*models.Part, error) {
	if opts.Name == "" {
		return nil, store.Invalidf("name", "is required")
	}
	if opts.PartNumber == "" {
		return nil, store.Invalidf("partNumber", "is required")
	}
	if opts.Quantity < 0 || opts.MinQuantity < 0 {
		return nil, store.Invalidf("quantity", "must not be negative")
	}
	if opts.UnitCost < 0 {
		return nil, store.Invalidf("unitCost", "must not be negative")
	}

	id := opts.ID
	if id == "" {
		var err error
		if id, err = s.ids.Next(ctx, s.parts, IDPrefix); err != nil {
			return nil, err
		}
	}

	part := &models.Part{
		ID:          id,
		Name:        opts.Name,
		PartNumber:  opts.PartNumber,
		Category:    opts.Category,
		Quantity:    opts.Quantity,
		MinQuantity: opts.MinQuantity,
		UnitCost:    opts.UnitCost,
		Supplier:    opts.Supplier,
		Location:    opts.Location,
		UsedIn:      models.StringList(opts.UsedIn),
	}
	if opts.Quantity > 0 {
		now := s.now()
		part.LastRestocked = &now
	}
	if err := s.parts.Insert(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// UpdateOpts holds a partial part update. Nil fields are left untouched.
type UpdateOpts struct {
	Name        *string
	Category    *string
	Quantity    *int
	MinQuantity *int
	UnitCost    *float64
	Supplier    *string
	Location    *string
	UsedIn      *[]string
}

// Update applies the set fields of opts. Raising Quantity above its current
// value counts as a restock and stamps LastRestocked; draws and corrections
// downward leave the stamp alone.
func (s *Service) Update(ctx context.Context, id string, opts UpdateOpts) (*models.Part, error) {
	existing, err := s.parts.Get(ctx, id)
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
	if opts.Category != nil {
		fields["category"] = *opts.Category
	}
	if opts.Quantity != nil {
		if *opts.Quantity < 0 {
			return nil, store.Invalidf("quantity", "must not be negative")
		}
		fields["quantity"] = *opts.Quantity
		if *opts.Quantity > existing.Quantity {
			fields["last_restocked"] = s.now()
		}
	}
	if opts.MinQuantity != nil {
		if *opts.MinQuantity < 0 {
			return nil, store.Invalidf("minQuantity", "must not be negative")
		}
		fields["min_quantity"] = *opts.MinQuantity
	}
	if opts.UnitCost != nil {
		if *opts.UnitCost < 0 {
			return nil, store.Invalidf("unitCost", "must not be negative")
		}
		fields["unit_cost"] = *opts.UnitCost
	}
	if opts.Supplier != nil {
		fields["supplier"] = *opts.Supplier
	}
	if opts.Location != nil {
		fields["location"] = *opts.Location
	}
	if opts.UsedIn != nil {
		fields["used_in"] = models.StringList(*opts.UsedIn)
	}

	// Even an empty patch refreshes UpdatedAt.
	fields["updated_at"] = s.now()
	if err := s.parts.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.parts.Get(ctx, id)
}

// Get returns one part by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Part, error) {
	return s.parts.Get(ctx, id)
}

// Delete removes one part by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.parts.Delete(ctx, id)
}

// List returns parts ordered by name, optionally filtered by category.
func (s *Service) List(ctx context.Context, category string) ([]models.Part, error) {
	return s.parts.List(ctx, category)
}

// LowStock returns the parts at or below their minimum quantity.
func (s *Service) LowStock(ctx context.Context) ([]models.Part, error) {
	parts, err := s.parts.List(ctx, "")
	if err != nil {
		return nil, err
	}
	low := parts[:0:0]
	for _, p := range parts {
		if p.Quantity <= p.MinQuantity {
			low = append(low, p)
		}
	}
	return low, nil
}
