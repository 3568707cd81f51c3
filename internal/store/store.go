// Package store persists fleet entities behind per-entity interfaces so
// services and handlers stay decoupled from GORM.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
)

// ErrNotFound reports that the requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// ValidationError reports caller input that cannot be accepted. Services
// return it so transports can distinguish bad requests from internal faults.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Invalidf builds a ValidationError for field with a formatted reason.
func Invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Page selects one page of a listing. Number is 1-based; Size of 0 means
// the default page size.
type Page struct {
	Number int
	Size   int
}

// DefaultPageSize applies when Page.Size is unset.
const DefaultPageSize = 20

// MaintenanceFilter narrows a maintenance item listing. Zero values mean
// "any"; every set field must match (AND). Search matches description, type,
// and vehicle ID substrings.
type MaintenanceFilter struct {
	VehicleID  string
	Statuses   []models.Status
	Priorities []models.Priority
	Assignee   string
	Type       string
	Search     string
	DueFrom    *time.Time
	DueTo      *time.Time
}

// MaintenancePage is one page of maintenance items plus paging totals.
type MaintenancePage struct {
	Items []models.MaintenanceItem
	Total int64
	Page  int
	Pages int
}

// MaintenanceStore persists maintenance items. List orders by status urgency
// descending, then priority descending, then due date ascending.
type MaintenanceStore interface {
	Get(ctx context.Context, id string) (*models.MaintenanceItem, error)
	Insert(ctx context.Context, item *models.MaintenanceItem) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MaintenanceFilter, p Page) (*MaintenancePage, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]models.MaintenanceItem, error)
	ListByStatuses(ctx context.Context, statuses ...models.Status) ([]models.MaintenanceItem, error)
	All(ctx context.Context) ([]models.MaintenanceItem, error)
	MaxIDWithPrefix(ctx context.Context, prefix string) (int, error)
}

// TechnicianStore persists technicians.
type TechnicianStore interface {
	Get(ctx context.Context, id string) (*models.Technician, error)
	Insert(ctx context.Context, tech *models.Technician) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status models.TechnicianStatus) ([]models.Technician, error)
	MaxIDWithPrefix(ctx context.Context, prefix string) (int, error)
}

// PartStore persists inventory parts.
type PartStore interface {
	Get(ctx context.Context, id string) (*models.Part, error)
	Insert(ctx context.Context, part *models.Part) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string) ([]models.Part, error)
	MaxIDWithPrefix(ctx context.Context, prefix string) (int, error)
}

// ScheduleStore persists recurring schedules.
type ScheduleStore interface {
	Get(ctx context.Context, id string) (*models.RecurringSchedule, error)
	Insert(ctx context.Context, sched *models.RecurringSchedule) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]models.RecurringSchedule, error)
	MaxIDWithPrefix(ctx context.Context, prefix string) (int, error)
}

// Stores bundles one store per entity over a shared connection.
type Stores struct {
	Maintenance MaintenanceStore
	Technicians TechnicianStore
	Parts       PartStore
	Schedules   ScheduleStore
}
