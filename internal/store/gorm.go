package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"gorm.io/gorm"
)

// New wires every entity store over db.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Maintenance: &maintenanceStore{db: db},
		Technicians: &technicianStore{db: db},
		Parts:       &partStore{db: db},
		Schedules:   &scheduleStore{db: db},
	}
}

// urgencyOrder ranks rows by status urgency, then priority, then due date.
// Ranks mirror Status.Rank and Priority.Rank.
const urgencyOrder = `
CASE status
  WHEN 'overdue' THEN 6 WHEN 'due_soon' THEN 5 WHEN 'scheduled' THEN 4
  WHEN 'in_progress' THEN 3 WHEN 'completed' THEN 2 WHEN 'cancelled' THEN 1
  ELSE 0 END DESC,
CASE priority
  WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2
  WHEN 'low' THEN 1 ELSE 0 END DESC,
due_date ASC`

// maxIDWithPrefix scans every ID with the given prefix and returns the largest
// numeric suffix. Lexical MAX would misorder once suffixes outgrow their
// zero padding, so the parse happens here.
func maxIDWithPrefix(ctx context.Context, db *gorm.DB, model any, prefix string) (int, error) {
	var ids []string
	err := db.WithContext(ctx).Model(model).
		Where("id LIKE ?", prefix+"%").Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("store: scan ids with prefix %q: %w", prefix, err)
	}
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func updateFields(ctx context.Context, db *gorm.DB, model any, what, id string, fields map[string]any) error {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("store: update %s %s: %w", what, id, res.Error)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
			return fmt.Errorf("store: update %s %s: %w", what, id, err)
		}
		if n == 0 {
			return ErrNotFound
		}
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, what, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return fmt.Errorf("store: delete %s %s: %w", what, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type maintenanceStore struct {
	db *gorm.DB
}

func (s *maintenanceStore) Get(ctx context.Context, id string) (*models.MaintenanceItem, error) {
	var item models.MaintenanceItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get maintenance item %s: %w", id, err)
	}
	return &item, nil
}

func (s *maintenanceStore) Insert(ctx context.Context, item *models.MaintenanceItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("store: insert maintenance item %s: %w", item.ID, err)
	}
	return nil
}

func (s *maintenanceStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return updateFields(ctx, s.db, &models.MaintenanceItem{}, "maintenance item", id, fields)
}

func (s *maintenanceStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, &models.MaintenanceItem{}, "maintenance item", id)
}

func (s *maintenanceStore) List(ctx context.Context, f MaintenanceFilter, p Page) (*MaintenancePage, error) {
	q := s.db.WithContext(ctx).Model(&models.MaintenanceItem{})
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if len(f.Priorities) > 0 {
		q = q.Where("priority IN ?", f.Priorities)
	}
	if f.Assignee != "" {
		q = q.Where("(assigned_to = ? OR assigned_technician = ?)", f.Assignee, f.Assignee)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.DueFrom != nil {
		q = q.Where("due_date >= ?", *f.DueFrom)
	}
	if f.DueTo != nil {
		q = q.Where("due_date <= ?", *f.DueTo)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("(description LIKE ? OR type LIKE ? OR vehicle_id LIKE ?)", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("store: count maintenance items: %w", err)
	}

	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Number <= 0 {
		p.Number = 1
	}

	var items []models.MaintenanceItem
	err := q.Order(urgencyOrder).
		Offset((p.Number - 1) * p.Size).Limit(p.Size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("store: list maintenance items: %w", err)
	}

	pages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return &MaintenancePage{Items: items, Total: total, Page: p.Number, Pages: pages}, nil
}

func (s *maintenanceStore) ListByVehicle(ctx context.Context, vehicleID string) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("due_date DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("store: list maintenance items for vehicle %s: %w", vehicleID, err)
	}
	return items, nil
}

func (s *maintenanceStore) ListByStatuses(ctx context.Context, statuses ...models.Status) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	err := s.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("store: list maintenance items by status: %w", err)
	}
	return items, nil
}

func (s *maintenanceStore) All(ctx context.Context) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("store: list all maintenance items: %w", err)
	}
	return items, nil
}

func (s *maintenanceStore) MaxIDWithPrefix(ctx context.Context, prefix string) (int, error) {
	return maxIDWithPrefix(ctx, s.db, &models.MaintenanceItem{}, prefix)
}

type technicianStore struct {
	db *gorm.DB
}

func (s *technicianStore) Get(ctx context.Context, id string) (*models.Technician, error) {
	var tech models.Technician
	err := s.db.WithContext(ctx).First(&tech, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get technician %s: %w", id, err)
	}
	return &tech, nil
}

func (s *technicianStore) Insert(ctx context.Context, tech *models.Technician) error {
	if err := s.db.WithContext(ctx).Create(tech).Error; err != nil {
		return fmt.Errorf("store: insert technician %s: %w", tech.ID, err)
	}
	return nil
}

func (s *technicianStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return updateFields(ctx, s.db, &models.Technician{}, "technician", id, fields)
}

func (s *technicianStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, &models.Technician{}, "technician", id)
}

func (s *technicianStore) List(ctx context.Context, status models.TechnicianStatus) ([]models.Technician, error) {
	q := s.db.WithContext(ctx).Order("name ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var techs []models.Technician
	if err := q.Find(&techs).Error; err != nil {
		return nil, fmt.Errorf("store: list technicians: %w", err)
	}
	return techs, nil
}

func (s *technicianStore) MaxIDWithPrefix(ctx context.Context, prefix string) (int, error) {
	return maxIDWithPrefix(ctx, s.db, &models.Technician{}, prefix)
}

type partStore struct {
	db *gorm.DB
}

func (s *partStore) Get(ctx context.Context, id string) (*models.Part, error) {
	var part models.Part
	err := s.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get part %s: %w", id, err)
	}
	return &part, nil
}

func (s *partStore) Insert(ctx context.Context, part *models.Part) error {
	if err := s.db.WithContext(ctx).Create(part).Error; err != nil {
		return fmt.Errorf("store: insert part %s: %w", part.ID, err)
	}
	return nil
}

func (s *partStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return updateFields(ctx, s.db, &models.Part{}, "part", id, fields)
}

func (s *partStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, &models.Part{}, "part", id)
}

func (s *partStore) List(ctx context.Context, category string) ([]models.Part, error) {
	q := s.db.WithContext(ctx).Order("name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var parts []models.Part
	if err := q.Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("store: list parts: %w", err)
	}
	return parts, nil
}

func (s *partStore) MaxIDWithPrefix(ctx context.Context, prefix string) (int, error) {
	return maxIDWithPrefix(ctx, s.db, &models.Part{}, prefix)
}

type scheduleStore struct {
	db *gorm.DB
}

func (s *scheduleStore) Get(ctx context.Context, id string) (*models.RecurringSchedule, error) {
	var sched models.RecurringSchedule
	err := s.db.WithContext(ctx).First(&sched, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get schedule %s: %w", id, err)
	}
	return &sched, nil
}

func (s *scheduleStore) Insert(ctx context.Context, sched *models.RecurringSchedule) error {
	if err := s.db.WithContext(ctx).Create(sched).Error; err != nil {
		return fmt.Errorf("store: insert schedule %s: %w", sched.ID, err)
	}
	return nil
}

func (s *scheduleStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return updateFields(ctx, s.db, &models.RecurringSchedule{}, "schedule", id, fields)
}

func (s *scheduleStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, &models.RecurringSchedule{}, "schedule", id)
}

func (s *scheduleStore) List(ctx context.Context, activeOnly bool) ([]models.RecurringSchedule, error) {
	q := s.db.WithContext(ctx).Order("next_scheduled ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var scheds []models.RecurringSchedule
	if err := q.Find(&scheds).Error; err != nil {
		return nil, fmt.Errorf("store: list schedules: %w", err)
	}
	return scheds, nil
}

func (s *scheduleStore) MaxIDWithPrefix(ctx context.Context, prefix string) (int, error) {
	return maxIDWithPrefix(ctx, s.db, &models.RecurringSchedule{}, prefix)
}
