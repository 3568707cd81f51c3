package models

import "time"

// MaintenanceItem is a single schedulable unit of upkeep work against one
// vehicle. VehicleID is a plain string reference; nothing validates it against
// a vehicle registry.
type MaintenanceItem struct {
	ID          string   `gorm:"primaryKey;size:50" json:"id"`
	VehicleID   string   `gorm:"size:50;not null;index" json:"vehicleId"`
	Type        string   `gorm:"size:100;not null" json:"type"`
	Description string   `gorm:"type:text" json:"description"`
	Status      Status   `gorm:"size:16;not null;index" json:"status"`
	Priority    Priority `gorm:"size:16;not null" json:"priority"`

	DueDate       time.Time  `gorm:"not null" json:"dueDate"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`

	CurrentMileage int `gorm:"not null" json:"currentMileage"`
	DueMileage     int `gorm:"not null" json:"dueMileage"`

	EstimatedCost float64  `gorm:"default:0" json:"estimatedCost"`
	ActualCost    *float64 `json:"actualCost"`

	AssignedTo         string `gorm:"size:200" json:"assignedTo"`
	AssignedTechnician string `gorm:"size:100" json:"assignedTechnician"`

	Notes       string      `gorm:"type:text" json:"notes"`
	PartsNeeded PartLines   `gorm:"type:json" json:"partsNeeded"`
	Attachments Attachments `gorm:"type:json" json:"attachments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
