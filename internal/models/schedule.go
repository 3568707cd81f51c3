package models

import "time"

// RecurringSchedule is a plan describing a repeating maintenance obligation for
// one vehicle. NextScheduled is always derived by the recurrence projector from
// LastExecuted (or creation time) and the frequency fields; it is never
// hand-set after initial creation.
type RecurringSchedule struct {
	ID              string    `gorm:"primaryKey;size:50" json:"id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	VehicleID       string    `gorm:"size:50;not null;index" json:"vehicleId"`
	MaintenanceType string    `gorm:"size:100;not null" json:"maintenanceType"`
	Description     string    `gorm:"type:text" json:"description"`
	Frequency       Frequency `gorm:"size:16;not null" json:"frequency"`
	// FrequencyValue is the unit multiplier (every N months) or, for
	// mileage-based schedules, the distance interval.
	FrequencyValue    int        `gorm:"not null" json:"frequencyValue"`
	EstimatedCost     float64    `json:"estimatedCost"`
	EstimatedDuration float64    `json:"estimatedDuration"`
	AssignedTo        string     `gorm:"size:200" json:"assignedTo"`
	IsActive          bool       `json:"isActive"`
	LastExecuted      *time.Time `json:"lastExecuted"`
	NextScheduled     time.Time  `json:"nextScheduled"`
	TotalExecutions   int        `json:"totalExecutions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
