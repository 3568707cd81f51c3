package models

import "time"

// Technician is a service-center worker. Job counters are plain bookkeeping
// fields; assignment does not drive status transitions.
type Technician struct {
	ID             string           `gorm:"primaryKey;size:50" json:"id"`
	Name           string           `gorm:"size:100;not null" json:"name"`
	Email          string           `gorm:"size:200" json:"email"`
	Phone          string           `gorm:"size:50" json:"phone"`
	Specialization StringList       `gorm:"type:json" json:"specialization"`
	Status         TechnicianStatus `gorm:"size:16;not null" json:"status"`
	Rating         float64          `json:"rating"`
	CompletedJobs  int              `json:"completedJobs"`
	ActiveJobs     int              `json:"activeJobs"`
	Certifications StringList       `gorm:"type:json" json:"certifications"`
	HourlyRate     float64          `json:"hourlyRate"`
	JoinDate       time.Time        `json:"joinDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
