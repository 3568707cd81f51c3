package models

// Status is the lifecycle state of a maintenance item. The first three tiers
// (overdue, due_soon, scheduled) are derived from date/mileage proximity; the
// rest are only reachable through explicit caller transitions.
type Status string

const (
	StatusOverdue    Status = "overdue"
	StatusDueSoon    Status = "due_soon"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// AllStatuses lists every status in declaration order.
var AllStatuses = []Status{
	StatusOverdue, StatusDueSoon, StatusScheduled,
	StatusInProgress, StatusCompleted, StatusCancelled,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOverdue, StatusDueSoon, StatusScheduled,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Rank orders statuses by urgency; higher means more urgent. List ordering
// sorts on this rank descending.
func (s Status) Rank() int {
	switch s {
	case StatusOverdue:
		return 6
	case StatusDueSoon:
		return 5
	case StatusScheduled:
		return 4
	case StatusInProgress:
		return 3
	case StatusCompleted:
		return 2
	case StatusCancelled:
		return 1
	}
	return 0
}

// Active reports whether the item still represents pending or ongoing work.
func (s Status) Active() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusDueSoon, StatusOverdue:
		return true
	}
	return false
}

// Priority is the caller-set importance of a maintenance item.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AllPriorities lists every priority in ascending order.
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank orders priorities; higher means more important.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// TechnicianStatus is a technician's availability state.
type TechnicianStatus string

const (
	TechnicianAvailable TechnicianStatus = "available"
	TechnicianBusy      TechnicianStatus = "busy"
	TechnicianOffDuty   TechnicianStatus = "off-duty"
)

// Valid reports whether t is a known technician status.
func (t TechnicianStatus) Valid() bool {
	switch t {
	case TechnicianAvailable, TechnicianBusy, TechnicianOffDuty:
		return true
	}
	return false
}

// Frequency is the recurrence unit of a schedule.
type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencyYearly       Frequency = "yearly"
	FrequencyMileageBased Frequency = "mileage-based"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyMileageBased:
		return true
	}
	return false
}
