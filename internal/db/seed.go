package db

import (
	"fmt"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"gorm.io/gorm"
)

// SeedCounts reports what Seed inserted.
type SeedCounts struct {
	Items       int
	Technicians int
	Parts       int
	Schedules   int
}

// Seed inserts sample fleet data. Idempotent: when any maintenance item or
// technician already exists the seed is skipped and zero counts are returned.
func Seed(db *gorm.DB, now time.Time) (SeedCounts, error) {
	var counts SeedCounts

	var existing int64
	if err := db.Model(&models.MaintenanceItem{}).Count(&existing).Error; err != nil {
		return counts, fmt.Errorf("db: seed precheck: %w", err)
	}
	if existing == 0 {
		if err := db.Model(&models.Technician{}).Count(&existing).Error; err != nil {
			return counts, fmt.Errorf("db: seed precheck: %w", err)
		}
	}
	if existing > 0 {
		return counts, nil
	}

	items := sampleItems(now)
	if err := db.Create(&items).Error; err != nil {
		return counts, fmt.Errorf("db: seed maintenance items: %w", err)
	}
	counts.Items = len(items)

	techs := sampleTechnicians(now)
	if err := db.Create(&techs).Error; err != nil {
		return counts, fmt.Errorf("db: seed technicians: %w", err)
	}
	counts.Technicians = len(techs)

	parts := sampleParts(now)
	if err := db.Create(&parts).Error; err != nil {
		return counts, fmt.Errorf("db: seed parts: %w", err)
	}
	counts.Parts = len(parts)

	schedules := sampleSchedules(now)
	if err := db.Create(&schedules).Error; err != nil {
		return counts, fmt.Errorf("db: seed schedules: %w", err)
	}
	counts.Schedules = len(schedules)

	return counts, nil
}

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func sampleItems(now time.Time) []models.MaintenanceItem {
	ptr := func(t time.Time) *time.Time { return &t }
	cost := func(f float64) *float64 { return &f }

	return []models.MaintenanceItem{
		{
			ID: "M001", VehicleID: "ABC-1234", Type: "Oil Change",
			Description: "Regular oil and filter change needed - Ford Transit Van",
			Status:      models.StatusOverdue, Priority: models.PriorityHigh,
			DueDate: now.Add(-days(8)), CurrentMileage: 45230, DueMileage: 45000,
			EstimatedCost: 150, AssignedTo: "Service Center A", AssignedTechnician: "Mike Henderson",
			PartsNeeded: models.PartLines{
				{PartID: "PART-001", Name: "Engine Oil Filter", Quantity: 1},
				{PartID: "PART-006", Name: "Engine Oil", Quantity: 5},
			},
			CreatedAt: now.Add(-days(40)), UpdatedAt: now.Add(-days(8)),
		},
		{
			ID: "M002", VehicleID: "XYZ-5678", Type: "Battery Check",
			Description: "Tesla battery health inspection and calibration",
			Status:      models.StatusInProgress, Priority: models.PriorityMedium,
			DueDate: now.Add(days(3)), CurrentMileage: 13200, DueMileage: 15000,
			EstimatedCost: 200, AssignedTo: "Service Center B", AssignedTechnician: "James Wong",
			CreatedAt: now.Add(-days(20)), UpdatedAt: now.Add(-days(2)),
		},
		{
			ID: "M003", VehicleID: "JKL-9101", Type: "Brake System Overhaul",
			Description: "Complete brake pad replacement and rotor resurfacing",
			Status:      models.StatusInProgress, Priority: models.PriorityHigh,
			DueDate: now, CurrentMileage: 88800, DueMileage: 90000,
			EstimatedCost: 850, AssignedTo: "Service Center A", AssignedTechnician: "Sarah Martinez",
			PartsNeeded: models.PartLines{
				{PartID: "PART-002", Name: "Brake Pads (Front)", Quantity: 2},
				{PartID: "PART-010", Name: "Brake Fluid", Quantity: 1},
			},
			CreatedAt: now.Add(-days(15)), UpdatedAt: now.Add(-days(1)),
		},
		{
			ID: "M004", VehicleID: "MBZ-2468", Type: "Tire Rotation",
			Description: "Rotate all four tires and alignment check",
			Status:      models.StatusScheduled, Priority: models.PriorityLow,
			DueDate: now.Add(days(10)), CurrentMileage: 32100, DueMileage: 35000,
			EstimatedCost: 120, AssignedTo: "Service Center B",
			CreatedAt: now.Add(-days(12)), UpdatedAt: now.Add(-days(12)),
		},
		{
			ID: "M005", VehicleID: "CHV-1357", Type: "Fuel System Cleaning",
			Description: "Fuel injector cleaning and filter replacement",
			Status:      models.StatusDueSoon, Priority: models.PriorityMedium,
			DueDate: now.Add(days(5)), CurrentMileage: 67890, DueMileage: 70000,
			EstimatedCost: 280, AssignedTo: "Service Center C",
			CreatedAt: now.Add(-days(30)), UpdatedAt: now.Add(-days(3)),
		},
		{
			ID: "M006", VehicleID: "NSN-7890", Type: "Software Update",
			Description: "Electric vehicle software and firmware update",
			Status:      models.StatusScheduled, Priority: models.PriorityLow,
			DueDate: now.Add(days(7)), CurrentMileage: 8500, DueMileage: 10000,
			EstimatedCost: 0, AssignedTo: "Service Center B",
			CreatedAt: now.Add(-days(9)), UpdatedAt: now.Add(-days(9)),
		},
		{
			ID: "M007", VehicleID: "RAM-4321", Type: "Engine Diagnostic",
			Description: "Complete engine diagnostic - vehicle offline",
			Status:      models.StatusInProgress, Priority: models.PriorityCritical,
			DueDate: now.Add(-days(7)), CurrentMileage: 102400, DueMileage: 100000,
			EstimatedCost: 1200, AssignedTo: "Service Center C", AssignedTechnician: "Rachel Cooper",
			CreatedAt: now.Add(-days(18)), UpdatedAt: now.Add(-days(4)),
		},
		{
			ID: "M008", VehicleID: "HND-5555", Type: "Air Filter Replacement",
			Description: "Replace cabin and engine air filters",
			Status:      models.StatusScheduled, Priority: models.PriorityLow,
			DueDate: now.Add(days(14)), CurrentMileage: 23456, DueMileage: 25000,
			EstimatedCost: 95, AssignedTo: "Service Center A",
			CreatedAt: now.Add(-days(6)), UpdatedAt: now.Add(-days(6)),
		},
		{
			ID: "M009", VehicleID: "VW-8888", Type: "Transmission Service",
			Description: "Transmission fluid change and inspection",
			Status:      models.StatusInProgress, Priority: models.PriorityHigh,
			DueDate: now.Add(-days(1)), CurrentMileage: 78900, DueMileage: 80000,
			EstimatedCost: 650, AssignedTo: "Service Center C", AssignedTechnician: "Rachel Cooper",
			PartsNeeded: models.PartLines{
				{PartID: "PART-004", Name: "Transmission Fluid (5L)", Quantity: 2},
			},
			CreatedAt: now.Add(-days(25)), UpdatedAt: now.Add(-days(1)),
		},
		{
			ID: "M010", VehicleID: "ISU-9999", Type: "Annual Inspection",
			Description: "Comprehensive annual safety inspection",
			Status:      models.StatusDueSoon, Priority: models.PriorityHigh,
			DueDate: now.Add(days(4)), CurrentMileage: 95600, DueMileage: 100000,
			EstimatedCost: 450, AssignedTo: "Service Center A", AssignedTechnician: "Mike Henderson",
			CreatedAt: now.Add(-days(50)), UpdatedAt: now.Add(-days(5)),
		},
		{
			ID: "M011", VehicleID: "ABC-1234", Type: "Coolant Flush",
			Description: "Complete coolant system flush and refill",
			Status:      models.StatusCompleted, Priority: models.PriorityMedium,
			DueDate: now.Add(-days(30)), CurrentMileage: 44000, DueMileage: 45000,
			EstimatedCost: 175, ActualCost: cost(190), AssignedTo: "Service Center A",
			CompletedDate: ptr(now.Add(-days(28))),
			CreatedAt:     now.Add(-days(60)), UpdatedAt: now.Add(-days(28)),
		},
		{
			ID: "M012", VehicleID: "XYZ-5678", Type: "Tire Replacement",
			Description: "Replace all four tires - wear detected",
			Status:      models.StatusScheduled, Priority: models.PriorityHigh,
			DueDate: now.Add(days(6)), CurrentMileage: 13200, DueMileage: 15000,
			EstimatedCost: 1100, AssignedTo: "Service Center B",
			CreatedAt: now.Add(-days(3)), UpdatedAt: now.Add(-days(3)),
		},
		{
			ID: "M013", VehicleID: "MBZ-2468", Type: "Wiper Blade Replacement",
			Description: "Replace front and rear wiper blades",
			Status:      models.StatusCompleted, Priority: models.PriorityLow,
			DueDate: now.Add(-days(15)), CurrentMileage: 31500, DueMileage: 32000,
			EstimatedCost: 45, ActualCost: cost(45), AssignedTo: "Service Center B",
			CompletedDate: ptr(now.Add(-days(14))),
			CreatedAt:     now.Add(-days(45)), UpdatedAt: now.Add(-days(14)),
		},
		{
			ID: "M014", VehicleID: "HND-5555", Type: "Suspension Check",
			Description: "Inspect suspension components and shock absorbers",
			Status:      models.StatusCompleted, Priority: models.PriorityMedium,
			DueDate: now.Add(-days(20)), CurrentMileage: 22800, DueMileage: 25000,
			EstimatedCost: 225, ActualCost: cost(210), AssignedTo: "Service Center A",
			AssignedTechnician: "David Kim",
			CompletedDate:      ptr(now.Add(-days(19))),
			CreatedAt:          now.Add(-days(55)), UpdatedAt: now.Add(-days(19)),
		},
	}
}

func sampleTechnicians(now time.Time) []models.Technician {
	return []models.Technician{
		{
			ID: "TECH-001", Name: "Mike Henderson",
			Email: "mike.henderson@fleetops.com", Phone: "+1-555-1001",
			Specialization: models.StringList{"Engine Diagnostics", "Oil Changes", "General Maintenance"},
			Status:         models.TechnicianAvailable, Rating: 4.8,
			CompletedJobs: 342, ActiveJobs: 2,
			Certifications: models.StringList{"ASE Master Technician", "Diesel Engine Specialist"},
			HourlyRate:     65, JoinDate: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "TECH-002", Name: "Sarah Martinez",
			Email: "sarah.martinez@fleetops.com", Phone: "+1-555-1002",
			Specialization: models.StringList{"Brake Systems", "Suspension", "Tire Service"},
			Status:         models.TechnicianBusy, Rating: 4.9,
			CompletedJobs: 456, ActiveJobs: 3,
			Certifications: models.StringList{"ASE Master Technician", "Brake Specialist Certification"},
			HourlyRate:     70, JoinDate: time.Date(2019, 6, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "TECH-003", Name: "James Wong",
			Email: "james.wong@fleetops.com", Phone: "+1-555-1003",
			Specialization: models.StringList{"Electric Vehicles", "Battery Systems", "Software Updates"},
			Status:         models.TechnicianAvailable, Rating: 5.0,
			CompletedJobs: 289, ActiveJobs: 1,
			Certifications: models.StringList{"Tesla Certified Technician", "EV Specialist", "High Voltage Safety"},
			HourlyRate:     85, JoinDate: time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "TECH-004", Name: "Rachel Cooper",
			Email: "rachel.cooper@fleetops.com", Phone: "+1-555-1004",
			Specialization: models.StringList{"Transmission Service", "Fuel Systems", "Engine Repair"},
			Status:         models.TechnicianBusy, Rating: 4.7,
			CompletedJobs: 398, ActiveJobs: 2,
			Certifications: models.StringList{"ASE Master Technician", "Transmission Specialist"},
			HourlyRate:     72, JoinDate: time.Date(2020, 9, 5, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "TECH-005", Name: "David Kim",
			Email: "david.kim@fleetops.com", Phone: "+1-555-1005",
			Specialization: models.StringList{"Air Conditioning", "Electrical Systems", "Diagnostics"},
			Status:         models.TechnicianAvailable, Rating: 4.6,
			CompletedJobs: 312, ActiveJobs: 1,
			Certifications: models.StringList{"ASE Certified", "HVAC Specialist"},
			HourlyRate:     68, JoinDate: time.Date(2021, 4, 12, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "TECH-006", Name: "Angela Stevens",
			Email: "angela.stevens@fleetops.com", Phone: "+1-555-1006",
			Specialization: models.StringList{"Preventive Maintenance", "Inspections", "General Repair"},
			Status:         models.TechnicianOffDuty, Rating: 4.5,
			CompletedJobs: 267, ActiveJobs: 0,
			Certifications: models.StringList{"ASE Certified", "Safety Inspector"},
			HourlyRate:     62, JoinDate: time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func sampleParts(now time.Time) []models.Part {
	restocked := func(d int) *time.Time {
		t := now.Add(-days(d))
		return &t
	}
	return []models.Part{
		{
			ID: "PART-001", Name: "Engine Oil Filter", PartNumber: "EOF-2024-001",
			Category: "Filters", Quantity: 45, MinQuantity: 15, UnitCost: 12.50,
			Supplier: "AutoParts Supply Co.", Location: "Warehouse A - Shelf 12",
			LastRestocked: restocked(15),
			UsedIn:        models.StringList{"Oil Change", "General Maintenance"},
			CreatedAt:     now, UpdatedAt: now,
		},
		{
			ID: "PART-002", Name: "Brake Pads (Front)", PartNumber: "BPF-2024-002",
			Category: "Brakes", Quantity: 28, MinQuantity: 10, UnitCost: 85,
			Supplier: "BrakeMax Industries", Location: "Warehouse A - Shelf 8",
			LastRestocked: restocked(7),
			UsedIn:        models.StringList{"Brake System Overhaul", "Brake Service"},
			CreatedAt:     now, UpdatedAt: now,
		},
		{
			ID: "PART-004", Name: "Transmission Fluid (5L)", PartNumber: "TF-2024-004",
			Category: "Fluids", Quantity: 35, MinQuantity: 12, UnitCost: 45,
			Supplier: "FluidTech Solutions", Location: "Warehouse B - Bay 3",
			LastRestocked: restocked(10),
			UsedIn:        models.StringList{"Transmission Service", "Fluid Replacement"},
			CreatedAt:     now, UpdatedAt: now,
		},
		{
			ID: "PART-006", Name: "Coolant (10L)", PartNumber: "CL-2024-006",
			Category: "Fluids", Quantity: 42, MinQuantity: 15, UnitCost: 28.50,
			Supplier: "FluidTech Solutions", Location: "Warehouse B - Bay 3",
			LastRestocked: restocked(12),
			UsedIn:        models.StringList{"Coolant Flush", "Cooling System Service"},
			CreatedAt:     now, UpdatedAt: now,
		},
		{
			ID: "PART-008", Name: "Battery 12V Heavy Duty", PartNumber: "BAT-2024-008",
			Category: "Electrical", Quantity: 12, MinQuantity: 5, UnitCost: 185,
			Supplier: "PowerCell Batteries", Location: "Warehouse B - Bay 1",
			LastRestocked: restocked(5),
			UsedIn:        models.StringList{"Battery Replacement", "Electrical Service"},
			CreatedAt:     now, UpdatedAt: now,
		},
		{
			ID: "PART-010", Name: "Brake Fluid (1L)", PartNumber: "BF-2024-010",
			Category: "Fluids", Quantity: 6, MinQuantity: 10, UnitCost: 15.50,
			Supplier: "FluidTech Solutions", Location: "Warehouse B - Bay 3",
			LastRestocked: restocked(30),
			UsedIn:        models.StringList{"Brake Service", "Brake System Overhaul"},
			CreatedAt:     now, UpdatedAt: now,
		},
	}
}

func sampleSchedules(now time.Time) []models.RecurringSchedule {
	executed := func(d int) *time.Time {
		t := now.Add(-days(d))
		return &t
	}
	return []models.RecurringSchedule{
		{
			ID: "RS-001", Name: "Monthly Oil Change - ABC-1234", VehicleID: "ABC-1234",
			MaintenanceType: "Oil Change",
			Description:     "Regular monthly oil and filter change for Ford Transit Van",
			Frequency:       models.FrequencyMonthly, FrequencyValue: 1,
			EstimatedCost: 150, EstimatedDuration: 0.75, AssignedTo: "Service Center A",
			IsActive: true, LastExecuted: executed(30),
			NextScheduled: now.Add(-days(30)).AddDate(0, 1, 0), TotalExecutions: 12,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "RS-002", Name: "Quarterly Inspection - XYZ-5678", VehicleID: "XYZ-5678",
			MaintenanceType: "Battery Check",
			Description:     "Quarterly Tesla battery health inspection",
			Frequency:       models.FrequencyQuarterly, FrequencyValue: 1,
			EstimatedCost: 200, EstimatedDuration: 1.5, AssignedTo: "Service Center B",
			IsActive: true, LastExecuted: executed(90),
			NextScheduled: now.Add(-days(90)).AddDate(0, 3, 0), TotalExecutions: 4,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "RS-003", Name: "Semi-Annual Brake Check - JKL-9101", VehicleID: "JKL-9101",
			MaintenanceType: "Brake Inspection",
			Description:     "Comprehensive brake system inspection every 6 months",
			Frequency:       models.FrequencyMonthly, FrequencyValue: 6,
			EstimatedCost: 250, EstimatedDuration: 2, AssignedTo: "Service Center A",
			IsActive: true, LastExecuted: executed(180),
			NextScheduled: now.Add(-days(180)).AddDate(0, 6, 0), TotalExecutions: 8,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "RS-005", Name: "Annual Comprehensive - CHV-1357", VehicleID: "CHV-1357",
			MaintenanceType: "Annual Inspection",
			Description:     "Full vehicle inspection and service annually",
			Frequency:       models.FrequencyYearly, FrequencyValue: 1,
			EstimatedCost: 450, EstimatedDuration: 4, AssignedTo: "Service Center C",
			IsActive: true, LastExecuted: executed(365),
			NextScheduled: now.Add(-days(365)).AddDate(1, 0, 0), TotalExecutions: 3,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "RS-006", Name: "Weekly EV Check - NSN-7890", VehicleID: "NSN-7890",
			MaintenanceType: "Software Update",
			Description:     "Weekly software and system status check for Nissan Leaf",
			Frequency:       models.FrequencyWeekly, FrequencyValue: 1,
			EstimatedCost: 0, EstimatedDuration: 0.5, AssignedTo: "Service Center B",
			IsActive: true, LastExecuted: executed(7),
			NextScheduled: now, TotalExecutions: 52,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "RS-008", Name: "Mileage-Based Service - ISU-9999", VehicleID: "ISU-9999",
			MaintenanceType: "General Maintenance",
			Description:     "Service every 10,000 miles",
			Frequency:       models.FrequencyMileageBased, FrequencyValue: 10000,
			EstimatedCost: 350, EstimatedDuration: 3, AssignedTo: "Service Center A",
			IsActive: true, LastExecuted: executed(120),
			NextScheduled: now.Add(-days(120)).Add(30 * 24 * time.Hour), TotalExecutions: 10,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}
