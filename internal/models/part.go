package models

import "time"

// Part is an inventory item. MinQuantity is an advisory low-stock threshold;
// no alerting hangs off it.
type Part struct {
	ID            string     `gorm:"primaryKey;size:50" json:"id"`
	Name          string     `gorm:"size:200;not null" json:"name"`
	PartNumber    string     `gorm:"size:100;uniqueIndex" json:"partNumber"`
	Category      string     `gorm:"size:100" json:"category"`
	Quantity      int        `json:"quantity"`
	MinQuantity   int        `json:"minQuantity"`
	UnitCost      float64    `json:"unitCost"`
	Supplier      string     `gorm:"size:200" json:"supplier"`
	Location      string     `gorm:"size:200" json:"location"`
	LastRestocked *time.Time `json:"lastRestocked"`
	UsedIn        StringList `gorm:"type:json" json:"usedIn"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
