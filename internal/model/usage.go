package model

import "time"

// ResourceUsage is one day's electricity/water/waste measurement.
// The unique index on Date makes concurrent duplicate submissions a
// storage-level conflict instead of a racy check-then-insert.
type ResourceUsage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Electricity float64   `gorm:"not null" json:"electricity"` // kWh
	Water       float64   `gorm:"not null" json:"water"`       // liters
	Waste       float64   `gorm:"not null" json:"waste"`       // kg
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
