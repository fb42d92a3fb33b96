package models

import "time"

// WaterLog holds one row per calendar day, keyed by the local date string
// (2006-01-02). Rows are created lazily on the first increment of a day and
// only ever grow.
type WaterLog struct {
	Date      string    `gorm:"primaryKey" json:"date"`
	Glasses   int       `gorm:"not null;default:0" json:"glasses"`
	UpdatedAt time.Time `json:"-"`
}
