package models

import "time"

const ProfileID = 1

// Profile is the denormalized single-row user aggregate: cumulative counts
// and the cached quick-log streak live here, everything else is derived.
type Profile struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Name          string    `gorm:"not null;default:''" json:"name"`
	Mood          string    `gorm:"not null;default:''" json:"mood"`
	Streak        int       `gorm:"not null;default:0" json:"streak"`
	TotalLogs     int       `gorm:"not null;default:0" json:"totalLogs"`
	BaselineScore int       `gorm:"not null;default:0" json:"baselineScore"`
	UpdatedAt     time.Time `json:"-"`
}
