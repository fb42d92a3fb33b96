package models

import "time"

// Account is the single local login. Registration is only allowed while no
// account row exists.
type Account struct {
	ID               uint      `gorm:"primaryKey"`
	Email            string    `gorm:"uniqueIndex;not null"`
	PasswordHash     string    `gorm:"not null"`
	RecoveryCodeHash string    `gorm:"not null;default:''"`
	CreatedAt        time.Time `gorm:"not null"`
}
