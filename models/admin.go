package models

import "time"

// Admin is the single back-office account. There is no self-service
// registration; a default row is seeded on first boot.
type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// SchemaVersion is a one-row marker so migrations run once per schema bump
// instead of on every process start.
type SchemaVersion struct {
	ID        uint `gorm:"primaryKey"`
	Version   int  `gorm:"not null"`
	UpdatedAt time.Time
}
