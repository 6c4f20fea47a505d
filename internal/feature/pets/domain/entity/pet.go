// Package entity defines the domain entities for the pets feature.
package entity

import "time"

// Pet is a pet profile owned by exactly one user. All access control on
// pets and their child records derives from OwnerID.
type Pet struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"index;not null"`
	Name      string `gorm:"size:255;not null"`
	Species   string `gorm:"size:100;not null"`
	Breed     string `gorm:"size:255"`
	Sex       string `gorm:"size:10"`
	Birthdate *time.Time
	Weight    *float64
	AvatarURL string `gorm:"size:512"`
	CreatedAt time.Time
}
