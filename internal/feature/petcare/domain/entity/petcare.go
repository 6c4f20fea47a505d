// Package entity defines the AI-assisted care entities.
package entity

import "time"

// CardScan stores the OCR text extracted from an uploaded vaccine card
// photo so owners can transcribe entries without retyping.
type CardScan struct {
	ID            uint   `gorm:"primaryKey"`
	PetID         uint   `gorm:"index;not null"`
	ExtractedText string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName keeps the original table name for card scans.
func (CardScan) TableName() string { return "pet_vaccine_card_scans" }

// Recommendation is a generated care recommendation for a pet.
type Recommendation struct {
	ID                 uint   `gorm:"primaryKey"`
	PetID              uint   `gorm:"index;not null"`
	RecommendationType string `gorm:"size:50;not null"`
	Content            string `gorm:"type:text"`
	CreatedAt          time.Time
}
