// Package entity defines the health-record entities attached to a pet.
// Every record is keyed by PetID; access control derives entirely from the
// owning pet.
package entity

import "time"

// HealthRecord is a free-form health note for a pet.
type HealthRecord struct {
	ID          uint `gorm:"primaryKey"`
	PetID       uint `gorm:"index;not null"`
	RecordDate  *time.Time
	Description string `gorm:"type:text"`
	VetID       *uint
}

// Vaccine is a vaccination entry for a pet.
type Vaccine struct {
	ID          uint   `gorm:"primaryKey"`
	PetID       uint   `gorm:"index;not null"`
	VaccineName string `gorm:"size:255;not null"`
	Date        *time.Time
	NextDue     *time.Time
	VetClinic   string `gorm:"size:255"`
	Notes       string `gorm:"size:500"`
}

// Medication is a medication entry for a pet.
type Medication struct {
	ID         uint   `gorm:"primaryKey"`
	PetID      uint   `gorm:"index;not null"`
	Medication string `gorm:"size:255;not null"`
	Dose       string `gorm:"size:100"`
	Frequency  string `gorm:"size:100"`
	StartDate  *time.Time
	EndDate    *time.Time
	Notes      string `gorm:"size:500"`
}

// WeightEntry is one point of a pet's weight history.
type WeightEntry struct {
	ID     uint `gorm:"primaryKey"`
	PetID  uint `gorm:"index;not null"`
	Date   *time.Time
	Weight float64 `gorm:"not null"`
}

// TableName keeps the original table name for the weight history.
func (WeightEntry) TableName() string { return "pet_weight_history" }

// MedicalVisit is a veterinary visit entry for a pet. VetID is the user ID
// of the veterinarian who recorded the visit.
type MedicalVisit struct {
	ID        uint `gorm:"primaryKey"`
	PetID     uint `gorm:"index;not null"`
	VetID     uint `gorm:"not null"`
	VisitDate *time.Time
	Diagnosis string `gorm:"size:500"`
	Treatment string `gorm:"size:500"`
	Notes     string `gorm:"size:500"`
}
