// Package dto defines data transfer objects for the health-record HTTP
// transport layer. Date-only fields bind from "2006-01-02" strings.
package dto

import openapi_types "github.com/oapi-codegen/runtime/types"

// HealthRecordReq is the body for creating or replacing a health record.
type HealthRecordReq struct {
	RecordDate  *openapi_types.Date `json:"record_date"`
	Description string              `json:"description"`
	VetID       *uint               `json:"vet_id"`
}

// VaccineReq is the body for creating or replacing a vaccine entry.
type VaccineReq struct {
	VaccineName string              `json:"vaccine_name" binding:"required,min=1"`
	Date        *openapi_types.Date `json:"date"`
	NextDue     *openapi_types.Date `json:"next_due"`
	VetClinic   string              `json:"vet_clinic"`
	Notes       string              `json:"notes"`
}

// MedicationReq is the body for creating or replacing a medication entry.
type MedicationReq struct {
	Medication string              `json:"medication" binding:"required,min=1"`
	Dose       string              `json:"dose"`
	Frequency  string              `json:"frequency"`
	StartDate  *openapi_types.Date `json:"start_date"`
	EndDate    *openapi_types.Date `json:"end_date"`
	Notes      string              `json:"notes"`
}

// WeightReq is the body for creating or replacing a weight entry.
type WeightReq struct {
	Date   *openapi_types.Date `json:"date"`
	Weight float64             `json:"weight" binding:"required,gt=0"`
}

// MedicalVisitReq is the body for creating or replacing a medical visit.
// The recording vet is taken from the authenticated identity, not the body.
type MedicalVisitReq struct {
	VisitDate *openapi_types.Date `json:"visit_date"`
	Diagnosis string              `json:"diagnosis"`
	Treatment string              `json:"treatment"`
	Notes     string              `json:"notes"`
}
