// Package api defines the JSON request and response shapes shared by the
// HTTP handlers. Date-only values use the OpenAPI date type so they marshal
// as "2006-01-02".
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a minimal success body for operations without a
// resource payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse is returned by the register, login and Google callback
// endpoints.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// PetResponse is the full view of a pet profile.
type PetResponse struct {
	ID        uint                `json:"id"`
	OwnerID   uint                `json:"owner_id"`
	Name      string              `json:"name"`
	Species   string              `json:"species"`
	Breed     string              `json:"breed,omitempty"`
	Sex       string              `json:"sex,omitempty"`
	Birthdate *openapi_types.Date `json:"birthdate,omitempty"`
	Weight    *float64            `json:"weight,omitempty"`
	AvatarURL string              `json:"avatar_url,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// PetSummaryResponse is the abbreviated pet view embedded in profiles.
type PetSummaryResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ProfileResponse is returned by GET /users/me.
type ProfileResponse struct {
	Name  string               `json:"name"`
	Email string               `json:"email"`
	Role  string               `json:"role"`
	Pets  []PetSummaryResponse `json:"pets"`
}

// SettingsResponse is the caller's saved settings. A fresh account gets
// the zero value.
type SettingsResponse struct {
	NotificationsEnabled *bool  `json:"notifications_enabled,omitempty"`
	PrivacyLevel         string `json:"privacy_level,omitempty"`
	Language             string `json:"language,omitempty"`
	Timezone             string `json:"timezone,omitempty"`
}

// AddressResponse is the caller's saved address. A fresh account gets the
// zero value.
type AddressResponse struct {
	Country string   `json:"country,omitempty"`
	City    string   `json:"city,omitempty"`
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// HealthRecordResponse is a free-form health record of a pet.
type HealthRecordResponse struct {
	ID          uint                `json:"id"`
	PetID       uint                `json:"pet_id"`
	RecordDate  *openapi_types.Date `json:"record_date,omitempty"`
	Description string              `json:"description,omitempty"`
	VetID       *uint               `json:"vet_id,omitempty"`
}

// VaccineResponse is a vaccination entry of a pet.
type VaccineResponse struct {
	ID          uint                `json:"id"`
	PetID       uint                `json:"pet_id"`
	VaccineName string              `json:"vaccine_name"`
	Date        *openapi_types.Date `json:"date,omitempty"`
	NextDue     *openapi_types.Date `json:"next_due,omitempty"`
	VetClinic   string              `json:"vet_clinic,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// MedicationResponse is a medication entry of a pet.
type MedicationResponse struct {
	ID         uint                `json:"id"`
	PetID      uint                `json:"pet_id"`
	Medication string              `json:"medication"`
	Dose       string              `json:"dose,omitempty"`
	Frequency  string              `json:"frequency,omitempty"`
	StartDate  *openapi_types.Date `json:"start_date,omitempty"`
	EndDate    *openapi_types.Date `json:"end_date,omitempty"`
	Notes      string              `json:"notes,omitempty"`
}

// WeightResponse is a weight-history entry of a pet.
type WeightResponse struct {
	ID     uint                `json:"id"`
	PetID  uint                `json:"pet_id"`
	Date   *openapi_types.Date `json:"date,omitempty"`
	Weight float64             `json:"weight"`
}

// MedicalVisitResponse is a veterinary visit entry of a pet.
type MedicalVisitResponse struct {
	ID        uint                `json:"id"`
	PetID     uint                `json:"pet_id"`
	VetID     uint                `json:"vet_id"`
	VisitDate *openapi_types.Date `json:"visit_date,omitempty"`
	Diagnosis string              `json:"diagnosis,omitempty"`
	Treatment string              `json:"treatment,omitempty"`
	Notes     string              `json:"notes,omitempty"`
}

// PostResponse is the public view of a social post.
type PostResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	PetID      *uint     `json:"pet_id,omitempty"`
	Content    string    `json:"content,omitempty"`
	MediaURLs  string    `json:"media_urls,omitempty"`
	Visibility string    `json:"visibility,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// LikeResponse records one user's like on a post.
type LikeResponse struct {
	ID     uint `json:"id"`
	PostID uint `json:"post_id"`
	UserID uint `json:"user_id"`
}

// CommentResponse is a comment on a post.
type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CardScanResponse is the OCR result of an uploaded vaccine card.
type CardScanResponse struct {
	ID            uint      `json:"id"`
	PetID         uint      `json:"pet_id"`
	ExtractedText string    `json:"extracted_text"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecommendationResponse is an AI-generated care recommendation for a pet.
type RecommendationResponse struct {
	ID                 uint      `json:"id"`
	PetID              uint      `json:"pet_id"`
	RecommendationType string    `json:"recommendation_type"`
	Content            string    `json:"content"`
	CreatedAt          time.Time `json:"created_at"`
}
