// Package usecase implements the AI-assisted care features: vaccine card
// OCR and generated care recommendations.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petverse_backend/internal/feature/petcare/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
)

const (
	// MaxImageSize is the maximum accepted upload size (10MB).
	MaxImageSize = 10 * 1024 * 1024

	// RecommendationTypeGeneral is the default recommendation type when the
	// client does not pick one.
	RecommendationTypeGeneral = "general"
)

var (
	// ErrNotFound covers a missing pet and a pet owned by someone else.
	ErrNotFound = errors.New("pet not found")
	// ErrUnavailable means the AI backend is not configured.
	ErrUnavailable = errors.New("ai backend not configured")
	// ErrUpstream wraps failures of the AI backend itself.
	ErrUpstream = errors.New("ai backend request failed")
	// ErrEmptyImage rejects zero-byte uploads.
	ErrEmptyImage = errors.New("image data is empty")
	// ErrImageTooLarge rejects uploads above MaxImageSize.
	ErrImageTooLarge = fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
)

// TextExtractor extracts printed or handwritten text from an image.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// CareAdvisor generates a care recommendation from a prompt.
type CareAdvisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// PetRepository is the slice of the pets repository needed for ownership
// checks and prompt building.
type PetRepository interface {
	FindByID(ctx context.Context, id uint) (*petentity.Pet, error)
}

// ScanRepository persists scan results and recommendations.
type ScanRepository interface {
	CreateScan(ctx context.Context, scan *entity.CardScan) error
	ListScans(ctx context.Context, petID uint) ([]entity.CardScan, error)
	CreateRecommendation(ctx context.Context, rec *entity.Recommendation) error
	ListRecommendations(ctx context.Context, petID uint) ([]entity.Recommendation, error)
}

type petcareUsecase struct {
	pets      PetRepository
	store     ScanRepository
	extractor TextExtractor
	advisor   CareAdvisor
}

// NewPetcareUsecase creates a new petcareUsecase instance. extractor and
// advisor may be nil when the corresponding backend is not configured;
// the affected operations then fail with ErrUnavailable.
func NewPetcareUsecase(pets PetRepository, store ScanRepository, extractor TextExtractor, advisor CareAdvisor) *petcareUsecase {
	return &petcareUsecase{pets: pets, store: store, extractor: extractor, advisor: advisor}
}

func (u *petcareUsecase) ownedPet(ctx context.Context, callerID, petID uint) (*petentity.Pet, error) {
	pet, err := u.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, ErrNotFound
	}
	if pet.OwnerID != callerID {
		return nil, ErrNotFound
	}
	return pet, nil
}

// ScanVaccineCard runs OCR over an uploaded vaccine card photo and stores
// the extracted text for the pet.
func (u *petcareUsecase) ScanVaccineCard(ctx context.Context, callerID, petID uint, imageData []byte) (*entity.CardScan, error) {
	if _, err := u.ownedPet(ctx, callerID, petID); err != nil {
		return nil, err
	}
	if u.extractor == nil {
		return nil, ErrUnavailable
	}
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	text, err := u.extractor.ExtractText(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	scan := &entity.CardScan{PetID: petID, ExtractedText: text}
	if err := u.store.CreateScan(ctx, scan); err != nil {
		return nil, err
	}
	return scan, nil
}

// ListScans returns the stored scans for a pet, newest last.
func (u *petcareUsecase) ListScans(ctx context.Context, callerID, petID uint) ([]entity.CardScan, error) {
	if _, err := u.ownedPet(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.store.ListScans(ctx, petID)
}

// Recommend generates and stores a care recommendation for a pet, built
// from its profile.
func (u *petcareUsecase) Recommend(ctx context.Context, callerID, petID uint, recType string) (*entity.Recommendation, error) {
	pet, err := u.ownedPet(ctx, callerID, petID)
	if err != nil {
		return nil, err
	}
	if u.advisor == nil {
		return nil, ErrUnavailable
	}
	if recType == "" {
		recType = RecommendationTypeGeneral
	}

	content, err := u.advisor.Advise(ctx, buildPrompt(pet, recType))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	rec := &entity.Recommendation{PetID: petID, RecommendationType: recType, Content: content}
	if err := u.store.CreateRecommendation(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecommendations returns the stored recommendations for a pet.
func (u *petcareUsecase) ListRecommendations(ctx context.Context, callerID, petID uint) ([]entity.Recommendation, error) {
	if _, err := u.ownedPet(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.store.ListRecommendations(ctx, petID)
}

// buildPrompt describes the pet to the advisor. Only profile fields the
// owner filled in are included.
func buildPrompt(pet *petentity.Pet, recType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Give practical %s care recommendations for a pet with this profile:\n", recType)
	fmt.Fprintf(&b, "- species: %s\n", pet.Species)
	if pet.Breed != "" {
		fmt.Fprintf(&b, "- breed: %s\n", pet.Breed)
	}
	if pet.Sex != "" {
		fmt.Fprintf(&b, "- sex: %s\n", pet.Sex)
	}
	if pet.Birthdate != nil {
		years := time.Since(*pet.Birthdate).Hours() / 24 / 365.25
		fmt.Fprintf(&b, "- age: %.1f years\n", years)
	}
	if pet.Weight != nil {
		fmt.Fprintf(&b, "- weight: %.1f kg\n", *pet.Weight)
	}
	b.WriteString("Answer as a short list of concrete, actionable items.")
	return b.String()
}
