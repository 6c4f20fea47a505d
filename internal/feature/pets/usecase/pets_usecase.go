// Package usecase implements the business logic for the pets feature.
package usecase

import (
	"context"
	"errors"
	"time"

	"petverse_backend/internal/feature/pets/domain/entity"
)

// ErrPetNotFound is returned when a pet does not exist or is not owned by
// the caller. The two cases are deliberately indistinguishable so that
// foreign pet IDs cannot be probed.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository abstracts the persistence layer for pet entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	// FindByID returns ErrPetNotFound when no such pet exists.
	FindByID(ctx context.Context, id uint) (*entity.Pet, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Pet, error)
	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id uint) error
}

// PetChanges carries a partial update; nil fields are left untouched.
type PetChanges struct {
	Name      *string
	Species   *string
	Breed     *string
	Sex       *string
	Birthdate *time.Time
	Weight    *float64
	AvatarURL *string
}

// petsUsecase implements owner-scoped pet CRUD.
type petsUsecase struct {
	pets PetRepository
}

// NewPetsUsecase creates a new petsUsecase instance.
func NewPetsUsecase(pets PetRepository) *petsUsecase {
	return &petsUsecase{pets: pets}
}

// List returns all pets owned by the caller.
func (u *petsUsecase) List(ctx context.Context, ownerID uint) ([]entity.Pet, error) {
	return u.pets.FindByOwner(ctx, ownerID)
}

// Create stores a new pet owned by the caller.
func (u *petsUsecase) Create(ctx context.Context, ownerID uint, pet *entity.Pet) (*entity.Pet, error) {
	pet.ID = 0
	pet.OwnerID = ownerID
	if err := u.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Get returns the pet only when it exists and is owned by the caller.
func (u *petsUsecase) Get(ctx context.Context, ownerID, petID uint) (*entity.Pet, error) {
	pet, err := u.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != ownerID {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

// Update applies the non-nil changes to an owned pet.
func (u *petsUsecase) Update(ctx context.Context, ownerID, petID uint, changes PetChanges) (*entity.Pet, error) {
	pet, err := u.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		pet.Name = *changes.Name
	}
	if changes.Species != nil {
		pet.Species = *changes.Species
	}
	if changes.Breed != nil {
		pet.Breed = *changes.Breed
	}
	if changes.Sex != nil {
		pet.Sex = *changes.Sex
	}
	if changes.Birthdate != nil {
		pet.Birthdate = changes.Birthdate
	}
	if changes.Weight != nil {
		pet.Weight = changes.Weight
	}
	if changes.AvatarURL != nil {
		pet.AvatarURL = *changes.AvatarURL
	}

	if err := u.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Delete removes an owned pet.
func (u *petsUsecase) Delete(ctx context.Context, ownerID, petID uint) error {
	if _, err := u.Get(ctx, ownerID, petID); err != nil {
		return err
	}
	return u.pets.Delete(ctx, petID)
}
