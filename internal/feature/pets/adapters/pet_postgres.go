// Package adapters provides the repository implementations for the pets
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petverse_backend/internal/feature/pets/domain/entity"
	"petverse_backend/internal/feature/pets/usecase"
)

type petPostgres struct {
	db *gorm.DB
}

var _ usecase.PetRepository = (*petPostgres)(nil)

// NewPetPostgres creates a petPostgres with the given gorm.DB connection.
func NewPetPostgres(db *gorm.DB) *petPostgres {
	return &petPostgres{db: db}
}

func (r *petPostgres) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *petPostgres) FindByID(ctx context.Context, id uint) (*entity.Pet, error) {
	var pet entity.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petPostgres) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Pet, error) {
	var pets []entity.Pet
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petPostgres) Update(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *petPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Pet{}, id).Error
}
