// Package adapters provides the repository implementation for the per-user
// profile extension rows.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petverse_backend/internal/feature/users/domain/entity"
	"petverse_backend/internal/feature/users/usecase"
)

type profilePostgres struct {
	db *gorm.DB
}

var _ usecase.SettingsRepository = (*profilePostgres)(nil)

// NewProfilePostgres creates a profilePostgres with the given gorm.DB
// connection.
func NewProfilePostgres(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

func (r *profilePostgres) FindSettings(ctx context.Context, userID uint) (*entity.UserSettings, error) {
	var settings entity.UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *profilePostgres) SaveSettings(ctx context.Context, settings *entity.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *profilePostgres) FindAddress(ctx context.Context, userID uint) (*entity.UserAddress, error) {
	var address entity.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *profilePostgres) SaveAddress(ctx context.Context, address *entity.UserAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}
