// Package usecase implements the profile view and the per-user settings
// and address records for the authenticated user.
package usecase

import (
	"context"

	authentity "petverse_backend/internal/feature/auth/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
	"petverse_backend/internal/feature/users/domain/entity"
)

// UserReader is the slice of the user repository needed to load the
// caller's account.
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// PetRepository is the slice of the pets repository needed to embed the
// caller's pets in the profile.
type PetRepository interface {
	FindByOwner(ctx context.Context, ownerID uint) ([]petentity.Pet, error)
}

// SettingsRepository persists the per-user settings and address rows.
// Finds return nil without error when no row exists yet.
type SettingsRepository interface {
	FindSettings(ctx context.Context, userID uint) (*entity.UserSettings, error)
	SaveSettings(ctx context.Context, settings *entity.UserSettings) error
	FindAddress(ctx context.Context, userID uint) (*entity.UserAddress, error)
	SaveAddress(ctx context.Context, address *entity.UserAddress) error
}

// SettingsChanges carries the updatable settings fields. Nil fields are
// left unchanged.
type SettingsChanges struct {
	NotificationsEnabled *bool
	PrivacyLevel         *string
	Language             *string
	Timezone             *string
}

// AddressChanges carries the updatable address fields. Nil fields are
// left unchanged.
type AddressChanges struct {
	Country *string
	City    *string
	Address *string
	Lat     *float64
	Lng     *float64
}

type profileUsecase struct {
	users    UserReader
	pets     PetRepository
	settings SettingsRepository
}

// NewProfileUsecase creates a new profileUsecase instance.
func NewProfileUsecase(users UserReader, pets PetRepository, settings SettingsRepository) *profileUsecase {
	return &profileUsecase{users: users, pets: pets, settings: settings}
}

// Profile loads the caller's account together with their pets.
func (u *profileUsecase) Profile(ctx context.Context, userID uint) (*authentity.User, []petentity.Pet, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	pets, err := u.pets.FindByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, pets, nil
}

// Settings returns the caller's settings row, or nil when none was saved
// yet.
func (u *profileUsecase) Settings(ctx context.Context, userID uint) (*entity.UserSettings, error) {
	return u.settings.FindSettings(ctx, userID)
}

// UpdateSettings upserts the caller's settings row, touching only the
// fields present in changes.
func (u *profileUsecase) UpdateSettings(ctx context.Context, userID uint, changes SettingsChanges) (*entity.UserSettings, error) {
	settings, err := u.settings.FindSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.UserSettings{UserID: userID}
	}
	if changes.NotificationsEnabled != nil {
		settings.NotificationsEnabled = changes.NotificationsEnabled
	}
	if changes.PrivacyLevel != nil {
		settings.PrivacyLevel = *changes.PrivacyLevel
	}
	if changes.Language != nil {
		settings.Language = *changes.Language
	}
	if changes.Timezone != nil {
		settings.Timezone = *changes.Timezone
	}
	if err := u.settings.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Address returns the caller's address row, or nil when none was saved
// yet.
func (u *profileUsecase) Address(ctx context.Context, userID uint) (*entity.UserAddress, error) {
	return u.settings.FindAddress(ctx, userID)
}

// UpdateAddress upserts the caller's address row, touching only the
// fields present in changes.
func (u *profileUsecase) UpdateAddress(ctx context.Context, userID uint, changes AddressChanges) (*entity.UserAddress, error) {
	address, err := u.settings.FindAddress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		address = &entity.UserAddress{UserID: userID}
	}
	if changes.Country != nil {
		address.Country = *changes.Country
	}
	if changes.City != nil {
		address.City = *changes.City
	}
	if changes.Address != nil {
		address.Address = *changes.Address
	}
	if changes.Lat != nil {
		address.Lat = changes.Lat
	}
	if changes.Lng != nil {
		address.Lng = changes.Lng
	}
	if err := u.settings.SaveAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}
