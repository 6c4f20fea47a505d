// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles recognized by the platform. The set is open: the role column is a
// plain string and unknown values simply never match a role guard.
const (
	RoleTutor = "tutor"
	RoleVet   = "vet"
	RoleShop  = "shop"
)

// User represents a registered account. An account is created either through
// password registration or on first Google login; it is never deleted by any
// exposed operation.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FullName is the user's display name.
	FullName string `gorm:"size:255"`

	// Email uniquely identifies the account.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt digest of the user's password. It is
	// empty for accounts provisioned through Google login only.
	PasswordHash string `gorm:"size:255"`

	// Role is the user's role ("tutor", "vet", "shop", ...).
	Role string `gorm:"size:50"`

	// UserType is the legacy role column kept for rows written before the
	// role column existed. Reads go through EffectiveRole.
	UserType string `gorm:"column:user_type;size:50"`

	Phone           string `gorm:"size:50"`
	ProfilePhotoURL string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveRole returns the user's role, preferring the role column and
// falling back to the legacy user_type column.
func (u *User) EffectiveRole() string {
	if u.Role != "" {
		return u.Role
	}
	return u.UserType
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
