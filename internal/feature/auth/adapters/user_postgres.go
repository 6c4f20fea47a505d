// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"petverse_backend/internal/feature/auth/domain/entity"
	"petverse_backend/internal/feature/auth/usecase"
)

// userPostgres is the Postgres implementation of usecase.UserRepository,
// backed by GORM.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a userPostgres with the given gorm.DB connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// GORM translates these to ErrDuplicatedKey when TranslateError is on; the
// raw pgconn check covers SQLSTATE 23505 when it is not.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a user, mapping a duplicate email to
// usecase.ErrEmailAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email, or usecase.ErrUserNotFound.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID, or usecase.ErrUserNotFound.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetOrCreate returns the user with the given email, creating it when
// absent. The email unique constraint is the true guard against concurrent
// first logins: when the insert loses the race it re-reads the winner's row.
func (r *userPostgres) GetOrCreate(ctx context.Context, email, name, role string) (*entity.User, error) {
	existing, err := r.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, usecase.ErrUserNotFound) {
		return nil, err
	}

	u := &entity.User{
		FullName: name,
		Email:    email,
		Role:     role,
		UserType: role,
	}
	if err := r.Create(ctx, u); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			// Lost the insert race; the row now exists.
			return r.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return u, nil
}
