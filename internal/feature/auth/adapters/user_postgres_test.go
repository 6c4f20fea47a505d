package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petverse_backend/internal/feature/auth/domain/entity"
	"petverse_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database. TranslateError is on
// so duplicate-key detection behaves as it does against Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, FullName: name, Role: entity.RoleTutor}
	require.NoError(t, db.Create(user).Error, "failed to seed user")
	return user
}

func TestUserPostgres_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists a new user", func(t *testing.T) {
		t.Parallel()
		repo := NewUserPostgres(setupTestDB(t))

		user := &entity.User{Email: "taro@example.com", FullName: "Taro", Role: entity.RoleTutor}
		err := repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		repo := NewUserPostgres(db)
		seedUser(t, db, "taro@example.com", "Taro")

		err := repo.Create(context.Background(), &entity.User{Email: "taro@example.com", FullName: "Other"})
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserPostgres(db)
	seeded := seedUser(t, db, "taro@example.com", "Taro")

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		user, err := repo.FindByEmail(context.Background(), "taro@example.com")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.Equal(t, "Taro", user.FullName)
	})

	t.Run("missing maps to ErrUserNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserPostgres(db)
	seeded := seedUser(t, db, "taro@example.com", "Taro")

	user, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "taro@example.com", user.Email)

	_, err = repo.FindByID(context.Background(), seeded.ID+100)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserPostgres_GetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates on first call, returns same row after", func(t *testing.T) {
		t.Parallel()
		repo := NewUserPostgres(setupTestDB(t))

		first, err := repo.GetOrCreate(context.Background(), "hanako@example.com", "Hanako", entity.RoleTutor)
		require.NoError(t, err)
		require.NotZero(t, first.ID)

		second, err := repo.GetOrCreate(context.Background(), "hanako@example.com", "Renamed", entity.RoleVet)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Hanako", second.FullName, "existing row must be returned unchanged")
		assert.Equal(t, entity.RoleTutor, second.EffectiveRole())
	})

	t.Run("existing password account is reused as-is", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		existing := &entity.User{Email: "taro@example.com", FullName: "Taro", PasswordHash: "digest", Role: entity.RoleTutor}
		require.NoError(t, db.Create(existing).Error)

		user, err := repo.GetOrCreate(context.Background(), "taro@example.com", "Google Name", entity.RoleTutor)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		assert.Equal(t, "digest", user.PasswordHash)
	})
}
