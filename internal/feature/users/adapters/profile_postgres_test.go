package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petverse_backend/internal/feature/users/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.UserSettings{}, &entity.UserAddress{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestProfilePostgres_Settings(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewProfilePostgres(db)
	ctx := context.Background()

	found, err := repo.FindSettings(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, found, "missing row reads as nil, not an error")

	enabled := true
	require.NoError(t, repo.SaveSettings(ctx, &entity.UserSettings{
		UserID:               1,
		NotificationsEnabled: &enabled,
		Language:             "es",
	}))

	found, err = repo.FindSettings(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "es", found.Language)

	// Saving the loaded row updates in place instead of inserting.
	found.Timezone = "America/Bogota"
	require.NoError(t, repo.SaveSettings(ctx, found))

	var count int64
	require.NoError(t, db.Model(&entity.UserSettings{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfilePostgres_Address(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewProfilePostgres(db)
	ctx := context.Background()

	found, err := repo.FindAddress(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, found)

	require.NoError(t, repo.SaveAddress(ctx, &entity.UserAddress{
		UserID:  1,
		Country: "CO",
		City:    "Bogota",
	}))

	found, err = repo.FindAddress(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bogota", found.City)

	_, err = repo.FindAddress(ctx, 2)
	require.NoError(t, err)
}
