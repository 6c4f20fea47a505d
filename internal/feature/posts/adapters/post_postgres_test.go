package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petverse_backend/internal/feature/posts/domain/entity"
	"petverse_backend/internal/feature/posts/usecase"
)

// setupTestDB prepares an in-memory SQLite database with the feed tables.
// TranslateError is on so the like unique index reports duplicates the way
// Postgres does.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Post{}, &entity.PostLike{}, &entity.PostComment{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, content string) *entity.Post {
	t.Helper()

	post := &entity.Post{UserID: userID, Content: content, Visibility: "public"}
	require.NoError(t, db.Create(post).Error, "failed to seed post")
	return post
}

func TestPostPostgres_ListOrdering(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostPostgres(db)

	first := seedPost(t, db, 1, "first")
	second := seedPost(t, db, 2, "second")

	posts, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID, "newest post comes first")
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestPostPostgres_ListFilteredByPet(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostPostgres(db)

	petID := uint(5)
	tagged := &entity.Post{UserID: 1, Content: "with pet", PetID: &petID, Visibility: "public"}
	require.NoError(t, db.Create(tagged).Error)
	seedPost(t, db, 1, "without pet")

	posts, err := repo.List(context.Background(), &petID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "with pet", posts[0].Content)

	other := uint(99)
	posts, err = repo.List(context.Background(), &other)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostPostgres_FindByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostPostgres(db)
	post := seedPost(t, db, 1, "hello")

	found, err := repo.FindByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Content)

	_, err = repo.FindByID(context.Background(), post.ID+100)
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)
}

func TestPostPostgres_CreateLike_Duplicate(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostPostgres(db)
	post := seedPost(t, db, 1, "like me")

	like := &entity.PostLike{PostID: post.ID, UserID: 2}
	require.NoError(t, repo.CreateLike(context.Background(), like))

	dup := &entity.PostLike{PostID: post.ID, UserID: 2}
	err := repo.CreateLike(context.Background(), dup)
	assert.ErrorIs(t, err, usecase.ErrDuplicateLike)

	found, err := repo.FindLike(context.Background(), post.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, like.ID, found.ID)
}

func TestPostPostgres_DeleteCascades(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostPostgres(db)
	post := seedPost(t, db, 1, "doomed")

	require.NoError(t, repo.CreateLike(context.Background(), &entity.PostLike{PostID: post.ID, UserID: 2}))
	require.NoError(t, repo.CreateComment(context.Background(), &entity.PostComment{PostID: post.ID, UserID: 2, Comment: "bye"}))

	require.NoError(t, repo.Delete(context.Background(), post.ID))

	_, err := repo.FindByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)

	likes, err := repo.ListLikes(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	comments, err := repo.ListComments(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostPostgres_Comments(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostPostgres(db)
	post := seedPost(t, db, 1, "discuss")

	comment := &entity.PostComment{PostID: post.ID, UserID: 2, Comment: "nice"}
	require.NoError(t, repo.CreateComment(context.Background(), comment))

	found, err := repo.FindComment(context.Background(), post.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "nice", found.Comment)

	t.Run("comment under the wrong post is missing", func(t *testing.T) {
		other := seedPost(t, db, 1, "other")
		_, err := repo.FindComment(context.Background(), other.ID, comment.ID)
		assert.ErrorIs(t, err, usecase.ErrCommentNotFound)
	})

	require.NoError(t, repo.DeleteComment(context.Background(), post.ID, comment.ID))
	_, err = repo.FindComment(context.Background(), post.ID, comment.ID)
	assert.ErrorIs(t, err, usecase.ErrCommentNotFound)
}
