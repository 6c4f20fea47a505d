// Package adapters provides the repository implementations for the social
// feed.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"petverse_backend/internal/feature/posts/domain/entity"
	"petverse_backend/internal/feature/posts/usecase"
)

type postPostgres struct {
	db *gorm.DB
}

var (
	_ usecase.PostRepository     = (*postPostgres)(nil)
	_ usecase.ReactionRepository = (*postPostgres)(nil)
)

// NewPostPostgres creates a postPostgres with the given gorm.DB connection.
func NewPostPostgres(db *gorm.DB) *postPostgres {
	return &postPostgres{db: db}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *postPostgres) List(ctx context.Context, petID *uint) ([]entity.Post, error) {
	var posts []entity.Post
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if petID != nil {
		q = q.Where("pet_id = ?", *petID)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postPostgres) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postPostgres) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postPostgres) Update(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&entity.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&entity.PostComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Post{}, id).Error
	})
}

func (r *postPostgres) ListLikes(ctx context.Context, postID uint) ([]entity.PostLike, error) {
	var likes []entity.PostLike
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *postPostgres) FindLike(ctx context.Context, postID, userID uint) (*entity.PostLike, error) {
	var like entity.PostLike
	if err := r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *postPostgres) CreateLike(ctx context.Context, like *entity.PostLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateLike
		}
		return err
	}
	return nil
}

func (r *postPostgres) DeleteLike(ctx context.Context, postID, userID uint) error {
	return r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).Delete(&entity.PostLike{}).Error
}

func (r *postPostgres) ListComments(ctx context.Context, postID uint) ([]entity.PostComment, error) {
	var comments []entity.PostComment
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *postPostgres) FindComment(ctx context.Context, postID, commentID uint) (*entity.PostComment, error) {
	var comment entity.PostComment
	if err := r.db.WithContext(ctx).Where("post_id = ? AND id = ?", postID, commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *postPostgres) CreateComment(ctx context.Context, comment *entity.PostComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *postPostgres) DeleteComment(ctx context.Context, postID, commentID uint) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&entity.PostComment{}, commentID).Error
}
