// Package usecase implements the business logic for the social feed.
//
// Reads are public. Mutations require the caller to own the resource; a
// post or comment owned by someone else is reported as missing so IDs
// cannot be probed.
package usecase

import (
	"context"
	"errors"

	"petverse_backend/internal/feature/posts/domain/entity"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrLikeNotFound    = errors.New("like not found")

	// ErrDuplicateLike is returned by the repository when the composite
	// unique index rejects a second like; the usecase resolves it to the
	// existing row.
	ErrDuplicateLike = errors.New("post already liked")
)

// PostRepository abstracts post persistence. List is the hot read path and
// is wrapped by the Redis cache decorator; a nil petID means the whole feed.
type PostRepository interface {
	List(ctx context.Context, petID *uint) ([]entity.Post, error)
	FindByID(ctx context.Context, id uint) (*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uint) error
}

// ReactionRepository abstracts like and comment persistence.
type ReactionRepository interface {
	ListLikes(ctx context.Context, postID uint) ([]entity.PostLike, error)
	FindLike(ctx context.Context, postID, userID uint) (*entity.PostLike, error)
	CreateLike(ctx context.Context, like *entity.PostLike) error
	DeleteLike(ctx context.Context, postID, userID uint) error

	ListComments(ctx context.Context, postID uint) ([]entity.PostComment, error)
	FindComment(ctx context.Context, postID, commentID uint) (*entity.PostComment, error)
	CreateComment(ctx context.Context, comment *entity.PostComment) error
	DeleteComment(ctx context.Context, postID, commentID uint) error
}

// PostChanges carries the updatable fields of a post. Nil fields are left
// unchanged.
type PostChanges struct {
	Content    *string
	MediaURLs  *string
	Visibility *string
	PetID      *uint
}

type postsUsecase struct {
	posts     PostRepository
	reactions ReactionRepository
}

// NewPostsUsecase creates a new postsUsecase instance.
func NewPostsUsecase(posts PostRepository, reactions ReactionRepository) *postsUsecase {
	return &postsUsecase{posts: posts, reactions: reactions}
}

// ListPosts returns the public feed, newest first, optionally narrowed to
// one pet.
func (u *postsUsecase) ListPosts(ctx context.Context, petID *uint) ([]entity.Post, error) {
	return u.posts.List(ctx, petID)
}

// GetPost returns one post. Public.
func (u *postsUsecase) GetPost(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// CreatePost stores a new post authored by userID.
func (u *postsUsecase) CreatePost(ctx context.Context, userID uint, post *entity.Post) (*entity.Post, error) {
	post.ID = 0
	post.UserID = userID
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies changes to the caller's own post.
func (u *postsUsecase) UpdatePost(ctx context.Context, userID, postID uint, changes PostChanges) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrPostNotFound
	}
	if changes.Content != nil {
		post.Content = *changes.Content
	}
	if changes.MediaURLs != nil {
		post.MediaURLs = *changes.MediaURLs
	}
	if changes.Visibility != nil {
		post.Visibility = *changes.Visibility
	}
	if changes.PetID != nil {
		post.PetID = changes.PetID
	}
	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the caller's own post.
func (u *postsUsecase) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrPostNotFound
	}
	return u.posts.Delete(ctx, postID)
}

// LikePost records userID's like on a post. Liking twice is a no-op that
// returns the existing like, so clients can retry freely.
func (u *postsUsecase) LikePost(ctx context.Context, userID, postID uint) (*entity.PostLike, error) {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	like := &entity.PostLike{PostID: postID, UserID: userID}
	err := u.reactions.CreateLike(ctx, like)
	if err == nil {
		return like, nil
	}
	if errors.Is(err, ErrDuplicateLike) {
		return u.reactions.FindLike(ctx, postID, userID)
	}
	return nil, err
}

// UnlikePost removes userID's like from a post.
func (u *postsUsecase) UnlikePost(ctx context.Context, userID, postID uint) error {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return err
	}
	if _, err := u.reactions.FindLike(ctx, postID, userID); err != nil {
		return err
	}
	return u.reactions.DeleteLike(ctx, postID, userID)
}

// ListLikes returns all likes on a post. Public.
func (u *postsUsecase) ListLikes(ctx context.Context, postID uint) ([]entity.PostLike, error) {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return u.reactions.ListLikes(ctx, postID)
}

// ListComments returns all comments on a post, oldest first. Public.
func (u *postsUsecase) ListComments(ctx context.Context, postID uint) ([]entity.PostComment, error) {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return u.reactions.ListComments(ctx, postID)
}

// CreateComment adds userID's comment to a post.
func (u *postsUsecase) CreateComment(ctx context.Context, userID, postID uint, text string) (*entity.PostComment, error) {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	comment := &entity.PostComment{PostID: postID, UserID: userID, Comment: text}
	if err := u.reactions.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the caller's own comment from a post.
func (u *postsUsecase) DeleteComment(ctx context.Context, userID, postID, commentID uint) error {
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return err
	}
	comment, err := u.reactions.FindComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrCommentNotFound
	}
	return u.reactions.DeleteComment(ctx, postID, commentID)
}
