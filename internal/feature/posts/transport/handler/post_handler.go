// Package handler provides the HTTP handlers for the social feed.
//
// Feed reads are public routes; everything else sits behind the auth
// middleware.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petverse_backend/internal/api"
	pethandler "petverse_backend/internal/feature/pets/transport/handler"
	"petverse_backend/internal/feature/posts/domain/entity"
	"petverse_backend/internal/feature/posts/transport/http/dto"
	"petverse_backend/internal/feature/posts/usecase"
)

// PostsUsecase defines the feed operations consumed by the handlers.
type PostsUsecase interface {
	ListPosts(ctx context.Context, petID *uint) ([]entity.Post, error)
	GetPost(ctx context.Context, id uint) (*entity.Post, error)
	CreatePost(ctx context.Context, userID uint, post *entity.Post) (*entity.Post, error)
	UpdatePost(ctx context.Context, userID, postID uint, changes usecase.PostChanges) (*entity.Post, error)
	DeletePost(ctx context.Context, userID, postID uint) error

	LikePost(ctx context.Context, userID, postID uint) (*entity.PostLike, error)
	UnlikePost(ctx context.Context, userID, postID uint) error
	ListLikes(ctx context.Context, postID uint) ([]entity.PostLike, error)

	ListComments(ctx context.Context, postID uint) ([]entity.PostComment, error)
	CreateComment(ctx context.Context, userID, postID uint, text string) (*entity.PostComment, error)
	DeleteComment(ctx context.Context, userID, postID, commentID uint) error
}

// PostHandler handles the HTTP requests for the social feed.
type PostHandler struct {
	posts PostsUsecase
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(posts PostsUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

func postToResponse(p *entity.Post) api.PostResponse {
	return api.PostResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		PetID:      p.PetID,
		Content:    p.Content,
		MediaURLs:  p.MediaURLs,
		Visibility: p.Visibility,
		CreatedAt:  p.CreatedAt,
	}
}

func likeToResponse(l *entity.PostLike) api.LikeResponse {
	return api.LikeResponse{ID: l.ID, PostID: l.PostID, UserID: l.UserID}
}

func commentToResponse(cm *entity.PostComment) api.CommentResponse {
	return api.CommentResponse{
		ID:        cm.ID,
		PostID:    cm.PostID,
		UserID:    cm.UserID,
		Comment:   cm.Comment,
		CreatedAt: cm.CreatedAt,
	}
}

func replyFeedErr(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
	case errors.Is(err, usecase.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "comment not found"})
	case errors.Is(err, usecase.ErrLikeNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "like not found"})
	default:
		slog.Error("feed operation failed", "action", action, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + action})
	}
}

// List handles GET /posts. Public. An optional pet_id query parameter
// narrows the feed to one pet.
func (h *PostHandler) List(c *gin.Context) {
	var petID *uint
	if raw := c.Query("pet_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid pet_id"})
			return
		}
		v := uint(id)
		petID = &v
	}
	posts, err := h.posts.ListPosts(c.Request.Context(), petID)
	if err != nil {
		replyFeedErr(c, err, "list posts")
		return
	}
	out := make([]api.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, postToResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /posts/:id. Public.
func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	post, err := h.posts.GetPost(c.Request.Context(), postID)
	if err != nil {
		replyFeedErr(c, err, "load post")
		return
	}
	c.JSON(http.StatusOK, postToResponse(post))
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	var req dto.PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	post := &entity.Post{
		Content:    req.Content,
		MediaURLs:  req.MediaURLs,
		Visibility: req.Visibility,
		PetID:      req.PetID,
	}
	created, err := h.posts.CreatePost(c.Request.Context(), identity.ID, post)
	if err != nil {
		replyFeedErr(c, err, "create post")
		return
	}
	c.JSON(http.StatusCreated, postToResponse(created))
}

// Update handles PUT /posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PostUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	changes := usecase.PostChanges{
		Content:    req.Content,
		MediaURLs:  req.MediaURLs,
		Visibility: req.Visibility,
		PetID:      req.PetID,
	}
	post, err := h.posts.UpdatePost(c.Request.Context(), identity.ID, postID, changes)
	if err != nil {
		replyFeedErr(c, err, "update post")
		return
	}
	c.JSON(http.StatusOK, postToResponse(post))
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.posts.DeletePost(c.Request.Context(), identity.ID, postID); err != nil {
		replyFeedErr(c, err, "delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

// Like handles POST /posts/:id/likes. Liking twice returns the existing
// like.
func (h *PostHandler) Like(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	like, err := h.posts.LikePost(c.Request.Context(), identity.ID, postID)
	if err != nil {
		replyFeedErr(c, err, "like post")
		return
	}
	c.JSON(http.StatusCreated, likeToResponse(like))
}

// Unlike handles DELETE /posts/:id/likes.
func (h *PostHandler) Unlike(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.posts.UnlikePost(c.Request.Context(), identity.ID, postID); err != nil {
		replyFeedErr(c, err, "unlike post")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLikes handles GET /posts/:id/likes. Public.
func (h *PostHandler) ListLikes(c *gin.Context) {
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	likes, err := h.posts.ListLikes(c.Request.Context(), postID)
	if err != nil {
		replyFeedErr(c, err, "list likes")
		return
	}
	out := make([]api.LikeResponse, 0, len(likes))
	for i := range likes {
		out = append(out, likeToResponse(&likes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListComments handles GET /posts/:id/comments. Public.
func (h *PostHandler) ListComments(c *gin.Context) {
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.posts.ListComments(c.Request.Context(), postID)
	if err != nil {
		replyFeedErr(c, err, "list comments")
		return
	}
	out := make([]api.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, commentToResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateComment handles POST /posts/:id/comments.
func (h *PostHandler) CreateComment(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("comment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	comment, err := h.posts.CreateComment(c.Request.Context(), identity.ID, postID, req.Comment)
	if err != nil {
		replyFeedErr(c, err, "create comment")
		return
	}
	c.JSON(http.StatusCreated, commentToResponse(comment))
}

// DeleteComment handles DELETE /posts/:id/comments/:commentID.
func (h *PostHandler) DeleteComment(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	postID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := pethandler.ParseIDParam(c, "commentID")
	if !ok {
		return
	}
	if err := h.posts.DeleteComment(c.Request.Context(), identity.ID, postID, commentID); err != nil {
		replyFeedErr(c, err, "delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
