// Package dto defines data transfer objects for the social feed's HTTP
// transport layer.
package dto

// PostCreateReq represents the request body for POST /posts.
type PostCreateReq struct {
	Content    string `json:"content" binding:"required,min=1"`
	MediaURLs  string `json:"media_urls"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=public private"`
	PetID      *uint  `json:"pet_id"`
}

// PostUpdateReq represents the request body for PUT /posts/:id. Absent
// fields are left unchanged.
type PostUpdateReq struct {
	Content    *string `json:"content" binding:"omitempty,min=1"`
	MediaURLs  *string `json:"media_urls"`
	Visibility *string `json:"visibility" binding:"omitempty,oneof=public private"`
	PetID      *uint   `json:"pet_id"`
}

// CommentCreateReq represents the request body for POST /posts/:id/comments.
type CommentCreateReq struct {
	Comment string `json:"comment" binding:"required,min=1"`
}
