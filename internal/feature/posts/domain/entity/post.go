// Package entity defines the social feed entities.
package entity

import "time"

// Post is a social feed entry. PetID optionally tags the pet the post is
// about; it is not validated against ownership so shared or past pets can
// still be tagged.
type Post struct {
	ID         uint  `gorm:"primaryKey"`
	UserID     uint  `gorm:"index;not null"`
	PetID      *uint `gorm:"index"`
	Content    string `gorm:"type:text"`
	MediaURLs  string `gorm:"size:1024"`
	Visibility string `gorm:"size:20"`
	CreatedAt  time.Time
}

// PostLike records one user's like on a post. The composite unique index
// makes likes idempotent at the storage layer.
type PostLike struct {
	ID     uint `gorm:"primaryKey"`
	PostID uint `gorm:"uniqueIndex:idx_post_like_once;not null"`
	UserID uint `gorm:"uniqueIndex:idx_post_like_once;not null"`
}

// PostComment is a comment on a post.
type PostComment struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"not null"`
	Comment   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
