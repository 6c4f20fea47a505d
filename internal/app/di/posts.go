package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"petverse_backend/internal/feature/posts/adapters"
	"petverse_backend/internal/feature/posts/usecase"
	"petverse_backend/internal/platform/cache"
)

// FeedCacheTTL bounds staleness of the public feed listing.
const FeedCacheTTL = time.Minute

// NewPostRepository creates the post repository wrapped with the Redis
// feed cache. rdb may be nil; the decorator then passes reads through.
func NewPostRepository(rdb *redis.Client, db *gorm.DB) usecase.PostRepository {
	inner := adapters.NewPostPostgres(db)
	return cache.NewCachingPostRepository(rdb, FeedCacheTTL, inner, "posts")
}
