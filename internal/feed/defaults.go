package feed

import (
	"time"

	"github.com/socialspark/spark/internal/entities"
)

// DefaultPosts returns the posts shown on the first run so the feed is never empty. Newest first.
func DefaultPosts(now time.Time) []entities.Post {
	ms := now.UnixMilli()

	return []entities.Post{
		{
			ID:           "2",
			UserID:       "john",
			AuthorName:   "John Doe",
			AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=john",
			Content:      "Does anyone know a good React tutorial? 🤔",
			Likes:        []string{},
			Timestamp:    ms - 5000000,
		},
		{
			ID:           "1",
			UserID:       "demo",
			AuthorName:   "Sarah Connor",
			AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=sarah",
			Content:      "Just finished my first coding project! 🚀 #coding #webdev",
			ImageURL:     "https://picsum.photos/800/400",
			Likes:        []string{"demo", "test"},
			Timestamp:    ms - 10000000,
		},
	}
}
