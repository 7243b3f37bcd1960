// Package entities contains main entities of the feed.
package entities

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is returned when input has nothing to act upon, e.g. an empty post.
	ErrValidation = errors.New("validation failed")
	// ErrPermissionDenied is returned when a non-author tries to change a post.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound is returned when a post id is absent from the feed.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when a mutation is requested without a user.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// User ...
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// UserIDFromEmail derives stable user id: lowercased email without non-alphanumeric characters.
func UserIDFromEmail(email string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(email) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Post ...
// AuthorName and AuthorAvatar are a snapshot of the author taken at creation time.
type Post struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	AuthorName   string   `json:"authorName"`
	AuthorAvatar string   `json:"authorAvatar"`
	Content      string   `json:"content"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Likes        []string `json:"likes"`
	// Timestamp is creation time in unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// LikedBy reports whether userID is in the likes set.
func (p Post) LikedBy(userID string) bool {
	for _, v := range p.Likes {
		if v == userID {
			return true
		}
	}

	return false
}

// Clone returns a copy which does not share the likes slice.
func (p Post) Clone() Post {
	out := p
	out.Likes = make([]string, len(p.Likes))
	copy(out.Likes, p.Likes)

	return out
}

// SortMode ...
type SortMode string

const (
	// SortLatest orders posts by timestamp descending.
	SortLatest SortMode = "LATEST"
	// SortOldest orders posts by timestamp ascending.
	SortOldest SortMode = "OLDEST"
	// SortMostLiked orders posts by likes count descending.
	SortMostLiked SortMode = "MOST_LIKED"
)

// Theme ...
type Theme string

const (
	// ThemeLight ...
	ThemeLight Theme = "light"
	// ThemeDark ...
	ThemeDark Theme = "dark"
)

// Storage keys of persisted records.
const (
	UserKey  = "socialspark_user"
	PostsKey = "socialspark_posts"
	ThemeKey = "socialspark_theme"
)
