package server

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/socialspark/spark/internal/entities"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Post is a post as seen by the requester.
// swagger:model
type Post struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	AuthorName   string   `json:"authorName"`
	AuthorAvatar string   `json:"authorAvatar"`
	Content      string   `json:"content"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Likes        []string `json:"likes"`
	LikesCount   int      `json:"likesCount"`
	// Liked is true when the requester liked the post.
	Liked bool `json:"liked"`
	// Own is true when the requester is the author.
	Own       bool   `json:"own"`
	Timestamp int64  `json:"timestamp"`
	Ago       string `json:"ago"`
}

// FeedResponse ...
// swagger:model
type FeedResponse struct {
	Posts []Post `json:"posts"`
	Query string `json:"query"`
	Sort  string `json:"sort"`
	// Durable is false when the last write to storage failed.
	Durable bool `json:"durable"`
}

// User ...
// swagger:model
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// SessionResponse ...
// swagger:model
type SessionResponse struct {
	LoggedIn bool  `json:"loggedIn"`
	User     *User `json:"user,omitempty"`
}

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	SignUp   bool   `json:"signUp"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// EditPostRequest ...
// swagger:model
type EditPostRequest struct {
	Content string `json:"content"`
}

// ThemeResponse ...
// swagger:model
type ThemeResponse struct {
	Theme entities.Theme `json:"theme"`
}

// DraftRequest ...
// swagger:model
type DraftRequest struct {
	Text string `json:"text"`
}

// DraftResponse ...
// swagger:model
type DraftResponse struct {
	Text string `json:"text"`
	// Applied is false when the draft was changed while the assistant was working.
	Applied bool `json:"applied"`
}

func toAPIUser(u *entities.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}

func toAPIPost(p entities.Post, requester *entities.User, now time.Time) Post {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}

	out := Post{
		ID:           p.ID,
		UserID:       p.UserID,
		AuthorName:   p.AuthorName,
		AuthorAvatar: p.AuthorAvatar,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		Likes:        likes,
		LikesCount:   len(likes),
		Timestamp:    p.Timestamp,
		Ago:          humanize.RelTime(time.UnixMilli(p.Timestamp), now, "ago", "from now"),
	}

	if requester != nil {
		out.Liked = p.LikedBy(requester.ID)
		out.Own = p.UserID == requester.ID
	}

	return out
}

func toAPIPosts(pp []entities.Post, requester *entities.User, now time.Time) []Post {
	out := make([]Post, len(pp))
	for i, p := range pp {
		out[i] = toAPIPost(p, requester, now)
	}

	return out
}
