// Package service contains interface for the feed client business-logic.
package service

import (
	"context"

	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/session"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Service is everything a presentation layer may do with the feed.
// Mutations act on behalf of the logged in user.
type Service interface {
	Start(ctx context.Context) error

	Session() (*entities.User, bool)
	Login(ctx context.Context, c session.Credentials) (entities.User, error)
	Logout(ctx context.Context) error

	Feed() []entities.Post
	SetSearch(term string)
	SetSort(mode entities.SortMode)
	View() (term string, mode entities.SortMode)

	CreatePost(ctx context.Context, content, imageURL string) (entities.Post, error)
	EditPost(ctx context.Context, id, content string) (entities.Post, error)
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id string) (entities.Post, error)

	Theme() entities.Theme
	ToggleTheme(ctx context.Context) entities.Theme

	Draft() string
	SetDraft(text string)
	Spark(ctx context.Context) (text string, applied bool, err error)

	// Durable is false while posts live in memory only.
	Durable() bool
}
