// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/assist"
	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/feed"
	"github.com/socialspark/spark/internal/preferences"
	"github.com/socialspark/spark/internal/query"
	"github.com/socialspark/spark/internal/service"
	"github.com/socialspark/spark/internal/session"
)

var log = logrus.WithField("package", "service")

// srv ...
type srv struct {
	session *session.Controller
	feed    *feed.Store
	theme   *preferences.Theme
	draft   *assist.Draft

	mu   sync.RWMutex
	term string
	mode entities.SortMode
}

// New creates new instance of service.
func New(sc *session.Controller, f *feed.Store, t *preferences.Theme, d *assist.Draft) service.Service {
	return &srv{
		session: sc,
		feed:    f,
		theme:   t,
		draft:   d,
		mode:    entities.SortLatest,
	}
}

func (s *srv) Start(ctx context.Context) error {
	state := s.session.Restore(ctx)
	theme := s.theme.Load(ctx)

	if err := s.feed.Initialize(ctx); err != nil {
		if errors.Is(err, feed.ErrAlreadyInitialized) {
			return fmt.Errorf("failed to initialize feed: %w", err)
		}
		// mutations answer ErrNotInitialized until the flusher manages to load posts
		log.WithError(err).Error("failed to initialize feed")
	}

	log.WithFields(logrus.Fields{
		"session": state,
		"theme":   theme,
		"durable": s.feed.Durable(),
	}).Info("service started")

	return nil
}

func (s *srv) Session() (*entities.User, bool) {
	return s.session.Current()
}

func (s *srv) Login(ctx context.Context, c session.Credentials) (entities.User, error) {
	u, err := s.session.Login(ctx, c)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to login: %w", err)
	}

	return u, nil
}

func (s *srv) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	s.draft.Clear()

	s.mu.Lock()
	s.term, s.mode = "", entities.SortLatest
	s.mu.Unlock()

	return nil
}

func (s *srv) Feed() []entities.Post {
	term, mode := s.View()

	return query.Project(s.feed.Posts(), term, mode)
}

func (s *srv) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.term = term
}

func (s *srv) SetSort(mode entities.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
}

func (s *srv) View() (string, entities.SortMode) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.term, s.mode
}

func (s *srv) CreatePost(ctx context.Context, content, imageURL string) (entities.Post, error) {
	u, _ := s.session.Current()

	p, err := s.feed.CreatePost(ctx, u, content, imageURL)
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.draft.Clear()

	return p, nil
}

func (s *srv) EditPost(ctx context.Context, id, content string) (entities.Post, error) {
	u, _ := s.session.Current()

	p, err := s.feed.EditPost(ctx, u, id, content)
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to edit post %s: %w", id, err)
	}

	return p, nil
}

func (s *srv) DeletePost(ctx context.Context, id string) error {
	u, _ := s.session.Current()

	if err := s.feed.DeletePost(ctx, u, id); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	return nil
}

func (s *srv) ToggleLike(ctx context.Context, id string) (entities.Post, error) {
	u, _ := s.session.Current()

	p, err := s.feed.ToggleLike(ctx, u, id)
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to toggle like on post %s: %w", id, err)
	}

	return p, nil
}

func (s *srv) Theme() entities.Theme {
	return s.theme.Get()
}

func (s *srv) ToggleTheme(ctx context.Context) entities.Theme {
	return s.theme.Toggle(ctx)
}

func (s *srv) Draft() string {
	return s.draft.Text()
}

func (s *srv) SetDraft(text string) {
	s.draft.Set(text)
}

func (s *srv) Spark(ctx context.Context) (string, bool, error) {
	if _, ok := s.session.Current(); !ok {
		return "", false, entities.ErrUnauthenticated
	}

	return s.draft.Spark(ctx)
}

func (s *srv) Durable() bool {
	return s.feed.Durable()
}
