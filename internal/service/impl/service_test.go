package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/socialspark/spark/internal/assist"
	"github.com/socialspark/spark/internal/assist/mock"
	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/feed"
	"github.com/socialspark/spark/internal/preferences"
	"github.com/socialspark/spark/internal/service"
	"github.com/socialspark/spark/internal/session"
	"github.com/socialspark/spark/internal/storage"
	"github.com/socialspark/spark/internal/storage/memory"
)

var ctx = context.Background()

var demo = session.Credentials{
	Name:     "Demo",
	Email:    "demo@example.com",
	Password: "secret",
	SignUp:   true,
}

func newService(t *testing.T, s storage.Storage, m assist.Model) service.Service {
	srv := New(
		session.New(s, session.MockProvider{}),
		feed.New(s),
		preferences.NewTheme(s, entities.ThemeLight),
		assist.NewDraft(assist.New(m, 0)),
	)
	require.NoError(t, srv.Start(ctx))

	return srv
}

func TestService_Start(t *testing.T) {
	s := memory.New()
	srv := newService(t, s, nil)

	require.Len(t, srv.Feed(), 2)
	require.True(t, srv.Durable())
	require.Equal(t, entities.ThemeLight, srv.Theme())

	_, ok := srv.Session()
	require.False(t, ok)

	require.True(t, errors.Is(srv.Start(ctx), feed.ErrAlreadyInitialized))
}

// unreadable fails every Load of posts.
type unreadable struct {
	storage.Storage
}

func (u unreadable) Load(ctx context.Context, key string) (string, error) {
	if key == entities.PostsKey {
		return "", errors.New("connection refused")
	}

	return u.Storage.Load(ctx, key)
}

func TestService_Start_StorageError(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.Save(ctx, entities.PostsKey, "[]"))

	srv := newService(t, unreadable{Storage: s}, nil)
	require.Empty(t, srv.Feed())
	require.False(t, srv.Durable())

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	_, err = srv.CreatePost(ctx, "hello", "")
	require.True(t, errors.Is(err, feed.ErrNotInitialized))

	v, err := s.Load(ctx, entities.PostsKey)
	require.NoError(t, err)
	require.Equal(t, "[]", v)
}

func TestService_Start_RestoresSession(t *testing.T) {
	s := memory.New()
	first := newService(t, s, nil)

	u, err := first.Login(ctx, demo)
	require.NoError(t, err)

	second := newService(t, s, nil)
	restored, ok := second.Session()
	require.True(t, ok)
	require.Equal(t, u, *restored)
}

func TestService_Login_Twice(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	_, err = srv.Login(ctx, demo)
	require.True(t, errors.Is(err, session.ErrAlreadyLoggedIn))
}

func TestService_Mutations_RequireSession(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	_, err := srv.CreatePost(ctx, "hello", "")
	require.True(t, errors.Is(err, entities.ErrUnauthenticated))

	_, err = srv.EditPost(ctx, "1", "x")
	require.True(t, errors.Is(err, entities.ErrUnauthenticated))

	require.True(t, errors.Is(srv.DeletePost(ctx, "1"), entities.ErrUnauthenticated))

	_, err = srv.ToggleLike(ctx, "1")
	require.True(t, errors.Is(err, entities.ErrUnauthenticated))

	_, _, err = srv.Spark(ctx)
	require.True(t, errors.Is(err, entities.ErrUnauthenticated))

	require.Len(t, srv.Feed(), 2)
}

func TestService_CreatePost_ClearsDraft(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	u, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	srv.SetDraft("hello world")

	p, err := srv.CreatePost(ctx, "hello world", "")
	require.NoError(t, err)
	require.Equal(t, u.ID, p.UserID)
	require.Equal(t, "", srv.Draft())

	posts := srv.Feed()
	require.Len(t, posts, 3)
	require.Equal(t, p.ID, posts[0].ID)
}

func TestService_CreatePost_Invalid_KeepsDraft(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	srv.SetDraft("   ")

	_, err = srv.CreatePost(ctx, "   ", "")
	require.True(t, errors.Is(err, entities.ErrValidation))
	require.Equal(t, "   ", srv.Draft())
}

func TestService_Feed_View(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	srv.SetSearch("tutorial ")
	term, mode := srv.View()
	require.Equal(t, "tutorial ", term, "term is kept verbatim")
	require.Equal(t, entities.SortLatest, mode)
	require.Empty(t, srv.Feed(), "trailing space is part of the term")

	srv.SetSearch("SARAH")
	posts := srv.Feed()
	require.Len(t, posts, 1)
	require.Equal(t, "1", posts[0].ID)

	srv.SetSearch("")
	srv.SetSort(entities.SortMostLiked)

	posts = srv.Feed()
	require.Len(t, posts, 2)
	require.Equal(t, "1", posts[0].ID)

	srv.SetSort(entities.SortOldest)
	require.Equal(t, "1", srv.Feed()[0].ID)
}

func TestService_ToggleLike(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	u, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	p, err := srv.ToggleLike(ctx, "2")
	require.NoError(t, err)
	require.True(t, p.LikedBy(u.ID))

	p, err = srv.ToggleLike(ctx, "2")
	require.NoError(t, err)
	require.False(t, p.LikedBy(u.ID))
}

func TestService_EditDelete_Foreign(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	_, err = srv.EditPost(ctx, "1", "mine now")
	require.True(t, errors.Is(err, entities.ErrPermissionDenied))

	require.True(t, errors.Is(srv.DeletePost(ctx, "1"), entities.ErrPermissionDenied))
	require.True(t, errors.Is(srv.DeletePost(ctx, "missing"), entities.ErrNotFound))
}

func TestService_Logout_ResetsView(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	srv.SetDraft("unsent")
	srv.SetSearch("john")
	srv.SetSort(entities.SortOldest)

	require.NoError(t, srv.Logout(ctx))

	term, mode := srv.View()
	require.Equal(t, "", term)
	require.Equal(t, entities.SortLatest, mode)
	require.Equal(t, "", srv.Draft())

	require.True(t, errors.Is(srv.Logout(ctx), session.ErrNotLoggedIn))
}

func TestService_ToggleTheme(t *testing.T) {
	s := memory.New()
	srv := newService(t, s, nil)

	require.Equal(t, entities.ThemeDark, srv.ToggleTheme(ctx))
	require.Equal(t, entities.ThemeDark, srv.Theme())

	require.Equal(t, entities.ThemeDark, newService(t, s, nil).Theme())
}

func TestService_Spark(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockModel(ctrl)
	srv := newService(t, memory.New(), m)

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	m.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("Sunny vibes ☀️", nil)

	srv.SetDraft("sun")
	text, applied, err := srv.Spark(ctx)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, "Sunny vibes ☀️", text)
	require.Equal(t, text, srv.Draft())
}

func TestService_Spark_Unconfigured(t *testing.T) {
	srv := newService(t, memory.New(), nil)

	_, err := srv.Login(ctx, demo)
	require.NoError(t, err)

	text, applied, err := srv.Spark(ctx)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, assist.MissingKeyMessage, text)
}
