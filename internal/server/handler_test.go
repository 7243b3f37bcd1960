package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialspark/spark/internal/assist"
	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/health"
	"github.com/socialspark/spark/internal/service/mock"
	"github.com/socialspark/spark/internal/session"
)

var now = time.Unix(20000, 0)

var demo = &entities.User{
	ID:     "demoexamplecom",
	Name:   "Demo",
	Email:  "demo@example.com",
	Avatar: "avatar",
}

func newPost(id, userID string, ts int64, likes ...string) entities.Post {
	return entities.Post{
		ID:           id,
		UserID:       userID,
		AuthorName:   "name " + id,
		AuthorAvatar: "avatar " + id,
		Content:      "content " + id,
		Likes:        likes,
		Timestamp:    ts,
	}
}

func serve(t *testing.T, method, pattern, target, body string, h func(s server) http.HandlerFunc, expect func(s *mock.MockService)) *httptest.ResponseRecorder {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockService(ctrl)
	expect(srv)

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	router := chi.NewRouter()
	router.Method(method, pattern, h(server{s: srv, now: func() time.Time { return now }}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func Test_getFeed(t *testing.T) {
	w := serve(t, http.MethodGet, "/v1/feed", "/v1/feed?q=content&sort=most_liked", "",
		func(s server) http.HandlerFunc { return s.getFeed },
		func(s *mock.MockService) {
			gomock.InOrder(
				s.EXPECT().SetSort(entities.SortMostLiked),
				s.EXPECT().SetSearch("content"),
			)
			s.EXPECT().Session().Return(demo, true)
			s.EXPECT().View().Return("content", entities.SortMostLiked)
			s.EXPECT().Durable().Return(true)
			s.EXPECT().Feed().Return([]entities.Post{
				newPost("1", "sarah", 10000000, "demoexamplecom", "test"),
				newPost("2", "demoexamplecom", 15000000),
			})
		},
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"posts": [
		{
			"id": "1",
			"userId": "sarah",
			"authorName": "name 1",
			"authorAvatar": "avatar 1",
			"content": "content 1",
			"likes": ["demoexamplecom", "test"],
			"likesCount": 2,
			"liked": true,
			"own": false,
			"timestamp": 10000000,
			"ago": "2 hours ago"
		},
		{
			"id": "2",
			"userId": "demoexamplecom",
			"authorName": "name 2",
			"authorAvatar": "avatar 2",
			"content": "content 2",
			"likes": [],
			"likesCount": 0,
			"liked": false,
			"own": true,
			"timestamp": 15000000,
			"ago": "1 hour ago"
		}
	],
	"query": "content",
	"sort": "MOST_LIKED",
	"durable": true
}
`, w.Body.String())
}

func Test_getFeed_InvalidSort(t *testing.T) {
	w := serve(t, http.MethodGet, "/v1/feed", "/v1/feed?sort=random", "",
		func(s server) http.HandlerFunc { return s.getFeed },
		func(s *mock.MockService) {},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_getSession(t *testing.T) {
	tt := []struct {
		name string
		user *entities.User
		body string
	}{
		{
			name: "logged_out",
			body: `{"loggedIn": false}`,
		},
		{
			name: "logged_in",
			user: demo,
			body: `{"loggedIn": true, "user": {"id": "demoexamplecom", "name": "Demo", "email": "demo@example.com", "avatar": "avatar"}}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, http.MethodGet, "/v1/session", "/v1/session", "",
				func(s server) http.HandlerFunc { return s.getSession },
				func(s *mock.MockService) {
					s.EXPECT().Session().Return(tc.user, tc.user != nil)
				},
			)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func Test_login(t *testing.T) {
	tt := []struct {
		name string
		body string
		err  error
		code int
	}{
		{name: "ok", body: `{"email":"demo@example.com","password":"p"}`, code: http.StatusOK},
		{name: "validation", body: `{"email":"","password":"p"}`, err: entities.ErrValidation, code: http.StatusBadRequest},
		{name: "twice", body: `{"email":"demo@example.com","password":"p"}`, err: session.ErrAlreadyLoggedIn, code: http.StatusConflict},
		{name: "malformed", body: `{`, code: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, "/v1/session", "/v1/session", tc.body,
				func(s server) http.HandlerFunc { return s.login },
				func(s *mock.MockService) {
					if tc.name == "malformed" {
						return
					}
					s.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c session.Credentials) (entities.User, error) {
						assert.Equal(t, "p", c.Password)
						if tc.err != nil {
							return entities.User{}, fmt.Errorf("failed to login: %w", tc.err)
						}
						return *demo, nil
					})
				},
			)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_logout(t *testing.T) {
	w := serve(t, http.MethodDelete, "/v1/session", "/v1/session", "",
		func(s server) http.HandlerFunc { return s.logout },
		func(s *mock.MockService) {
			s.EXPECT().Logout(gomock.Any()).Return(session.ErrNotLoggedIn)
		},
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "not logged in"}`, w.Body.String())
}

func Test_createPost(t *testing.T) {
	w := serve(t, http.MethodPost, "/v1/posts", "/v1/posts", `{"content":"hello","imageUrl":"https://img"}`,
		func(s server) http.HandlerFunc { return s.createPost },
		func(s *mock.MockService) {
			p := newPost("3", demo.ID, now.UnixMilli())
			p.ImageURL = "https://img"
			s.EXPECT().CreatePost(gomock.Any(), "hello", "https://img").Return(p, nil)
			s.EXPECT().Session().Return(demo, true)
		},
	)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": "3",
	"userId": "demoexamplecom",
	"authorName": "name 3",
	"authorAvatar": "avatar 3",
	"content": "content 3",
	"imageUrl": "https://img",
	"likes": [],
	"likesCount": 0,
	"liked": false,
	"own": true,
	"timestamp": 20000000,
	"ago": "now"
}
`, w.Body.String())
}

func Test_editPost(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{name: "ok", code: http.StatusOK},
		{name: "foreign", err: entities.ErrPermissionDenied, code: http.StatusForbidden},
		{name: "missing", err: entities.ErrNotFound, code: http.StatusNotFound},
		{name: "logged_out", err: entities.ErrUnauthenticated, code: http.StatusUnauthorized},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, http.MethodPut, "/v1/posts/{id}", "/v1/posts/7", `{"content":"new"}`,
				func(s server) http.HandlerFunc { return s.editPost },
				func(s *mock.MockService) {
					if tc.err != nil {
						s.EXPECT().EditPost(gomock.Any(), "7", "new").Return(entities.Post{}, tc.err)
						return
					}
					s.EXPECT().EditPost(gomock.Any(), "7", "new").Return(newPost("7", demo.ID, 1), nil)
					s.EXPECT().Session().Return(demo, true)
				},
			)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_deletePost(t *testing.T) {
	w := serve(t, http.MethodDelete, "/v1/posts/{id}", "/v1/posts/7", "",
		func(s server) http.HandlerFunc { return s.deletePost },
		func(s *mock.MockService) {
			s.EXPECT().DeletePost(gomock.Any(), "7").Return(nil)
		},
	)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_toggleLike(t *testing.T) {
	w := serve(t, http.MethodPost, "/v1/posts/{id}/like", "/v1/posts/1/like", "",
		func(s server) http.HandlerFunc { return s.toggleLike },
		func(s *mock.MockService) {
			s.EXPECT().ToggleLike(gomock.Any(), "1").Return(newPost("1", "sarah", 1, demo.ID), nil)
			s.EXPECT().Session().Return(demo, true)
		},
	)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
}

func Test_toggleTheme(t *testing.T) {
	w := serve(t, http.MethodPost, "/v1/theme/toggle", "/v1/theme/toggle", "",
		func(s server) http.HandlerFunc { return s.toggleTheme },
		func(s *mock.MockService) {
			s.EXPECT().ToggleTheme(gomock.Any()).Return(entities.ThemeDark)
		},
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme": "dark"}`, w.Body.String())
}

func Test_setDraft(t *testing.T) {
	w := serve(t, http.MethodPut, "/v1/draft", "/v1/draft", `{"text":"sun"}`,
		func(s server) http.HandlerFunc { return s.setDraft },
		func(s *mock.MockService) {
			s.EXPECT().SetDraft("sun")
		},
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text": "sun", "applied": true}`, w.Body.String())
}

func Test_spark(t *testing.T) {
	tt := []struct {
		name    string
		text    string
		applied bool
		err     error
		code    int
		body    string
	}{
		{name: "applied", text: "Sunny ☀️", applied: true, code: http.StatusOK, body: `{"text": "Sunny ☀️", "applied": true}`},
		{name: "stale", text: "typed meanwhile", code: http.StatusOK, body: `{"text": "typed meanwhile", "applied": false}`},
		{name: "busy", err: assist.ErrAssistInProgress, code: http.StatusConflict, body: `{"error": "assist is already in progress"}`},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, "/v1/draft/spark", "/v1/draft/spark", "",
				func(s server) http.HandlerFunc { return s.spark },
				func(s *mock.MockService) {
					s.EXPECT().Spark(gomock.Any()).Return(tc.text, tc.applied, tc.err)
				},
			)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func Test_writeServiceError_Internal(t *testing.T) {
	w := serve(t, http.MethodDelete, "/v1/posts/{id}", "/v1/posts/7", "",
		func(s server) http.HandlerFunc { return s.deletePost },
		func(s *mock.MockService) {
			s.EXPECT().DeletePost(gomock.Any(), "7").Return(fmt.Errorf("boom"))
		},
	)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal error"}`, w.Body.String())
}

func TestSetupRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockService(ctrl)
	srv.EXPECT().Theme().Return(entities.ThemeLight)

	r := chi.NewRouter()
	SetupRouter(srv, r, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/v1/theme/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme": "light"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_Health(t *testing.T) {
	tt := []struct {
		name   string
		err    error
		status int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "storage_down", err: errors.New("connection refused"), status: http.StatusServiceUnavailable},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := chi.NewMux()
			require.NotPanics(t, func() {
				SetupRouter(mock.NewMockService(ctrl), r, time.Second,
					health.SubjectPinger("redis", func(context.Context) error { return tc.err }),
				)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.status, w.Code)

			var resp health.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tc.err != nil {
				assert.Equal(t, tc.err.Error(), resp.Errors["redis"])
			} else {
				assert.Empty(t, resp.Errors)
			}
		})
	}
}
