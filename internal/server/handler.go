package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/assist"
	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/feed"
	mm "github.com/socialspark/spark/internal/middleware"
	"github.com/socialspark/spark/internal/query"
	"github.com/socialspark/spark/internal/session"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feed Feed GetFeed
	//
	// Returns posts filtered by the search term and ordered by the sort mode.
	// Passed parameters are remembered for following requests.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: q
	//   description: case-insensitive search over content and author name
	//   in: query
	//   required: false
	//   type: string
	// - name: sort
	//   in: query
	//   required: false
	//   type: string
	//   enum: [LATEST, OLDEST, MOST_LIKED]
	// responses:
	//   '200':
	//     description: Feed
	//     schema:
	//       "$ref": "#/definitions/FeedResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	if v, ok := q["sort"]; ok {
		mode, err := query.ParseSortMode(v[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.s.SetSort(mode)
	}

	if v, ok := q["q"]; ok {
		s.s.SetSearch(v[0])
	}

	u, _ := s.s.Session()
	term, mode := s.s.View()

	writeOK(w, http.StatusOK, FeedResponse{
		Posts:   toAPIPosts(s.s.Feed(), u, s.now()),
		Query:   term,
		Sort:    string(mode),
		Durable: s.s.Durable(),
	})
}

func (s server) getSession(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /session Session GetSession
	//
	// Returns the logged in user.
	//
	// ---
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/SessionResponse"

	u, ok := s.s.Session()

	writeOK(w, http.StatusOK, SessionResponse{
		LoggedIn: ok,
		User:     toAPIUser(u),
	})
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /session Session Login
	//
	// Logs in or signs up. Name is required on sign up only.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/LoginRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/SessionResponse"
	//   '400':
	//     description: incomplete credentials
	//   '409':
	//     description: already logged in

	var req LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.s.Login(r.Context(), session.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		SignUp:   req.SignUp,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, SessionResponse{
		LoggedIn: true,
		User:     toAPIUser(&u),
	})
}

func (s server) logout(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /session Session Logout
	//
	// ---
	// responses:
	//   '204':
	//     description: logged out
	//   '401':
	//     description: not logged in

	if err := s.s.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Creates a post on behalf of the logged in user.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: neither content nor image
	//   '401':
	//     description: not logged in

	var req CreatePostRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.CreatePost(r.Context(), req.Content, req.ImageURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, _ := s.s.Session()
	writeOK(w, http.StatusCreated, toAPIPost(p, u, s.now()))
}

func (s server) editPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{id} Posts EditPost
	//
	// Replaces content of the own post.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/EditPostRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '403':
	//     description: not an author
	//   '404':
	//     description: post not found

	var req EditPostRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.EditPost(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, _ := s.s.Session()
	writeOK(w, http.StatusOK, toAPIPost(p, u, s.now()))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Posts DeletePost
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: deleted
	//   '403':
	//     description: not an author
	//   '404':
	//     description: post not found

	if err := s.s.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Posts ToggleLike
	//
	// Likes the post or removes the like.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found

	p, err := s.s.ToggleLike(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, _ := s.s.Session()
	writeOK(w, http.StatusOK, toAPIPost(p, u, s.now()))
}

func (s server) getTheme(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, ThemeResponse{Theme: s.s.Theme()})
}

func (s server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, ThemeResponse{Theme: s.s.ToggleTheme(r.Context())})
}

func (s server) getDraft(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, DraftResponse{Text: s.s.Draft(), Applied: true})
}

func (s server) setDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.s.SetDraft(req.Text)

	writeOK(w, http.StatusOK, DraftResponse{Text: req.Text, Applied: true})
}

func (s server) spark(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /draft/spark Draft Spark
	//
	// Improves the draft when it is longer than 10 characters, otherwise writes a post about it.
	//
	// ---
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/DraftResponse"
	//   '409':
	//     description: assistant is already working on the draft

	text, applied, err := s.s.Spark(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, DraftResponse{Text: text, Applied: applied})
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	return nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation), errors.Is(err, query.ErrInvalidSortMode):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrUnauthenticated), errors.Is(err, session.ErrNotLoggedIn):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, entities.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, entities.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrAlreadyLoggedIn), errors.Is(err, assist.ErrAssistInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, feed.ErrNotInitialized):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		mm.GetLogger(r.Context()).WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeOK(w, code, Error{Error: msg})
}

func writeOK(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to write response")
	}
}
