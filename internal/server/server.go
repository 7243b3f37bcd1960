// Package server SocialSpark
//
// The SocialSpark feed API: session, posts, likes, theme and the AI compose assistant.
//
//     Schemes: http
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"

	"github.com/socialspark/spark/internal/health"
	mm "github.com/socialspark/spark/internal/middleware"
	"github.com/socialspark/spark/internal/service"
)

const maxBodySize = 64 * 1024

type server struct {
	s   service.Service
	now func() time.Time
}

const healthTimeout = 5 * time.Second

// SetupRouter setups handlers to chi router. Health check served on /health reports p.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration, p ...health.Pinger) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s:   s,
		now: time.Now,
	}

	r.Get("/health", health.Handler(healthTimeout, p...))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/feed", srv.getFeed)

		r.Get("/session", srv.getSession)
		r.Post("/session", srv.login)
		r.Delete("/session", srv.logout)

		r.Post("/posts", srv.createPost)
		r.Put("/posts/{id}", srv.editPost)
		r.Delete("/posts/{id}", srv.deletePost)
		r.Post("/posts/{id}/like", srv.toggleLike)

		r.Get("/theme", srv.getTheme)
		r.Post("/theme/toggle", srv.toggleTheme)

		r.Get("/draft", srv.getDraft)
		r.Put("/draft", srv.setDraft)
		r.Post("/draft/spark", srv.spark)
	})
}
