package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/canonkit/canond-go/internal/config"
	"github.com/canonkit/canond-go/internal/core/canonjson"
)

// NewRouter creates the HTTP router with all v1 endpoints.
func NewRouter(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	h := &handlers{cfg: cfg, ser: canonjson.Serializer{MaxDepth: cfg.MaxDepth}}

	r.Get("/v1/health", h.GetHealth)
	r.Get("/v1/info", h.GetInfo)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/canonicalize", h.PostCanonicalize)
		r.Post("/digest", h.PostDigest)
		r.Post("/equal", h.PostEqual)
		r.Post("/envelopes", h.PostEnvelope)
	})

	return r
}

type handlers struct {
	cfg config.Config
	ser canonjson.Serializer
}
