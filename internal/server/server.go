package server

import (
	"encoding/json"
	"net/http"

	"github.com/showupapp/showup/internal/config"
	"github.com/showupapp/showup/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	store storage.Store
	cfg   *config.Config
}

func New(store storage.Store, cfg *config.Config) *Server {
	return &Server{store: store, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/resolutions", func(r chi.Router) {
			r.Post("/", s.createResolution)
			r.Get("/", s.listResolutions)
			r.Get("/search", s.searchResolutions)
			r.Get("/{resolution_id}", s.getResolution)
			r.Put("/{resolution_id}", s.updateResolution)
			r.Delete("/{resolution_id}", s.deleteResolution)
			r.Post("/{resolution_id}/checkins", s.upsertCheckIn)
			r.Get("/{resolution_id}/checkins", s.listCheckIns)
			r.Get("/{resolution_id}/summary", s.getSummary)
		})

		r.Get("/analytics", s.getAnalytics)
		r.Get("/profile", s.getProfile)
		r.Put("/profile", s.updateProfile)
	})

	return r
}
