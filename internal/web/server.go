package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jaminalder/tictactoe-time-travel/internal/app"
)

// NewServer wires routes and returns an http.Handler. It also installs the
// game fragment as s's broadcast renderer.
func NewServer(logger *slog.Logger, s *app.Service) http.Handler {
	log := logger.With("component", "web")
	h := &handlers{log: log, svc: s, tpl: loadTemplates()}
	s.SetRenderer(h.renderGame)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/ping", h.ping)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/play", h.play)
		r.Post("/jump", h.jump)
		r.Post("/order", h.order)
		r.Get("/events", h.events)
	})
	return r
}
