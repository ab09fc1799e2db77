// AngelaMos | 2026
// handler.go

package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/analytics", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/dashboard", h.Dashboard)
		r.Get("/projects", h.ProjectStats)
		r.Get("/blogs", h.PostStats)
		r.Get("/contacts", h.MessageStats)
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, dashboard)
}

func (h *Handler) ProjectStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ProjectStats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) PostStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.PostStats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) MessageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.MessageStats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}
