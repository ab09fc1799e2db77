// AngelaMos | 2026
// handler.go

package skill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/skills", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/categories", h.Categories)
		r.Get("/{skillID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{skillID}", h.Update)
			r.Delete("/{skillID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListSkillsParams{
		Category:    r.URL.Query().Get("category"),
		Sort:        r.URL.Query().Get("sort"),
		VisibleOnly: true,
	}

	skills, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSkillResponseList(skills))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, categories)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	skillID := chi.URLParam(r, "skillID")

	skill, err := h.service.Get(r.Context(), skillID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Skill")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSkillResponse(skill))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	skill, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSkillExists) ||
			errors.Is(err, core.ErrDuplicateKey) {
			core.BadRequest(
				w,
				"Skill with this name already exists in this category",
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToSkillResponse(skill))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	skillID := chi.URLParam(r, "skillID")

	var req UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	skill, err := h.service.Update(r.Context(), skillID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Skill")
			return
		}
		if errors.Is(err, ErrSkillExists) ||
			errors.Is(err, core.ErrDuplicateKey) {
			core.BadRequest(
				w,
				"Another skill with this name exists in this category",
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSkillResponse(skill))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	skillID := chi.URLParam(r, "skillID")

	if err := h.service.Delete(r.Context(), skillID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Skill")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
