// AngelaMos | 2026
// handler.go

package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListPublished)
		r.Get("/{identifier}", h.GetPublished)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Get("/admin/all", h.ListAll)
			r.Post("/", h.Create)
			r.Put("/{projectID}", h.Update)
			r.Delete("/{projectID}", h.Delete)
		})
	})
}

func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	params.PublishedOnly = true

	projects, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToProjectResponseList(projects),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	projects, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToProjectResponseList(projects),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetPublished(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	project, err := h.service.Get(r.Context(), identifier, true)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Project")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProjectResponse(project))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	project, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("title"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToProjectResponse(project))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	project, err := h.service.Update(r.Context(), projectID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Project")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("title"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProjectResponse(project))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	if err := h.service.Delete(r.Context(), projectID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Project")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func listParamsFromQuery(r *http.Request) ListProjectsParams {
	params := ListProjectsParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "limit", 10),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	if featured := r.URL.Query().Get("featured"); featured != "" {
		val := featured == "true"
		params.Featured = &val
	}

	return params
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
