// AngelaMos | 2026
// handler.go

package blog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/portfolio-api/internal/core"
	"github.com/angelamos/portfolio-api/internal/middleware"
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
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", h.ListPublished)
		r.Get("/recent", h.Recent)
		r.Get("/meta/categories", h.Categories)
		r.Get("/meta/tags", h.Tags)
		r.Get("/{identifier}", h.GetPublished)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Get("/admin/all", h.ListAll)
			r.Post("/", h.Create)
			r.Put("/{postID}", h.Update)
			r.Delete("/{postID}", h.Delete)
		})
	})
}

func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	params.PublishedOnly = true

	posts, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToPostSummaryList(posts),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	posts, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToPostSummaryList(posts),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 5)

	posts, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostSummaryList(posts))
}

func (h *Handler) GetPublished(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	post, err := h.service.Get(r.Context(), identifier, true)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Blog post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(post))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, categories)
}

func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.Tags(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, tags)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	authorID := middleware.GetUserID(r.Context())

	post, err := h.service.Create(r.Context(), authorID, req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("title"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPostResponse(post))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	post, err := h.service.Update(r.Context(), postID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Blog post")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("title"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(post))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	if err := h.service.Delete(r.Context(), postID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Blog post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func listParamsFromQuery(r *http.Request) ListPostsParams {
	return ListPostsParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "limit", 10),
		Category: r.URL.Query().Get("category"),
		Tag:      r.URL.Query().Get("tag"),
		Search:   r.URL.Query().Get("search"),
	}
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
