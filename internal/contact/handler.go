// AngelaMos | 2026
// handler.go

package contact

import (
	"encoding/json"
	"errors"
	"net"
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
	r.Route("/contact", func(r chi.Router) {
		r.Post("/", h.Submit)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Get("/", h.List)
			r.Get("/{messageID}", h.Get)
			r.Patch("/{messageID}/status", h.UpdateStatus)
			r.Post("/{messageID}/reply", h.Reply)
			r.Delete("/{messageID}", h.Delete)
		})
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	message, err := h.service.Submit(
		r.Context(),
		req,
		clientIP(r),
		r.UserAgent(),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, SubmitMessageResponse{
		Message: "Thank you for your message! I will get back to you soon.",
		ID:      message.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListMessagesParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "limit", 20),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	}

	messages, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToMessageResponseList(messages),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	message, err := h.service.Get(r.Context(), messageID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Contact message")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMessageResponse(message))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	message, err := h.service.UpdateStatus(r.Context(), messageID, req.Status)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Contact message")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "Invalid status")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMessageResponse(message))
}

func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	var req ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	message, err := h.service.Reply(r.Context(), messageID, req.Message)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Contact message")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMessageResponse(message))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	if err := h.service.Delete(r.Context(), messageID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Contact message")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
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
