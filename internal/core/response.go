// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
	Pages    int `json:"pages"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(w http.ResponseWriter, data any, page, pageSize, total int) {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	writeJSON(w, http.StatusOK, PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
			Pages:    pages,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, MessageResponse{Message: message})
}

// ValidationFailed writes the full ordered violation list, never just the
// first offending field.
func ValidationFailed(w http.ResponseWriter, violations []FieldError) {
	writeJSON(w, http.StatusBadRequest, ErrorsResponse{Errors: violations})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not authorized"
	}
	writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	writeJSON(w, http.StatusForbidden, MessageResponse{Message: message})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(
		w,
		http.StatusNotFound,
		MessageResponse{Message: resource + " not found"},
	)
}

// InternalServerError logs the underlying error and returns a generic
// message. Infrastructure faults must never surface as auth failures.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeJSON(
		w,
		http.StatusInternalServerError,
		MessageResponse{Message: "Server error"},
	)
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, MessageResponse{Message: appErr.Message})
		return
	}

	InternalServerError(w, err)
}
