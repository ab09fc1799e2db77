// AngelaMos | 2026
// validation.go

package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation violation. Validation always reports
// every violation in declaration order so a client can fix them all in one
// round trip.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidator returns a Validate configured for request DTOs: fields are
// reported by their json names and the "notblank" rule rejects strings
// that are empty after trimming.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	//nolint:errcheck // registration only fails for a nil function
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// FieldErrors converts a validator error into the ordered violation list.
// Non-validation errors (invalid target type) produce a single generic
// violation rather than a panic.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "invalid request body"}}
	}

	violations := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}

	return violations
}

// fieldPath strips the root struct name from the namespace so nested and
// per-element violations read like "technologies[0]" or "links.github".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "lowercase":
		return "must be lowercase"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array ||
			fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array ||
			fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
