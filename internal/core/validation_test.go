// AngelaMos | 2026
// validation_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectForm struct {
	Title        string   `json:"title"        validate:"required,notblank,max=200"`
	Description  string   `json:"description"  validate:"required,notblank"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,notblank"`
	Category     string   `json:"category"     validate:"required,oneof=web mobile desktop fullstack frontend backend other"`
	GithubURL    string   `json:"githubUrl"    validate:"omitempty,url"`
}

func TestFieldErrorsReportsAllViolationsInOrder(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	form := projectForm{
		Title:        "",
		Description:  "something real",
		Technologies: []string{},
		Category:     "web",
	}

	err := v.Struct(form)
	require.Error(t, err)

	violations := FieldErrors(err)
	require.Len(t, violations, 2)

	assert.Equal(t, "title", violations[0].Field)
	assert.Equal(t, "title is required", violations[0].Message)
	assert.Equal(t, "technologies", violations[1].Field)
	assert.Equal(t, "must contain at least 1 items", violations[1].Message)
}

func TestFieldErrorsMessages(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	tests := []struct {
		name    string
		form    projectForm
		field   string
		message string
	}{
		{
			name: "notblank",
			form: projectForm{
				Title:        "   ",
				Description:  "desc",
				Technologies: []string{"go"},
				Category:     "web",
			},
			field:   "title",
			message: "title must not be blank",
		},
		{
			name: "oneof",
			form: projectForm{
				Title:        "t",
				Description:  "desc",
				Technologies: []string{"go"},
				Category:     "spacecraft",
			},
			field:   "category",
			message: "must be one of: web mobile desktop fullstack frontend backend other",
		},
		{
			name: "url",
			form: projectForm{
				Title:        "t",
				Description:  "desc",
				Technologies: []string{"go"},
				Category:     "web",
				GithubURL:    "not a url",
			},
			field:   "githubUrl",
			message: "must be a valid URL",
		},
		{
			name: "dive notblank uses element path",
			form: projectForm{
				Title:        "t",
				Description:  "desc",
				Technologies: []string{"go", "  "},
				Category:     "web",
			},
			field:   "technologies[1]",
			message: "technologies[1] must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			require.Error(t, err)

			violations := FieldErrors(err)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.message, violations[0].Message)
		})
	}
}

func TestFieldErrorsLowercase(t *testing.T) {
	t.Parallel()

	type form struct {
		Slug string `json:"slug" validate:"omitempty,notblank,lowercase"`
	}

	v := NewValidator()

	err := v.Struct(form{Slug: "My-Post"})
	require.Error(t, err)

	violations := FieldErrors(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "slug", violations[0].Field)
	assert.Equal(t, "must be lowercase", violations[0].Message)

	assert.NoError(t, v.Struct(form{Slug: "my-post"}))
	assert.NoError(t, v.Struct(form{}))
}

func TestFieldErrorsStringLengths(t *testing.T) {
	t.Parallel()

	type form struct {
		Password string `json:"password" validate:"required,min=8,max=128"`
	}

	v := NewValidator()

	err := v.Struct(form{Password: "short"})
	require.Error(t, err)

	violations := FieldErrors(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "password", violations[0].Field)
	assert.Equal(t, "must be at least 8 characters", violations[0].Message)
}

func TestFieldErrorsEmail(t *testing.T) {
	t.Parallel()

	type form struct {
		Email string `json:"email" validate:"required,email"`
	}

	v := NewValidator()

	err := v.Struct(form{Email: "not-an-email"})
	require.Error(t, err)

	violations := FieldErrors(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, "must be a valid email address", violations[0].Message)
}

func TestFieldErrorsNumericBounds(t *testing.T) {
	t.Parallel()

	type form struct {
		Level int `json:"level" validate:"gte=1,lte=100"`
	}

	v := NewValidator()

	err := v.Struct(form{Level: 250})
	require.Error(t, err)

	violations := FieldErrors(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "level", violations[0].Field)
	assert.Equal(t, "must be at most 100", violations[0].Message)
}

func TestFieldErrorsNonValidationError(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	// Validating a non-struct produces an InvalidValidationError.
	err := v.Struct("not a struct")
	require.Error(t, err)

	violations := FieldErrors(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "invalid request body", violations[0].Message)
}

func TestFieldErrorsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FieldErrors(nil))
}
