// AngelaMos | 2026
// service_test.go

package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/portfolio-api/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, project *Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Project), args.Error(1)
}

func (m *mockRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Project), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, project *Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListProjectsParams,
) ([]Project, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Project), args.Int(1), args.Error(2)
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and slug", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(p *Project) bool {
			return p.Slug == "my-first-project" &&
				p.Status == StatusCompleted &&
				p.IsPublished &&
				p.ID != ""
		})).Return(nil).Once()

		project, err := NewService(repo).Create(ctx, CreateProjectRequest{
			Title:        "My First Project",
			Description:  "A thing I built",
			Technologies: []string{"go", "postgres"},
			Category:     "web",
		})

		require.NoError(t, err)
		assert.Equal(t, "my-first-project", project.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("explicit status and flags", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(p *Project) bool {
			return p.Status == StatusDevelopment && !p.IsPublished
		})).Return(nil).Once()

		status := StatusDevelopment
		published := false
		_, err := NewService(repo).Create(ctx, CreateProjectRequest{
			Title:        "WIP",
			Description:  "not done",
			Technologies: []string{"go"},
			Category:     "backend",
			Status:       &status,
			IsPublished:  &published,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetProject(t *testing.T) {
	ctx := context.Background()

	published := &Project{
		ID:          "3e2c9a40-94a2-4fae-8f4f-2dbab0a7d6a3",
		Slug:        "visible",
		IsPublished: true,
	}
	draft := &Project{
		ID:          "d9e4e3a8-88a1-4a22-90f5-6a6f8e1d4c55",
		Slug:        "draft",
		IsPublished: false,
	}

	t.Run("uuid resolves by id", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, published.ID).Return(published, nil).Once()

		got, err := NewService(repo).Get(ctx, published.ID, true)
		require.NoError(t, err)
		assert.Equal(t, published.Slug, got.Slug)
		repo.AssertNotCalled(t, "GetBySlug")
	})

	t.Run("non-uuid resolves by slug", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBySlug", ctx, "visible").Return(published, nil).Once()

		got, err := NewService(repo).Get(ctx, "visible", true)
		require.NoError(t, err)
		assert.Equal(t, published.ID, got.ID)
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("unpublished hidden from public callers", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBySlug", ctx, "draft").Return(draft, nil).Once()

		_, err := NewService(repo).Get(ctx, "draft", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("unpublished visible to admin callers", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBySlug", ctx, "draft").Return(draft, nil).Once()

		got, err := NewService(repo).Get(ctx, "draft", false)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
	})
}

func TestUpdateProjectReslugsOnTitleChange(t *testing.T) {
	ctx := context.Background()

	existing := &Project{
		ID:    "3e2c9a40-94a2-4fae-8f4f-2dbab0a7d6a3",
		Title: "Old Title",
		Slug:  "old-title",
	}

	repo := new(mockRepository)
	repo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(p *Project) bool {
		return p.Title == "New Title" && p.Slug == "new-title"
	})).Return(nil).Once()

	title := "New Title"
	updated, err := NewService(repo).Update(ctx, existing.ID, UpdateProjectRequest{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
	repo.AssertExpectations(t)
}
