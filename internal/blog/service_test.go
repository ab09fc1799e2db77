// AngelaMos | 2026
// service_test.go

package blog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListPostsParams,
) ([]Post, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Post), args.Int(1), args.Error(2)
}

func (m *mockRepository) Recent(
	ctx context.Context,
	limit int,
) ([]Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Post), args.Error(1)
}

func (m *mockRepository) IncrementViews(
	ctx context.Context,
	id string,
) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepository) Tags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestReadTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content floors at one minute", "", 1},
		{"short post", "just a few words here", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"one word over rounds up", strings.Repeat("word ", 201), 2},
		{"long post", strings.Repeat("word ", 1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readTime(tt.content))
		})
	}
}

func TestCreatePostSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug from title", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*blog.Post")).
			Return(nil)

		svc := NewService(repo)
		post, err := svc.Create(ctx, "author-1", CreatePostRequest{
			Title:    "My First Post",
			Content:  "some words",
			Excerpt:  "excerpt",
			Category: CategoryProgramming,
		})
		require.NoError(t, err)

		assert.Equal(t, "my-first-post", post.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("client slug wins over the title", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*blog.Post")).
			Return(nil)

		slug := "custom-slug"
		svc := NewService(repo)
		post, err := svc.Create(ctx, "author-1", CreatePostRequest{
			Title:    "My First Post",
			Slug:     &slug,
			Content:  "some words",
			Excerpt:  "excerpt",
			Category: CategoryProgramming,
		})
		require.NoError(t, err)

		assert.Equal(t, "custom-slug", post.Slug)
		repo.AssertExpectations(t)
	})
}

func TestUpdatePostSlug(t *testing.T) {
	ctx := context.Background()

	existing := func() *Post {
		return &Post{
			ID:       "post-1",
			Title:    "Old Title",
			Slug:     "old-title",
			Content:  "body",
			Category: CategoryProgramming,
		}
	}

	t.Run("title change reslugs", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, "post-1").Return(existing(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*blog.Post")).
			Return(nil)

		title := "New Title"
		svc := NewService(repo)
		post, err := svc.Update(ctx, "post-1", UpdatePostRequest{
			Title: &title,
		})
		require.NoError(t, err)

		assert.Equal(t, "new-title", post.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("explicit slug overrides the reslug", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, "post-1").Return(existing(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*blog.Post")).
			Return(nil)

		title := "New Title"
		slug := "kept-slug"
		svc := NewService(repo)
		post, err := svc.Update(ctx, "post-1", UpdatePostRequest{
			Title: &title,
			Slug:  &slug,
		})
		require.NoError(t, err)

		assert.Equal(t, "kept-slug", post.Slug)
		repo.AssertExpectations(t)
	})
}
