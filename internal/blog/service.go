// AngelaMos | 2026
// service.go

package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/portfolio-api/internal/core"
)

// wordsPerMinute is the reading speed used for the read-time estimate.
const wordsPerMinute = 200

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	authorID string,
	req CreatePostRequest,
) (*Post, error) {
	// A client-supplied slug wins; otherwise the title is slugified.
	slug := core.Slugify(req.Title)
	if req.Slug != nil {
		slug = *req.Slug
	}

	post := &Post{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Slug:            slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		AuthorID:        authorID,
		Category:        req.Category,
		Tags:            req.Tags,
		FeaturedImage:   req.FeaturedImage,
		MetaDescription: req.MetaDescription,
		ReadTime:        readTime(req.Content),
	}

	if req.IsPublished != nil && *req.IsPublished {
		now := time.Now().UTC()
		post.IsPublished = true
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Get resolves an identifier as a UUID first, then as a slug. Public reads
// bump the view counter; a failed bump never fails the read.
func (s *Service) Get(
	ctx context.Context,
	identifier string,
	publicOnly bool,
) (*Post, error) {
	var post *Post
	var err error

	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		post, err = s.repo.GetByID(ctx, identifier)
	} else {
		post, err = s.repo.GetBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if publicOnly {
		if !post.IsPublished {
			return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
		}

		if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
			slog.WarnContext(ctx, "failed to increment post views",
				"post_id", post.ID,
				"error", err,
			)
		} else {
			post.Views++
		}
	}

	return post, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdatePostRequest,
) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
		post.Slug = core.Slugify(*req.Title)
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
		post.ReadTime = readTime(*req.Content)
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = req.FeaturedImage
	}
	if req.MetaDescription != nil {
		post.MetaDescription = req.MetaDescription
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
		if post.IsPublished && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListPostsParams,
) ([]Post, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Post, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}
	return s.repo.Recent(ctx, limit)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Tags(ctx context.Context) ([]string, error) {
	return s.repo.Tags(ctx)
}

func readTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
