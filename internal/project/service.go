// AngelaMos | 2026
// service.go

package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProjectRequest,
) (*Project, error) {
	project := &Project{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Slug:             core.Slugify(req.Title),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Technologies:     req.Technologies,
		Category:         req.Category,
		GithubLink:       req.GithubLink,
		LiveLink:         req.LiveLink,
		Image:            req.Image,
		Status:           StatusCompleted,
		IsPublished:      true,
	}

	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get resolves an identifier as a UUID first, then as a slug. publicOnly
// hides unpublished projects from anonymous callers.
func (s *Service) Get(
	ctx context.Context,
	identifier string,
	publicOnly bool,
) (*Project, error) {
	var project *Project
	var err error

	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		project, err = s.repo.GetByID(ctx, identifier)
	} else {
		project, err = s.repo.GetBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if publicOnly && !project.IsPublished {
		return nil, fmt.Errorf("get project: %w", core.ErrNotFound)
	}

	return project, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateProjectRequest,
) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
		project.Slug = core.Slugify(*req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDescription != nil {
		project.ShortDescription = req.ShortDescription
	}
	if req.Technologies != nil {
		project.Technologies = req.Technologies
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.GithubLink != nil {
		project.GithubLink = req.GithubLink
	}
	if req.LiveLink != nil {
		project.LiveLink = req.LiveLink
	}
	if req.Image != nil {
		project.Image = req.Image
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListProjectsParams,
) ([]Project, int, error) {
	return s.repo.List(ctx, params)
}
