// AngelaMos | 2026
// service.go

package skill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrSkillExists reports a name collision within a category. The check is
// case-insensitive.
var ErrSkillExists = errors.New("skill already exists in this category")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateSkillRequest,
) (*Skill, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.ExistsByNameAndCategory(
		ctx,
		name,
		req.Category,
		uuid.Nil.String(),
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("create skill: %w", ErrSkillExists)
	}

	skill := &Skill{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    req.Category,
		Level:       req.Level,
		Icon:        req.Icon,
		Description: req.Description,
		IsVisible:   true,
	}

	if req.SortOrder != nil {
		skill.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		skill.IsVisible = *req.IsVisible
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateSkillRequest,
) (*Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}

	if req.Name != nil || req.Category != nil {
		exists, err := s.repo.ExistsByNameAndCategory(
			ctx,
			skill.Name,
			skill.Category,
			skill.ID,
		)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("update skill: %w", ErrSkillExists)
		}
	}

	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = req.Icon
	}
	if req.Description != nil {
		skill.Description = req.Description
	}
	if req.SortOrder != nil {
		skill.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		skill.IsVisible = *req.IsVisible
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListSkillsParams,
) ([]Skill, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
