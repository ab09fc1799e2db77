// AngelaMos | 2026
// service.go

package analytics

import (
	"context"
)

const (
	recentLimit  = 5
	topTechLimit = 10
	monthsLimit  = 12
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	recentProjects, err := s.repo.RecentProjects(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	recentPosts, err := s.repo.RecentPosts(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	recentMessages, err := s.repo.RecentMessages(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	projectsByMonth, err := s.repo.ProjectsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	postsByMonth, err := s.repo.PostsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{Overview: *overview}
	dashboard.Recent.Projects = recentProjects
	dashboard.Recent.Posts = recentPosts
	dashboard.Recent.Messages = recentMessages
	dashboard.Stats.ProjectsByMonth = projectsByMonth
	dashboard.Stats.PostsByMonth = postsByMonth

	return dashboard, nil
}

func (s *Service) ProjectStats(ctx context.Context) (*ProjectStats, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.ProjectsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byTechnology, err := s.repo.ProjectsByTechnology(ctx, topTechLimit)
	if err != nil {
		return nil, err
	}

	return &ProjectStats{
		Total:        overview.TotalProjects,
		ByStatus:     byStatus,
		ByTechnology: byTechnology,
	}, nil
}

func (s *Service) PostStats(ctx context.Context) (*PostStats, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.repo.PostsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentPosts(ctx, topTechLimit)
	if err != nil {
		return nil, err
	}

	return &PostStats{
		Total:      overview.TotalPosts,
		ByCategory: byCategory,
		Recent:     recent,
	}, nil
}

func (s *Service) MessageStats(ctx context.Context) (*MessageStats, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.MessagesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byMonth, err := s.repo.MessagesByMonth(ctx, monthsLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentMessages(ctx, topTechLimit)
	if err != nil {
		return nil, err
	}

	return &MessageStats{
		Total:    overview.TotalMessages,
		ByStatus: byStatus,
		ByMonth:  byMonth,
		Recent:   recent,
	}, nil
}
