// AngelaMos | 2026
// repository.go

package analytics

import (
	"context"
	"fmt"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Repository interface {
	Overview(ctx context.Context) (*Overview, error)
	RecentProjects(ctx context.Context, limit int) ([]RecentItem, error)
	RecentPosts(ctx context.Context, limit int) ([]RecentItem, error)
	RecentMessages(ctx context.Context, limit int) ([]RecentMessage, error)
	ProjectsByMonth(ctx context.Context) ([]MonthCount, error)
	PostsByMonth(ctx context.Context) ([]MonthCount, error)
	ProjectsByStatus(ctx context.Context) ([]BucketCount, error)
	ProjectsByTechnology(ctx context.Context, limit int) ([]BucketCount, error)
	PostsByCategory(ctx context.Context) ([]BucketCount, error)
	MessagesByStatus(ctx context.Context) ([]BucketCount, error)
	MessagesByMonth(ctx context.Context, limit int) ([]MonthCount, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Overview(ctx context.Context) (*Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects) AS total_projects,
			(SELECT COUNT(*) FROM blog_posts) AS total_posts,
			(SELECT COUNT(*) FROM contact_messages) AS total_messages,
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL) AS total_users`

	var overview Overview
	if err := r.db.GetContext(ctx, &overview, query); err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}

	return &overview, nil
}

func (r *repository) RecentProjects(
	ctx context.Context,
	limit int,
) ([]RecentItem, error) {
	query := `
		SELECT id, title, created_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT $1`

	var items []RecentItem
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}

	return items, nil
}

func (r *repository) RecentPosts(
	ctx context.Context,
	limit int,
) ([]RecentItem, error) {
	query := `
		SELECT id, title, created_at
		FROM blog_posts
		ORDER BY created_at DESC
		LIMIT $1`

	var items []RecentItem
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}

	return items, nil
}

func (r *repository) RecentMessages(
	ctx context.Context,
	limit int,
) ([]RecentMessage, error) {
	query := `
		SELECT id, name, email, subject, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1`

	var messages []RecentMessage
	if err := r.db.SelectContext(ctx, &messages, query, limit); err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}

	return messages, nil
}

func (r *repository) ProjectsByMonth(ctx context.Context) ([]MonthCount, error) {
	return r.countByMonth(ctx, "projects")
}

func (r *repository) PostsByMonth(ctx context.Context) ([]MonthCount, error) {
	return r.countByMonth(ctx, "blog_posts")
}

func (r *repository) countByMonth(
	ctx context.Context,
	table string,
) ([]MonthCount, error) {
	query := fmt.Sprintf(`
		SELECT to_char(created_at, 'Mon') AS month, COUNT(*) AS count
		FROM %s
		GROUP BY to_char(created_at, 'Mon'), date_part('month', created_at)
		ORDER BY date_part('month', created_at)`, table)

	var counts []MonthCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count %s by month: %w", table, err)
	}

	return counts, nil
}

func (r *repository) ProjectsByStatus(
	ctx context.Context,
) ([]BucketCount, error) {
	query := `
		SELECT status AS bucket, COUNT(*) AS count
		FROM projects
		GROUP BY status
		ORDER BY count DESC`

	var counts []BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("projects by status: %w", err)
	}

	return counts, nil
}

func (r *repository) ProjectsByTechnology(
	ctx context.Context,
	limit int,
) ([]BucketCount, error) {
	query := `
		SELECT tech AS bucket, COUNT(*) AS count
		FROM projects, jsonb_array_elements_text(technologies) AS tech
		GROUP BY tech
		ORDER BY count DESC
		LIMIT $1`

	var counts []BucketCount
	if err := r.db.SelectContext(ctx, &counts, query, limit); err != nil {
		return nil, fmt.Errorf("projects by technology: %w", err)
	}

	return counts, nil
}

func (r *repository) PostsByCategory(
	ctx context.Context,
) ([]BucketCount, error) {
	query := `
		SELECT category AS bucket, COUNT(*) AS count
		FROM blog_posts
		GROUP BY category
		ORDER BY count DESC`

	var counts []BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("posts by category: %w", err)
	}

	return counts, nil
}

func (r *repository) MessagesByStatus(
	ctx context.Context,
) ([]BucketCount, error) {
	query := `
		SELECT status AS bucket, COUNT(*) AS count
		FROM contact_messages
		GROUP BY status
		ORDER BY count DESC`

	var counts []BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("messages by status: %w", err)
	}

	return counts, nil
}

func (r *repository) MessagesByMonth(
	ctx context.Context,
	limit int,
) ([]MonthCount, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COUNT(*) AS count
		FROM contact_messages
		GROUP BY date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at) DESC
		LIMIT $1`

	var counts []MonthCount
	if err := r.db.SelectContext(ctx, &counts, query, limit); err != nil {
		return nil, fmt.Errorf("messages by month: %w", err)
	}

	return counts, nil
}
