// AngelaMos | 2026
// repository.go

package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListProjectsParams) ([]Project, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const projectColumns = `
	id, title, slug, description, short_description, technologies, category,
	github_link, live_link, image, status, priority, is_featured,
	is_published, created_at, updated_at`

func (r *repository) Create(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (
			id, title, slug, description, short_description, technologies,
			category, github_link, live_link, image, status, priority,
			is_featured, is_published
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, project, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.ShortDescription,
		project.Technologies,
		project.Category,
		project.GithubLink,
		project.LiveLink,
		project.Image,
		project.Status,
		project.Priority,
		project.IsFeatured,
		project.IsPublished,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create project: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Project, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM projects WHERE id = $1`,
		projectColumns,
	)

	var project Project
	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get project: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Project, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM projects WHERE slug = $1`,
		projectColumns,
	)

	var project Project
	err := r.db.GetContext(ctx, &project, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get project by slug: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project by slug: %w", err)
	}

	return &project, nil
}

func (r *repository) Update(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects
		SET title = $2, slug = $3, description = $4, short_description = $5,
		    technologies = $6, category = $7, github_link = $8,
		    live_link = $9, image = $10, status = $11, priority = $12,
		    is_featured = $13, is_published = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &project.UpdatedAt, query,
		project.ID,
		project.Title,
		project.Slug,
		project.Description,
		project.ShortDescription,
		project.Technologies,
		project.Category,
		project.GithubLink,
		project.LiveLink,
		project.Image,
		project.Status,
		project.Priority,
		project.IsFeatured,
		project.IsPublished,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update project: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update project: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM projects WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete project: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListProjectsParams,
) ([]Project, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	if params.PublishedOnly {
		conditions = append(conditions, "is_published = TRUE")
	}

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, params.Category)
		argIdx++
	}

	if params.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", argIdx))
		args = append(args, *params.Featured)
		argIdx++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM projects WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE %s
		ORDER BY priority DESC, created_at DESC
		LIMIT $%d OFFSET $%d`,
		projectColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var projects []Project
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}

	return projects, total, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
