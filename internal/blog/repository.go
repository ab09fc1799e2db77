// AngelaMos | 2026
// repository.go

package blog

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
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListPostsParams) ([]Post, int, error)
	Recent(ctx context.Context, limit int) ([]Post, error)
	IncrementViews(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const postColumns = `
	id, title, slug, content, excerpt, author_id, category, tags,
	featured_image, meta_description, is_published, published_at,
	read_time, views, created_at, updated_at`

func (r *repository) Create(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO blog_posts (
			id, title, slug, content, excerpt, author_id, category, tags,
			featured_image, meta_description, is_published, published_at,
			read_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, post, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.AuthorID,
		post.Category,
		post.Tags,
		post.FeaturedImage,
		post.MetaDescription,
		post.IsPublished,
		post.PublishedAt,
		post.ReadTime,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create post: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM blog_posts WHERE id = $1`,
		postColumns,
	)

	var post Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Post, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM blog_posts WHERE slug = $1`,
		postColumns,
	)

	var post Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post by slug: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}

	return &post, nil
}

func (r *repository) Update(ctx context.Context, post *Post) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5,
		    category = $6, tags = $7, featured_image = $8,
		    meta_description = $9, is_published = $10, published_at = $11,
		    read_time = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &post.UpdatedAt, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Category,
		post.Tags,
		post.FeaturedImage,
		post.MetaDescription,
		post.IsPublished,
		post.PublishedAt,
		post.ReadTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update post: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update post: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update post: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM blog_posts WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete post: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListPostsParams,
) ([]Post, int, error) {
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

	if params.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("tags ? $%d", argIdx))
		args = append(args, params.Tag)
		argIdx++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM blog_posts WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM blog_posts
		WHERE %s
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d`,
		postColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var posts []Post
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	return posts, total, nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM blog_posts
		WHERE is_published = TRUE
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1`,
		postColumns)

	var posts []Post
	if err := r.db.SelectContext(ctx, &posts, query, limit); err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}

	return posts, nil
}

func (r *repository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE blog_posts SET views = views + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM blog_posts
		WHERE is_published = TRUE
		ORDER BY category`

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("post categories: %w", err)
	}

	return categories, nil
}

func (r *repository) Tags(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tag
		FROM blog_posts, jsonb_array_elements_text(tags) AS tag
		WHERE is_published = TRUE
		ORDER BY tag`

	var tags []string
	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, fmt.Errorf("post tags: %w", err)
	}

	return tags, nil
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
