// AngelaMos | 2026
// repository.go

package skill

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
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, id string) (*Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListSkillsParams) ([]Skill, error)
	Categories(ctx context.Context) ([]string, error)
	ExistsByNameAndCategory(
		ctx context.Context,
		name, category, excludeID string,
	) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const skillColumns = `
	id, name, category, level, icon, description, sort_order, is_visible,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, skill *Skill) error {
	query := `
		INSERT INTO skills (
			id, name, category, level, icon, description, sort_order,
			is_visible
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, skill, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Level,
		skill.Icon,
		skill.Description,
		skill.SortOrder,
		skill.IsVisible,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create skill: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create skill: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1`, skillColumns)

	var skill Skill
	err := r.db.GetContext(ctx, &skill, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get skill: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get skill: %w", err)
	}

	return &skill, nil
}

func (r *repository) Update(ctx context.Context, skill *Skill) error {
	query := `
		UPDATE skills
		SET name = $2, category = $3, level = $4, icon = $5,
		    description = $6, sort_order = $7, is_visible = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &skill.UpdatedAt, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Level,
		skill.Icon,
		skill.Description,
		skill.SortOrder,
		skill.IsVisible,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update skill: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update skill: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update skill: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM skills WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete skill: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListSkillsParams,
) ([]Skill, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.VisibleOnly {
		conditions = append(conditions, "is_visible = TRUE")
	}

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf(
			"LOWER(category) = LOWER($%d)", argIdx))
		args = append(args, params.Category)
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM skills
		WHERE %s
		ORDER BY %s`,
		skillColumns, whereClause, orderClause(params.Sort))

	var skills []Skill
	if err := r.db.SelectContext(ctx, &skills, query, args...); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return skills, nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM skills ORDER BY category`

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("skill categories: %w", err)
	}

	return categories, nil
}

func (r *repository) ExistsByNameAndCategory(
	ctx context.Context,
	name, category, excludeID string,
) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM skills
			WHERE LOWER(name) = LOWER($1)
			  AND LOWER(category) = LOWER($2)
			  AND id != $3
		)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, name, category, excludeID)
	if err != nil {
		return false, fmt.Errorf("check skill exists: %w", err)
	}

	return exists, nil
}

// orderClause whitelists sortable columns; anything else falls back to
// name to keep user input out of the ORDER BY.
func orderClause(sort string) string {
	switch sort {
	case "level":
		return "level DESC, name ASC"
	case "order":
		return "sort_order ASC, name ASC"
	case "category":
		return "category ASC, sort_order ASC, name ASC"
	default:
		return "name ASC"
	}
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
