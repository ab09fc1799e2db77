// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, message *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	MarkRead(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	SetReply(ctx context.Context, id, reply string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListMessagesParams) ([]Message, int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const messageColumns = `
	id, name, email, subject, body, status, is_read, read_at, reply_body,
	replied_at, ip_address, user_agent, created_at, updated_at`

func (r *repository) Create(ctx context.Context, message *Message) error {
	query := `
		INSERT INTO contact_messages (
			id, name, email, subject, body, status, ip_address, user_agent
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, message, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Body,
		message.Status,
		message.IPAddress,
		message.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Message, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM contact_messages WHERE id = $1`,
		messageColumns,
	)

	var message Message
	err := r.db.GetContext(ctx, &message, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contact message: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contact message: %w", err)
	}

	return &message, nil
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	query := `
		UPDATE contact_messages
		SET is_read = TRUE, read_at = COALESCE(read_at, NOW()),
		    status = CASE WHEN status = 'new' THEN 'read' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("mark message read: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE contact_messages
		SET status = $2,
		    is_read = CASE WHEN $2 = 'read' THEN TRUE ELSE is_read END,
		    read_at = CASE
		        WHEN $2 = 'read' THEN COALESCE(read_at, NOW())
		        ELSE read_at
		    END,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update message status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update message status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update message status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetReply(ctx context.Context, id, reply string) error {
	query := `
		UPDATE contact_messages
		SET reply_body = $2, replied_at = NOW(), status = 'replied',
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, reply)
	if err != nil {
		return fmt.Errorf("set message reply: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set message reply: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set message reply: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM contact_messages WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete contact message: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListMessagesParams,
) ([]Message, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d)",
			argIdx, argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM contact_messages WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM contact_messages
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		messageColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var messages []Message
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}

	return messages, total, nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM contact_messages
		GROUP BY status`

	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count messages by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
