// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(
	ctx context.Context,
	req SubmitMessageRequest,
	ipAddress, userAgent string,
) (*Message, error) {
	message := &Message{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Body:    strings.TrimSpace(req.Message),
		Status:  StatusNew,
	}

	if ipAddress != "" {
		message.IPAddress = &ipAddress
	}
	if userAgent != "" {
		message.UserAgent = &userAgent
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// Get marks an unread message as read on first admin view. A failed mark
// is logged and the read still succeeds.
func (s *Service) Get(ctx context.Context, id string) (*Message, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !message.IsRead {
		if err := s.repo.MarkRead(ctx, id); err != nil {
			slog.WarnContext(ctx, "failed to mark contact message read",
				"message_id", id,
				"error", err,
			)
		} else {
			message.IsRead = true
			if message.Status == StatusNew {
				message.Status = StatusRead
			}
		}
	}

	return message, nil
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Message, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf(
			"update status: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Reply(
	ctx context.Context,
	id, reply string,
) (*Message, error) {
	if err := s.repo.SetReply(ctx, id, strings.TrimSpace(reply)); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListMessagesParams,
) ([]Message, int, error) {
	return s.repo.List(ctx, params)
}
