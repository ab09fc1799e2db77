// AngelaMos | 2026
// dto.go

package contact

import (
	"time"
)

type SubmitMessageRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,notblank,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied archived"`
}

type ReplyRequest struct {
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type SubmitMessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	Reply     *string    `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"repliedAt,omitempty"`
	IPAddress *string    `json:"ipAddress,omitempty"`
	UserAgent *string    `json:"userAgent,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ListMessagesParams struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

func (p *ListMessagesParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListMessagesParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		Status:    m.Status,
		IsRead:    m.IsRead,
		ReadAt:    m.ReadAt,
		Reply:     m.ReplyBody,
		RepliedAt: m.RepliedAt,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToMessageResponseList(messages []Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, ToMessageResponse(&m))
	}
	return responses
}
