// AngelaMos | 2026
// dto.go

package skill

import (
	"time"
)

type CreateSkillRequest struct {
	Name        string  `json:"name"                  validate:"required,notblank,max=100"`
	Category    string  `json:"category"              validate:"required,oneof=frontend backend database devops mobile design tools other"`
	Level       int     `json:"level"                 validate:"required,gte=1,lte=100"`
	Icon        *string `json:"icon,omitempty"        validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	SortOrder   *int    `json:"sortOrder,omitempty"   validate:"omitempty,gte=0"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,notblank,max=100"`
	Category    *string `json:"category,omitempty"    validate:"omitempty,oneof=frontend backend database devops mobile design tools other"`
	Level       *int    `json:"level,omitempty"       validate:"omitempty,gte=1,lte=100"`
	Icon        *string `json:"icon,omitempty"        validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	SortOrder   *int    `json:"sortOrder,omitempty"   validate:"omitempty,gte=0"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
}

type SkillResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       int       `json:"level"`
	Icon        *string   `json:"icon,omitempty"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	IsVisible   bool      `json:"isVisible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListSkillsParams struct {
	Category    string
	Sort        string
	VisibleOnly bool
}

func ToSkillResponse(s *Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Level:       s.Level,
		Icon:        s.Icon,
		Description: s.Description,
		SortOrder:   s.SortOrder,
		IsVisible:   s.IsVisible,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToSkillResponseList(skills []Skill) []SkillResponse {
	responses := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		responses = append(responses, ToSkillResponse(&s))
	}
	return responses
}
