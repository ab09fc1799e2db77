// AngelaMos | 2026
// dto.go

package project

import (
	"time"
)

type CreateProjectRequest struct {
	Title            string   `json:"title"                      validate:"required,notblank,max=200"`
	Description      string   `json:"description"                validate:"required,notblank"`
	ShortDescription *string  `json:"shortDescription,omitempty" validate:"omitempty,max=200"`
	Technologies     []string `json:"technologies"               validate:"required,min=1,dive,notblank"`
	Category         string   `json:"category"                   validate:"required,oneof=web mobile desktop fullstack frontend backend other"`
	GithubLink       *string  `json:"githubLink,omitempty"       validate:"omitempty,url"`
	LiveLink         *string  `json:"liveLink,omitempty"         validate:"omitempty,url"`
	Image            *string  `json:"image,omitempty"            validate:"omitempty,url"`
	Status           *string  `json:"status,omitempty"           validate:"omitempty,oneof=planning development completed deployed"`
	Priority         *int     `json:"priority,omitempty"         validate:"omitempty,gte=0"`
	IsFeatured       *bool    `json:"isFeatured,omitempty"`
	IsPublished      *bool    `json:"isPublished,omitempty"`
}

type UpdateProjectRequest struct {
	Title            *string  `json:"title,omitempty"            validate:"omitempty,notblank,max=200"`
	Description      *string  `json:"description,omitempty"      validate:"omitempty,notblank"`
	ShortDescription *string  `json:"shortDescription,omitempty" validate:"omitempty,max=200"`
	Technologies     []string `json:"technologies,omitempty"     validate:"omitempty,min=1,dive,notblank"`
	Category         *string  `json:"category,omitempty"         validate:"omitempty,oneof=web mobile desktop fullstack frontend backend other"`
	GithubLink       *string  `json:"githubLink,omitempty"       validate:"omitempty,url"`
	LiveLink         *string  `json:"liveLink,omitempty"         validate:"omitempty,url"`
	Image            *string  `json:"image,omitempty"            validate:"omitempty,url"`
	Status           *string  `json:"status,omitempty"           validate:"omitempty,oneof=planning development completed deployed"`
	Priority         *int     `json:"priority,omitempty"         validate:"omitempty,gte=0"`
	IsFeatured       *bool    `json:"isFeatured,omitempty"`
	IsPublished      *bool    `json:"isPublished,omitempty"`
}

type ProjectResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	Technologies     []string  `json:"technologies"`
	Category         string    `json:"category"`
	GithubLink       *string   `json:"githubLink,omitempty"`
	LiveLink         *string   `json:"liveLink,omitempty"`
	Image            *string   `json:"image,omitempty"`
	Status           string    `json:"status"`
	Priority         int       `json:"priority"`
	IsFeatured       bool      `json:"isFeatured"`
	IsPublished      bool      `json:"isPublished"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ListProjectsParams struct {
	Page          int
	PageSize      int
	Category      string
	Featured      *bool
	Search        string
	PublishedOnly bool
}

func (p *ListProjectsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListProjectsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Technologies:     p.Technologies,
		Category:         p.Category,
		GithubLink:       p.GithubLink,
		LiveLink:         p.LiveLink,
		Image:            p.Image,
		Status:           p.Status,
		Priority:         p.Priority,
		IsFeatured:       p.IsFeatured,
		IsPublished:      p.IsPublished,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToProjectResponseList(projects []Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, ToProjectResponse(&p))
	}
	return responses
}
