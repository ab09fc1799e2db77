// AngelaMos | 2026
// dto.go

package blog

import (
	"time"
)

type CreatePostRequest struct {
	Title           string   `json:"title"                     validate:"required,notblank,max=200"`
	Slug            *string  `json:"slug,omitempty"            validate:"omitempty,notblank,lowercase,max=200"`
	Content         string   `json:"content"                   validate:"required,notblank"`
	Excerpt         string   `json:"excerpt"                   validate:"required,notblank,max=300"`
	Category        string   `json:"category"                  validate:"required,oneof=technology programming web-development mobile tutorial personal other"`
	Tags            []string `json:"tags,omitempty"            validate:"omitempty,dive,notblank"`
	FeaturedImage   *string  `json:"featuredImage,omitempty"   validate:"omitempty,url"`
	MetaDescription *string  `json:"metaDescription,omitempty" validate:"omitempty,max=160"`
	IsPublished     *bool    `json:"isPublished,omitempty"`
}

type UpdatePostRequest struct {
	Title           *string  `json:"title,omitempty"           validate:"omitempty,notblank,max=200"`
	Slug            *string  `json:"slug,omitempty"            validate:"omitempty,notblank,lowercase,max=200"`
	Content         *string  `json:"content,omitempty"         validate:"omitempty,notblank"`
	Excerpt         *string  `json:"excerpt,omitempty"         validate:"omitempty,notblank,max=300"`
	Category        *string  `json:"category,omitempty"        validate:"omitempty,oneof=technology programming web-development mobile tutorial personal other"`
	Tags            []string `json:"tags,omitempty"            validate:"omitempty,dive,notblank"`
	FeaturedImage   *string  `json:"featuredImage,omitempty"   validate:"omitempty,url"`
	MetaDescription *string  `json:"metaDescription,omitempty" validate:"omitempty,max=160"`
	IsPublished     *bool    `json:"isPublished,omitempty"`
}

type PostResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	Excerpt         string     `json:"excerpt"`
	AuthorID        string     `json:"authorId"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	FeaturedImage   *string    `json:"featuredImage,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
	IsPublished     bool       `json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	ReadTime        int        `json:"readTime"`
	Views           int        `json:"views"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type ListPostsParams struct {
	Page          int
	PageSize      int
	Category      string
	Tag           string
	Search        string
	PublishedOnly bool
}

func (p *ListPostsParams) Normalize() {
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

func (p *ListPostsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ToPostResponse includes the full content; list views should use
// ToPostSummary instead.
func ToPostResponse(p *Post) PostResponse {
	resp := ToPostSummary(p)
	resp.Content = p.Content
	return resp
}

func ToPostSummary(p *Post) PostResponse {
	return PostResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		AuthorID:        p.AuthorID,
		Category:        p.Category,
		Tags:            p.Tags,
		FeaturedImage:   p.FeaturedImage,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		PublishedAt:     p.PublishedAt,
		ReadTime:        p.ReadTime,
		Views:           p.Views,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToPostSummaryList(posts []Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, ToPostSummary(&p))
	}
	return responses
}
