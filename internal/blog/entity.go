// AngelaMos | 2026
// entity.go

package blog

import (
	"time"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Post struct {
	ID              string           `db:"id"`
	Title           string           `db:"title"`
	Slug            string           `db:"slug"`
	Content         string           `db:"content"`
	Excerpt         string           `db:"excerpt"`
	AuthorID        string           `db:"author_id"`
	Category        string           `db:"category"`
	Tags            core.StringArray `db:"tags"`
	FeaturedImage   *string          `db:"featured_image"`
	MetaDescription *string          `db:"meta_description"`
	IsPublished     bool             `db:"is_published"`
	PublishedAt     *time.Time       `db:"published_at"`
	ReadTime        int              `db:"read_time"`
	Views           int              `db:"views"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

const (
	CategoryTechnology     = "technology"
	CategoryProgramming    = "programming"
	CategoryWebDevelopment = "web-development"
	CategoryMobile         = "mobile"
	CategoryTutorial       = "tutorial"
	CategoryPersonal       = "personal"
	CategoryOther          = "other"
)
