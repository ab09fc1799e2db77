// AngelaMos | 2026
// entity.go

package project

import (
	"time"

	"github.com/angelamos/portfolio-api/internal/core"
)

type Project struct {
	ID               string           `db:"id"`
	Title            string           `db:"title"`
	Slug             string           `db:"slug"`
	Description      string           `db:"description"`
	ShortDescription *string          `db:"short_description"`
	Technologies     core.StringArray `db:"technologies"`
	Category         string           `db:"category"`
	GithubLink       *string          `db:"github_link"`
	LiveLink         *string          `db:"live_link"`
	Image            *string          `db:"image"`
	Status           string           `db:"status"`
	Priority         int              `db:"priority"`
	IsFeatured       bool             `db:"is_featured"`
	IsPublished      bool             `db:"is_published"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

const (
	StatusPlanning    = "planning"
	StatusDevelopment = "development"
	StatusCompleted   = "completed"
	StatusDeployed    = "deployed"
)

const (
	CategoryWeb       = "web"
	CategoryMobile    = "mobile"
	CategoryDesktop   = "desktop"
	CategoryFullstack = "fullstack"
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategoryOther     = "other"
)
