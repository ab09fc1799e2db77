// AngelaMos | 2026
// entity.go

package skill

import (
	"time"
)

type Skill struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Level       int       `db:"level"`
	Icon        *string   `db:"icon"`
	Description *string   `db:"description"`
	SortOrder   int       `db:"sort_order"`
	IsVisible   bool      `db:"is_visible"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevops   = "devops"
	CategoryMobile   = "mobile"
	CategoryDesign   = "design"
	CategoryTools    = "tools"
	CategoryOther    = "other"
)
