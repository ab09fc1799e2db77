// AngelaMos | 2026
// dto.go

package analytics

import (
	"time"
)

type Overview struct {
	TotalProjects int `json:"totalProjects" db:"total_projects"`
	TotalPosts    int `json:"totalPosts"    db:"total_posts"`
	TotalMessages int `json:"totalMessages" db:"total_messages"`
	TotalUsers    int `json:"totalUsers"    db:"total_users"`
}

type RecentItem struct {
	ID        string    `json:"id"        db:"id"`
	Title     string    `json:"title"     db:"title"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type RecentMessage struct {
	ID        string    `json:"id"        db:"id"`
	Name      string    `json:"name"      db:"name"`
	Email     string    `json:"email"     db:"email"`
	Subject   string    `json:"subject"   db:"subject"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type BucketCount struct {
	Bucket string `json:"bucket" db:"bucket"`
	Count  int    `json:"count"  db:"count"`
}

type MonthCount struct {
	Month string `json:"month" db:"month"`
	Count int    `json:"count" db:"count"`
}

type Dashboard struct {
	Overview Overview `json:"overview"`
	Recent   struct {
		Projects []RecentItem    `json:"projects"`
		Posts    []RecentItem    `json:"posts"`
		Messages []RecentMessage `json:"messages"`
	} `json:"recent"`
	Stats struct {
		ProjectsByMonth []MonthCount `json:"projectsByMonth"`
		PostsByMonth    []MonthCount `json:"postsByMonth"`
	} `json:"stats"`
}

type ProjectStats struct {
	Total        int           `json:"total"`
	ByStatus     []BucketCount `json:"byStatus"`
	ByTechnology []BucketCount `json:"byTechnology"`
}

type PostStats struct {
	Total      int           `json:"total"`
	ByCategory []BucketCount `json:"byCategory"`
	Recent     []RecentItem  `json:"recent"`
}

type MessageStats struct {
	Total    int             `json:"total"`
	ByStatus []BucketCount   `json:"byStatus"`
	ByMonth  []MonthCount    `json:"byMonth"`
	Recent   []RecentMessage `json:"recent"`
}
