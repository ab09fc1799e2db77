// AngelaMos | 2026
// entity.go

package contact

import (
	"time"
)

type Message struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Subject      string     `db:"subject"`
	Body         string     `db:"body"`
	Status       string     `db:"status"`
	IsRead       bool       `db:"is_read"`
	ReadAt       *time.Time `db:"read_at"`
	ReplyBody    *string    `db:"reply_body"`
	RepliedAt    *time.Time `db:"replied_at"`
	IPAddress    *string    `db:"ip_address"`
	UserAgent    *string    `db:"user_agent"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}
