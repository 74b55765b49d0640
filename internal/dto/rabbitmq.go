package dto

import (
	"time"

	"github.com/google/uuid"
)

type MQBlogCreatedMsg struct {
	BlogID    uuid.UUID `json:"blog_id"`
	UserID    uuid.UUID `json:"user_id"`
	BlogTitle string    `json:"blog_title"`
	CreatedAt time.Time `json:"created_at"`
}
