package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	STATUS_DRAFT     = "draft"
	STATUS_PUBLISHED = "published"
)

type Blog struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	CoverImage string    `json:"cover_image"`
	Tags       []string  `json:"tags"`
	ReadTime   int       `json:"read_time"`
	Published  bool      `json:"published"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type FullBlog struct {
	Blog   Blog       `json:"blog"`
	Author UserAuthor `json:"author"`
	Likes  int64      `json:"likes"`
}
