package dto

import (
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
)

// GetBlog is the external representation of a blog: snake_case keys,
// likes reported as a count, and a denormalized author snapshot under "profiles".
type GetBlog struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	Content    string      `json:"content"`
	AuthorID   uuid.UUID   `json:"author_id"`
	CoverImage string      `json:"cover_image"`
	Tags       []string    `json:"tags"`
	ReadTime   int         `json:"read_time"`
	Likes      int64       `json:"likes"`
	Published  bool        `json:"published"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Profiles   GetProfiles `json:"profiles"`
}

type GetProfiles struct {
	DisplayName *string `json:"display_name"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url"`
	Role        string  `json:"role"`
}

type BlogLikesResult struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}

func NewGetBlog(blog *model.FullBlog) GetBlog {
	tags := blog.Blog.Tags
	if tags == nil {
		tags = []string{}
	}

	return GetBlog{
		ID:         blog.Blog.ID,
		Title:      blog.Blog.Title,
		Summary:    blog.Blog.Summary,
		Content:    blog.Blog.Content,
		AuthorID:   blog.Blog.AuthorID,
		CoverImage: blog.Blog.CoverImage,
		Tags:       tags,
		ReadTime:   blog.Blog.ReadTime,
		Likes:      blog.Likes,
		Published:  blog.Blog.Published,
		Status:     blog.Blog.Status,
		CreatedAt:  blog.Blog.CreatedAt,
		UpdatedAt:  blog.Blog.UpdatedAt,
		Profiles: GetProfiles{
			DisplayName: blog.Author.DisplayName,
			Username:    blog.Author.Username,
			AvatarURL:   blog.Author.AvatarURL,
			Role:        blog.Author.Role,
		},
	}
}

func NewGetBlogs(blogs []*model.FullBlog) []GetBlog {
	result := make([]GetBlog, 0, len(blogs))
	for _, blog := range blogs {
		result = append(result, NewGetBlog(blog))
	}

	return result
}
