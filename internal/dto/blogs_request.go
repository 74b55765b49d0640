package dto

type CreateBlogRequest struct {
	Title      string   `json:"title" binding:"required"`
	Summary    string   `json:"summary" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	ReadTime   *int     `json:"read_time" binding:"omitempty,min=1"`
	Published  *bool    `json:"published"`
}

type UpdateBlogRequest struct {
	Title      *string   `json:"title" binding:"omitempty,min=1"`
	Summary    *string   `json:"summary" binding:"omitempty,min=1"`
	Content    *string   `json:"content" binding:"omitempty,min=1"`
	CoverImage *string   `json:"cover_image"`
	Tags       *[]string `json:"tags"`
	ReadTime   *int      `json:"read_time" binding:"omitempty,min=1"`
	Published  *bool     `json:"published"`
	Status     *string   `json:"status" binding:"omitempty,oneof=draft published"`
}
