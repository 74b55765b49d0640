package service

import (
	"context"
	"strings"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const DEFAULT_READ_TIME = 5

type mqPublisher interface {
	PublishJSON(ctx context.Context, queue string, body interface{}) error
}

type blogService struct {
	logger *zap.Logger
	repo   *repository.Repository
	mq     mqPublisher
}

func newBlogService(logger *zap.Logger, repo *repository.Repository, mq mqPublisher) Blog {
	return &blogService{
		logger: logger,
		repo:   repo,
		mq:     mq,
	}
}

func trimTags(tags []string) []string {
	trimmed := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed = append(trimmed, strings.TrimSpace(tag))
	}

	return trimmed
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreateBlogRequest) (*model.FullBlog, error) {
	blog := model.Blog{
		AuthorID:   authorID,
		Title:      strings.TrimSpace(input.Title),
		Summary:    strings.TrimSpace(input.Summary),
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Tags:       trimTags(input.Tags),
		ReadTime:   DEFAULT_READ_TIME,
		Published:  true,
		Status:     model.STATUS_PUBLISHED,
	}
	if input.ReadTime != nil {
		blog.ReadTime = *input.ReadTime
	}
	if input.Published != nil {
		blog.Published = *input.Published
	}

	if blog.Title == "" || blog.Summary == "" || strings.TrimSpace(blog.Content) == "" {
		return nil, ErrBlogFieldsAreEmpty
	}

	createdBlog, err := s.repo.Postgres.Blog.Create(ctx, blog)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) blog: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	go s.publishBlogCreated(createdBlog)

	return s.FindByID(ctx, createdBlog.ID)
}

func (s *blogService) publishBlogCreated(blog *model.Blog) {
	msg := dto.MQBlogCreatedMsg{
		BlogID:    blog.ID,
		UserID:    blog.AuthorID,
		BlogTitle: blog.Title,
		CreatedAt: blog.CreatedAt,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.mq.PublishJSON(ctx, rabbitmq.BLOG_CREATED_QUEUE, msg); err != nil {
		s.logger.Sugar().Errorf("failed to publish blog(%s) created message: %s", blog.ID.String(), err.Error())
	}
}

func (s *blogService) FindByID(ctx context.Context, id uuid.UUID) (*model.FullBlog, error) {
	blog, err := s.repo.Postgres.Blog.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrBlogNotFound
		}

		s.logger.Sugar().Errorf("failed to find blog(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return blog, nil
}

func (s *blogService) FindPublished(ctx context.Context) ([]*model.FullBlog, error) {
	blogs, err := s.repo.Postgres.Blog.FindPublished(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find published blogs from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return blogs, nil
}

func (s *blogService) FindAll(ctx context.Context) ([]*model.FullBlog, error) {
	blogs, err := s.repo.Postgres.Blog.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find all blogs from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return blogs, nil
}

func (s *blogService) FindAuthorBlogs(ctx context.Context, authorID uuid.UUID) ([]*model.FullBlog, error) {
	blogs, err := s.repo.Postgres.Blog.FindAuthorBlogs(ctx, authorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) blogs from postgres: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return blogs, nil
}

// Update applies the provided fields to the blog. Only the author or an admin may
// update; id, author_id, likes and timestamps are not updatable.
func (s *blogService) Update(ctx context.Context, id uuid.UUID, user model.CachedUser, input dto.UpdateBlogRequest) (*model.FullBlog, error) {
	blog, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if blog.Blog.AuthorID != user.ID && !user.IsAdmin() {
		return nil, ErrAccessDenied
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrBlogFieldsAreEmpty
		}
		updates["title"] = title
	}
	if input.Summary != nil {
		summary := strings.TrimSpace(*input.Summary)
		if summary == "" {
			return nil, ErrBlogFieldsAreEmpty
		}
		updates["summary"] = summary
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, ErrBlogFieldsAreEmpty
		}
		updates["content"] = *input.Content
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.Tags != nil {
		updates["tags"] = trimTags(*input.Tags)
	}
	if input.ReadTime != nil {
		updates["read_time"] = *input.ReadTime
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if err := s.repo.Postgres.Blog.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update blog(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return s.FindByID(ctx, id)
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID, user model.CachedUser) error {
	blog, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.Blog.AuthorID != user.ID && !user.IsAdmin() {
		return ErrAccessDenied
	}

	if err := s.repo.Postgres.Blog.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete blog(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// ToggleLike flips the requester's membership in the blog's likes set and reports
// the resulting count and membership flag.
func (s *blogService) ToggleLike(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) (*dto.BlogLikesResult, error) {
	if _, err := s.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	isLiked, err := s.repo.Postgres.Blog.IsLiked(ctx, blogID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check if blog(%s) is liked by user(%s): %s", blogID.String(), userID.String(), err.Error())
		return nil, ErrInternal
	}

	if isLiked {
		err = s.repo.Postgres.Blog.Unlike(ctx, blogID, userID)
	} else {
		err = s.repo.Postgres.Blog.Like(ctx, blogID, userID)
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to toggle like on blog(%s) for user(%s): %s", blogID.String(), userID.String(), err.Error())
		return nil, ErrInternal
	}

	likes, err := s.repo.Postgres.Blog.CountLikes(ctx, blogID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count blog(%s) likes: %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}

	return &dto.BlogLikesResult{
		Likes:   likes,
		IsLiked: !isLiked,
	}, nil
}
