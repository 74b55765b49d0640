package service

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Blog interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreateBlogRequest) (*model.FullBlog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullBlog, error)
	FindPublished(ctx context.Context) ([]*model.FullBlog, error)
	FindAll(ctx context.Context) ([]*model.FullBlog, error)
	FindAuthorBlogs(ctx context.Context, authorID uuid.UUID) ([]*model.FullBlog, error)
	Update(ctx context.Context, id uuid.UUID, user model.CachedUser, input dto.UpdateBlogRequest) (*model.FullBlog, error)
	Delete(ctx context.Context, id uuid.UUID, user model.CachedUser) error
	ToggleLike(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) (*dto.BlogLikesResult, error)
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.CachedUser, error)
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	ConsumeAll(ctx context.Context)
}

type Service struct {
	Blog
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) *Service {
	return &Service{
		Blog:      newBlogService(logger, repo, mq),
		UserCache: newUserCacheService(logger, repo, mq),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	s.UserCache.ConsumeAll(ctx)
}
