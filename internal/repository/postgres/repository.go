package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrFieldsNotAllowedToUpdate = errors.New("provided fields are not allowed to update")

type Blog interface {
	Create(ctx context.Context, blog model.Blog) (*model.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullBlog, error)
	FindPublished(ctx context.Context) ([]*model.FullBlog, error)
	FindAll(ctx context.Context) ([]*model.FullBlog, error)
	FindAuthorBlogs(ctx context.Context, authorID uuid.UUID) ([]*model.FullBlog, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsLiked(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) (bool, error)
	Like(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) error
	Unlike(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) error
	CountLikes(ctx context.Context, blogID uuid.UUID) (int64, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type PostgresRepository struct {
	Blog
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Blog:      newBlogRepo(db),
		UserCache: newUserCacheRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)

	return pgxpool.New(ctx, connString)
}
