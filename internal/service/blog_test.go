package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blogRepoStub is a stub for postgres.Blog.
type blogRepoStub struct {
	createFn          func(context.Context, model.Blog) (*model.Blog, error)
	findByIDFn        func(context.Context, uuid.UUID) (*model.FullBlog, error)
	findPublishedFn   func(context.Context) ([]*model.FullBlog, error)
	findAllFn         func(context.Context) ([]*model.FullBlog, error)
	findAuthorBlogsFn func(context.Context, uuid.UUID) ([]*model.FullBlog, error)
	updateFn          func(context.Context, uuid.UUID, map[string]interface{}) error
	deleteFn          func(context.Context, uuid.UUID) error
	isLikedFn         func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	likeFn            func(context.Context, uuid.UUID, uuid.UUID) error
	unlikeFn          func(context.Context, uuid.UUID, uuid.UUID) error
	countLikesFn      func(context.Context, uuid.UUID) (int64, error)
}

func (s *blogRepoStub) Create(ctx context.Context, blog model.Blog) (*model.Blog, error) {
	return s.createFn(ctx, blog)
}
func (s *blogRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*model.FullBlog, error) {
	return s.findByIDFn(ctx, id)
}
func (s *blogRepoStub) FindPublished(ctx context.Context) ([]*model.FullBlog, error) {
	return s.findPublishedFn(ctx)
}
func (s *blogRepoStub) FindAll(ctx context.Context) ([]*model.FullBlog, error) {
	return s.findAllFn(ctx)
}
func (s *blogRepoStub) FindAuthorBlogs(ctx context.Context, authorID uuid.UUID) ([]*model.FullBlog, error) {
	return s.findAuthorBlogsFn(ctx, authorID)
}
func (s *blogRepoStub) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return s.updateFn(ctx, id, updates)
}
func (s *blogRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s *blogRepoStub) IsLiked(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) (bool, error) {
	return s.isLikedFn(ctx, blogID, userID)
}
func (s *blogRepoStub) Like(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) error {
	return s.likeFn(ctx, blogID, userID)
}
func (s *blogRepoStub) Unlike(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) error {
	return s.unlikeFn(ctx, blogID, userID)
}
func (s *blogRepoStub) CountLikes(ctx context.Context, blogID uuid.UUID) (int64, error) {
	return s.countLikesFn(ctx, blogID)
}

func noopBlogRepo() *blogRepoStub {
	return &blogRepoStub{
		createFn: func(_ context.Context, blog model.Blog) (*model.Blog, error) {
			blog.ID = uuid.New()
			return &blog, nil
		},
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.FullBlog, error) {
			return &model.FullBlog{Blog: model.Blog{ID: id}}, nil
		},
		findPublishedFn:   func(_ context.Context) ([]*model.FullBlog, error) { return nil, nil },
		findAllFn:         func(_ context.Context) ([]*model.FullBlog, error) { return nil, nil },
		findAuthorBlogsFn: func(_ context.Context, _ uuid.UUID) ([]*model.FullBlog, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ uuid.UUID, _ map[string]interface{}) error { return nil },
		deleteFn:          func(_ context.Context, _ uuid.UUID) error { return nil },
		isLikedFn:         func(_ context.Context, _, _ uuid.UUID) (bool, error) { return false, nil },
		likeFn:            func(_ context.Context, _, _ uuid.UUID) error { return nil },
		unlikeFn:          func(_ context.Context, _, _ uuid.UUID) error { return nil },
		countLikesFn:      func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
	}
}

type publisherStub struct{}

func (p *publisherStub) PublishJSON(_ context.Context, _ string, _ interface{}) error { return nil }

func newTestBlogService(repo *blogRepoStub) Blog {
	return newBlogService(
		zap.NewNop(),
		&repository.Repository{Postgres: &postgres.PostgresRepository{Blog: repo}},
		&publisherStub{},
	)
}

func TestBlogService_Create_Defaults(t *testing.T) {
	var created model.Blog
	repo := noopBlogRepo()
	repo.createFn = func(_ context.Context, blog model.Blog) (*model.Blog, error) {
		blog.ID = uuid.New()
		created = blog
		return &blog, nil
	}

	authorID := uuid.New()
	svc := newTestBlogService(repo)

	_, err := svc.Create(context.Background(), authorID, dto.CreateBlogRequest{
		Title:   "  T  ",
		Summary: " S ",
		Content: "C",
	})
	require.NoError(t, err)

	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, "S", created.Summary)
	assert.Equal(t, "C", created.Content)
	assert.Equal(t, DEFAULT_READ_TIME, created.ReadTime)
	assert.True(t, created.Published)
	assert.Equal(t, model.STATUS_PUBLISHED, created.Status)
}

func TestBlogService_Create_ExplicitFields(t *testing.T) {
	var created model.Blog
	repo := noopBlogRepo()
	repo.createFn = func(_ context.Context, blog model.Blog) (*model.Blog, error) {
		blog.ID = uuid.New()
		created = blog
		return &blog, nil
	}

	published := false
	readTime := 8
	svc := newTestBlogService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateBlogRequest{
		Title:     "Title",
		Summary:   "Summary",
		Content:   "Content",
		Tags:      []string{" a ", "b", "a"},
		ReadTime:  &readTime,
		Published: &published,
	})
	require.NoError(t, err)

	assert.False(t, created.Published)
	assert.Equal(t, 8, created.ReadTime)
	assert.Equal(t, []string{"a", "b", "a"}, created.Tags)
}

func TestBlogService_Create_BlankFields(t *testing.T) {
	createCalled := false
	repo := noopBlogRepo()
	repo.createFn = func(_ context.Context, blog model.Blog) (*model.Blog, error) {
		createCalled = true
		blog.ID = uuid.New()
		return &blog, nil
	}

	svc := newTestBlogService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateBlogRequest{
		Title:   "   ",
		Summary: "S",
		Content: "C",
	})
	assert.ErrorIs(t, err, ErrBlogFieldsAreEmpty)
	assert.False(t, createCalled)
}

func TestBlogService_FindByID_NotFound(t *testing.T) {
	repo := noopBlogRepo()
	repo.findByIDFn = func(_ context.Context, _ uuid.UUID) (*model.FullBlog, error) {
		return nil, pgx.ErrNoRows
	}

	svc := newTestBlogService(repo)

	_, err := svc.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestBlogService_Update_Authorization(t *testing.T) {
	authorID := uuid.New()
	blogID := uuid.New()

	newRepo := func() (*blogRepoStub, *bool) {
		updateCalled := false
		repo := noopBlogRepo()
		repo.findByIDFn = func(_ context.Context, id uuid.UUID) (*model.FullBlog, error) {
			return &model.FullBlog{Blog: model.Blog{ID: id, AuthorID: authorID}}, nil
		}
		repo.updateFn = func(_ context.Context, _ uuid.UUID, _ map[string]interface{}) error {
			updateCalled = true
			return nil
		}
		return repo, &updateCalled
	}

	title := "New title"

	t.Run("stranger is rejected", func(t *testing.T) {
		repo, updateCalled := newRepo()
		svc := newTestBlogService(repo)

		stranger := model.CachedUser{ID: uuid.New(), Role: model.ROLE_USER}
		_, err := svc.Update(context.Background(), blogID, stranger, dto.UpdateBlogRequest{Title: &title})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, *updateCalled)
	})

	t.Run("author is allowed", func(t *testing.T) {
		repo, updateCalled := newRepo()
		svc := newTestBlogService(repo)

		author := model.CachedUser{ID: authorID, Role: model.ROLE_USER}
		_, err := svc.Update(context.Background(), blogID, author, dto.UpdateBlogRequest{Title: &title})
		require.NoError(t, err)
		assert.True(t, *updateCalled)
	})

	t.Run("admin is allowed", func(t *testing.T) {
		repo, updateCalled := newRepo()
		svc := newTestBlogService(repo)

		admin := model.CachedUser{ID: uuid.New(), Role: model.ROLE_ADMIN}
		_, err := svc.Update(context.Background(), blogID, admin, dto.UpdateBlogRequest{Title: &title})
		require.NoError(t, err)
		assert.True(t, *updateCalled)
	})
}

func TestBlogService_Update_OnlyProvidedFields(t *testing.T) {
	authorID := uuid.New()

	var gotUpdates map[string]interface{}
	repo := noopBlogRepo()
	repo.findByIDFn = func(_ context.Context, id uuid.UUID) (*model.FullBlog, error) {
		return &model.FullBlog{Blog: model.Blog{ID: id, AuthorID: authorID}}, nil
	}
	repo.updateFn = func(_ context.Context, _ uuid.UUID, updates map[string]interface{}) error {
		gotUpdates = updates
		return nil
	}

	svc := newTestBlogService(repo)

	title := "  Edited  "
	published := false
	author := model.CachedUser{ID: authorID, Role: model.ROLE_USER}
	_, err := svc.Update(context.Background(), uuid.New(), author, dto.UpdateBlogRequest{
		Title:     &title,
		Published: &published,
	})
	require.NoError(t, err)

	assert.Len(t, gotUpdates, 2)
	assert.Equal(t, "Edited", gotUpdates["title"])
	assert.Equal(t, false, gotUpdates["published"])
}

func TestBlogService_Update_BlankFields(t *testing.T) {
	authorID := uuid.New()

	updateCalled := false
	repo := noopBlogRepo()
	repo.findByIDFn = func(_ context.Context, id uuid.UUID) (*model.FullBlog, error) {
		return &model.FullBlog{Blog: model.Blog{ID: id, AuthorID: authorID}}, nil
	}
	repo.updateFn = func(_ context.Context, _ uuid.UUID, _ map[string]interface{}) error {
		updateCalled = true
		return nil
	}

	svc := newTestBlogService(repo)

	summary := "  "
	author := model.CachedUser{ID: authorID, Role: model.ROLE_USER}
	_, err := svc.Update(context.Background(), uuid.New(), author, dto.UpdateBlogRequest{Summary: &summary})
	assert.ErrorIs(t, err, ErrBlogFieldsAreEmpty)
	assert.False(t, updateCalled)
}

func TestBlogService_Delete(t *testing.T) {
	authorID := uuid.New()

	deleteCalled := false
	repo := noopBlogRepo()
	repo.findByIDFn = func(_ context.Context, id uuid.UUID) (*model.FullBlog, error) {
		return &model.FullBlog{Blog: model.Blog{ID: id, AuthorID: authorID}}, nil
	}
	repo.deleteFn = func(_ context.Context, _ uuid.UUID) error {
		deleteCalled = true
		return nil
	}

	svc := newTestBlogService(repo)

	stranger := model.CachedUser{ID: uuid.New(), Role: model.ROLE_USER}
	err := svc.Delete(context.Background(), uuid.New(), stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, deleteCalled)

	author := model.CachedUser{ID: authorID, Role: model.ROLE_USER}
	err = svc.Delete(context.Background(), uuid.New(), author)
	require.NoError(t, err)
	assert.True(t, deleteCalled)
}

func TestBlogService_Delete_NotFound(t *testing.T) {
	repo := noopBlogRepo()
	repo.findByIDFn = func(_ context.Context, _ uuid.UUID) (*model.FullBlog, error) {
		return nil, pgx.ErrNoRows
	}

	svc := newTestBlogService(repo)

	err := svc.Delete(context.Background(), uuid.New(), model.CachedUser{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestBlogService_ToggleLike_Idempotence(t *testing.T) {
	blogID := uuid.New()
	userID := uuid.New()

	likes := make(map[uuid.UUID]struct{})
	repo := noopBlogRepo()
	repo.isLikedFn = func(_ context.Context, _, uid uuid.UUID) (bool, error) {
		_, ok := likes[uid]
		return ok, nil
	}
	repo.likeFn = func(_ context.Context, _, uid uuid.UUID) error {
		likes[uid] = struct{}{}
		return nil
	}
	repo.unlikeFn = func(_ context.Context, _, uid uuid.UUID) error {
		delete(likes, uid)
		return nil
	}
	repo.countLikesFn = func(_ context.Context, _ uuid.UUID) (int64, error) {
		return int64(len(likes)), nil
	}

	svc := newTestBlogService(repo)

	result, err := svc.ToggleLike(context.Background(), blogID, userID)
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, int64(1), result.Likes)

	result, err = svc.ToggleLike(context.Background(), blogID, userID)
	require.NoError(t, err)
	assert.False(t, result.IsLiked)
	assert.Equal(t, int64(0), result.Likes)
}

func TestBlogService_ToggleLike_NotFound(t *testing.T) {
	repo := noopBlogRepo()
	repo.findByIDFn = func(_ context.Context, _ uuid.UUID) (*model.FullBlog, error) {
		return nil, pgx.ErrNoRows
	}

	svc := newTestBlogService(repo)

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBlogNotFound)
}
