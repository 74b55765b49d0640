package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fullBlogSelect = `SELECT
	b.id, b.author_id, b.title, b.summary, b.content, b.cover_image, b.tags, b.read_time, b.published, b.status, b.created_at, b.updated_at,
	u.username, u.display_name, u.avatar_url, u.role,
	(SELECT COUNT(*) FROM blog_likes l WHERE l.blog_id = b.id) AS likes
	FROM blogs b
	JOIN cached_users u ON b.author_id = u.id`

type blogRepo struct {
	db *pgxpool.Pool
}

func newBlogRepo(db *pgxpool.Pool) Blog {
	return &blogRepo{
		db: db,
	}
}

func (r *blogRepo) Create(ctx context.Context, blog model.Blog) (*model.Blog, error) {
	now := time.Now()
	blog.ID = uuid.New()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO blogs(id, author_id, title, summary, content, cover_image, tags, read_time, published, status, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		blog.ID,
		blog.AuthorID,
		blog.Title,
		blog.Summary,
		blog.Content,
		blog.CoverImage,
		blog.Tags,
		blog.ReadTime,
		blog.Published,
		blog.Status,
		blog.CreatedAt,
		blog.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &blog, nil
}

func scanFullBlog(row pgx.Row) (*model.FullBlog, error) {
	var blog model.FullBlog
	if err := row.Scan(
		&blog.Blog.ID,
		&blog.Blog.AuthorID,
		&blog.Blog.Title,
		&blog.Blog.Summary,
		&blog.Blog.Content,
		&blog.Blog.CoverImage,
		&blog.Blog.Tags,
		&blog.Blog.ReadTime,
		&blog.Blog.Published,
		&blog.Blog.Status,
		&blog.Blog.CreatedAt,
		&blog.Blog.UpdatedAt,
		&blog.Author.Username,
		&blog.Author.DisplayName,
		&blog.Author.AvatarURL,
		&blog.Author.Role,
		&blog.Likes,
	); err != nil {
		return nil, err
	}

	return &blog, nil
}

func collectFullBlogs(rows pgx.Rows) ([]*model.FullBlog, error) {
	defer rows.Close()

	var blogs []*model.FullBlog
	for rows.Next() {
		blog, err := scanFullBlog(rows)
		if err != nil {
			return nil, err
		}

		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *blogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullBlog, error) {
	row := r.db.QueryRow(ctx, fullBlogSelect+" WHERE b.id = $1", id)
	return scanFullBlog(row)
}

func (r *blogRepo) FindPublished(ctx context.Context) ([]*model.FullBlog, error) {
	rows, err := r.db.Query(ctx, fullBlogSelect+" WHERE b.published = TRUE ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}

	return collectFullBlogs(rows)
}

func (r *blogRepo) FindAll(ctx context.Context) ([]*model.FullBlog, error) {
	rows, err := r.db.Query(ctx, fullBlogSelect+" ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}

	return collectFullBlogs(rows)
}

func (r *blogRepo) FindAuthorBlogs(ctx context.Context, authorID uuid.UUID) ([]*model.FullBlog, error) {
	rows, err := r.db.Query(ctx, fullBlogSelect+" WHERE b.author_id = $1 ORDER BY b.created_at DESC", authorID)
	if err != nil {
		return nil, err
	}

	return collectFullBlogs(rows)
}

func (r *blogRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"title", "summary", "content", "cover_image", "tags", "read_time", "published", "status"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE blogs SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query += "updated_at = $" + strconv.Itoa(i)
	args = append(args, time.Now())
	i++

	query += " WHERE id = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *blogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM blogs WHERE id = $1", id)
	return err
}

func (r *blogRepo) IsLiked(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) (bool, error) {
	var isLiked bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM blog_likes WHERE blog_id = $1 AND user_id = $2)",
		blogID,
		userID,
	).Scan(&isLiked); err != nil {
		return false, err
	}

	return isLiked, nil
}

func (r *blogRepo) Like(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO blog_likes(blog_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
		blogID,
		userID,
	)
	return err
}

func (r *blogRepo) Unlike(ctx context.Context, blogID uuid.UUID, userID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2",
		blogID,
		userID,
	)
	return err
}

func (r *blogRepo) CountLikes(ctx context.Context, blogID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM blog_likes WHERE blog_id = $1",
		blogID,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
