// Package client is a small Go client for the blog-service HTTP API.
// Failures are returned as errors carrying the server's response details, so
// callers can render them without special-casing transport faults.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/google/uuid"
)

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(accessToken string) *Client {
	copied := *c
	copied.accessToken = accessToken
	return &copied
}

type APIError struct {
	StatusCode int
	Details    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Details)
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var basic dto.BasicResponse
		if err := json.Unmarshal(respBody, &basic); err == nil && basic.Details != "" {
			apiErr.Details = basic.Details
		} else {
			apiErr.Details = string(respBody)
		}

		return apiErr
	}

	if result == nil {
		return nil
	}

	return json.Unmarshal(respBody, result)
}

func (c *Client) ListPublished(ctx context.Context) ([]dto.GetBlog, error) {
	var blogs []dto.GetBlog
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (c *Client) Get(ctx context.Context, id uuid.UUID) (*dto.GetBlog, error) {
	var blog dto.GetBlog
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+id.String(), nil, &blog); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (c *Client) Create(ctx context.Context, input dto.CreateBlogRequest) (*dto.GetBlog, error) {
	var blog dto.GetBlog
	if err := c.do(ctx, http.MethodPost, "/api/blogs", input, &blog); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (c *Client) Update(ctx context.Context, id uuid.UUID, input dto.UpdateBlogRequest) (*dto.GetBlog, error) {
	var blog dto.GetBlog
	if err := c.do(ctx, http.MethodPut, "/api/blogs/"+id.String(), input, &blog); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/blogs/"+id.String(), nil, nil)
}

func (c *Client) MyBlogs(ctx context.Context) ([]dto.GetBlog, error) {
	var blogs []dto.GetBlog
	if err := c.do(ctx, http.MethodGet, "/api/blogs/user/my-blogs", nil, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (c *Client) ToggleLike(ctx context.Context, id uuid.UUID) (*dto.BlogLikesResult, error) {
	var result dto.BlogLikesResult
	if err := c.do(ctx, http.MethodPost, "/api/blogs/"+id.String()+"/like", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) AdminListAll(ctx context.Context) ([]dto.GetBlog, error) {
	var blogs []dto.GetBlog
	if err := c.do(ctx, http.MethodGet, "/api/blogs/admin/all", nil, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}
