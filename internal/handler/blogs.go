package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
}

func statusFromError(err error) int {
	switch err {
	case service.ErrBlogNotFound:
		return http.StatusNotFound
	case service.ErrAccessDenied:
		return http.StatusForbidden
	case service.ErrBlogFieldsAreEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) blogsGetPublished(c *gin.Context) {
	blogs, err := h.services.Blog.FindPublished(c.Request.Context())
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewGetBlogs(blogs))
}

func (h *Handler) blogsGetByID(c *gin.Context) {
	blogIDString := strings.TrimSpace(c.Param("blogID"))
	blogID, err := uuid.Parse(blogIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBlogID.Error()))
		return
	}

	blog, err := h.services.Blog.FindByID(c.Request.Context(), blogID)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewGetBlog(blog))
}

func (h *Handler) blogsCreate(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	var input dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdBlog, err := h.services.Blog.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewGetBlog(createdBlog))
}

func (h *Handler) blogsUpdate(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	blogIDString := strings.TrimSpace(c.Param("blogID"))
	blogID, err := uuid.Parse(blogIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBlogID.Error()))
		return
	}

	var input dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedBlog, err := h.services.Blog.Update(c.Request.Context(), blogID, *user, input)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewGetBlog(updatedBlog))
}

func (h *Handler) blogsDelete(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	blogIDString := strings.TrimSpace(c.Param("blogID"))
	blogID, err := uuid.Parse(blogIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBlogID.Error()))
		return
	}

	if err := h.services.Blog.Delete(c.Request.Context(), blogID, *user); err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (h *Handler) blogsGetMy(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	blogs, err := h.services.Blog.FindAuthorBlogs(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewGetBlogs(blogs))
}

func (h *Handler) blogsGetAll(c *gin.Context) {
	blogs, err := h.services.Blog.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewGetBlogs(blogs))
}

func (h *Handler) blogsLike(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	blogIDString := strings.TrimSpace(c.Param("blogID"))
	blogID, err := uuid.Parse(blogIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBlogID.Error()))
		return
	}

	result, err := h.services.Blog.ToggleLike(c.Request.Context(), blogID, user.ID)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}
