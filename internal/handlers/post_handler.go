package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/services"
	"github.com/anonto42/microblog/backend/internal/storage"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService    *services.PostService
	commentService *services.CommentService
	images         *storage.ImageStore
	previewLen     int
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, commentService *services.CommentService, images *storage.ImageStore, previewLen int) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		images:         images,
		previewLen:     previewLen,
	}
}

// RegisterPostRoutes registers the authenticated post mutation routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.POST("/posts/:id/comments", h.CreateComment)
}

// RegisterPublicPostRoutes registers the anonymous-readable post routes
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts/:id/comments", h.GetComments)
}

// postDetail is a post plus its comments and the author's total post count
type postDetail struct {
	models.Post
	Preview         string           `json:"preview"`
	Comments        []models.Comment `json:"comments"`
	AuthorPostCount int64            `json:"author_post_count"`
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// saveImage stores an optional multipart image attachment and returns its
// stored name, or "" when the request carries none.
func (h *PostHandler) saveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil // no attachment
	}
	src, err := file.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Unreadable image attachment")
	}
	defer src.Close()

	name, err := h.images.Save(file.Filename, src)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "Failed to store image")
	}
	return name, nil
}

// CreatePost creates a new post authored by the current user
func (h *PostHandler) CreatePost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	post, err := h.postService.Create(actorID, req, image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post with its comments and author's post count
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.Get(postID)
	if err != nil {
		return httpError(err)
	}
	comments, err := h.commentService.ListForPost(postID)
	if err != nil {
		return httpError(err)
	}
	postCount, err := h.postService.AuthorPostCount(post.AuthorID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, postDetail{
		Post:            *post,
		Preview:         post.Preview(h.previewLen),
		Comments:        comments,
		AuthorPostCount: postCount,
	})
}

// UpdatePost replaces the mutable fields of a post; author-only
func (h *PostHandler) UpdatePost(c echo.Context) error {
	actorID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	post, err := h.postService.Update(actorID, postID, req, image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// CreateComment appends a comment to a post
func (h *PostHandler) CreateComment(c echo.Context) error {
	actorID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Add(actorID, postID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetComments retrieves a post's comments, oldest first
func (h *PostHandler) GetComments(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListForPost(postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}
