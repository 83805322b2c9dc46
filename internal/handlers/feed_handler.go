package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/microblog/backend/internal/services"
)

// FeedHandler serves the paginated post listings: index, group, profile and
// followed-authors scopes.
type FeedHandler struct {
	feedService   *services.FeedService
	followService *services.FollowService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService, followService *services.FollowService) *FeedHandler {
	return &FeedHandler{feedService: feedService, followService: followService}
}

// RegisterPublicFeedRoutes registers the anonymous-readable listing routes
func (h *FeedHandler) RegisterPublicFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.Index)
	g.GET("/groups/:slug/posts", h.GroupPosts)
	g.GET("/users/:username/posts", h.Profile)
}

// RegisterFeedRoutes registers the authenticated followed-authors feed
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.FollowingFeed)
}

// pageParam reads the page query parameter, defaulting to 1. Out-of-range
// values are clamped downstream, never rejected.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pageResponse(c echo.Context, body echo.Map, page *services.Page) error {
	body["posts"] = page.Posts
	body["meta"] = echo.Map{
		"currentPage":     page.Number,
		"totalPages":      page.TotalPages,
		"totalItems":      page.TotalItems,
		"hasNextPage":     page.HasNext,
		"hasPreviousPage": page.HasPrevious,
	}
	return c.JSON(http.StatusOK, body)
}

// Index returns a page of all posts, most recent first
func (h *FeedHandler) Index(c echo.Context) error {
	page, err := h.feedService.Index(pageParam(c))
	if err != nil {
		return httpError(err)
	}
	return pageResponse(c, echo.Map{}, page)
}

// GroupPosts returns a page of the named group's posts
func (h *FeedHandler) GroupPosts(c echo.Context) error {
	group, page, err := h.feedService.Group(c.Param("slug"), pageParam(c))
	if err != nil {
		return httpError(err)
	}
	return pageResponse(c, echo.Map{"group": group}, page)
}

// Profile returns the named author's posts plus whether the requester
// follows them (always false for anonymous requesters)
func (h *FeedHandler) Profile(c echo.Context) error {
	username := c.Param("username")
	author, page, err := h.feedService.Profile(username, pageParam(c))
	if err != nil {
		return httpError(err)
	}

	following := false
	if currentUserID := getUserIDFromContext(c); currentUserID != 0 {
		following, err = h.followService.IsFollowing(currentUserID, username)
		if err != nil {
			return httpError(err)
		}
	}
	return pageResponse(c, echo.Map{"author": author, "following": following}, page)
}

// FollowingFeed returns a page of posts by the authors the current user
// follows; empty when following nobody
func (h *FeedHandler) FollowingFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	page, err := h.feedService.Following(currentUserID, pageParam(c))
	if err != nil {
		return httpError(err)
	}
	return pageResponse(c, echo.Map{}, page)
}
