package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/microblog/backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers the authenticated follow routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.FollowUser)
	g.DELETE("/users/:username/follow", h.UnfollowUser)
}

// RegisterPublicFollowRoutes registers the anonymous-readable follow routes
func (h *FollowHandler) RegisterPublicFollowRoutes(g *echo.Group) {
	g.GET("/users/:username/followers", h.GetFollowers)
	g.GET("/users/:username/following", h.GetFollowing)
}

// FollowUser follows the named author. Re-following and self-follows are
// no-ops, not errors.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	if err := h.followService.Follow(currentUserID, c.Param("username")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows the named author; a no-op when not following
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	if err := h.followService.Unfollow(currentUserID, c.Param("username")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowers lists the users following the named author
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	users, err := h.followService.Followers(c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the authors the named user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	users, err := h.followService.Following(c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}
