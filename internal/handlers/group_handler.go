package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
)

// GroupHandler handles HTTP requests for the group catalog
type GroupHandler struct {
	groupRepository repositories.GroupRepository
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupRepo repositories.GroupRepository) *GroupHandler {
	return &GroupHandler{groupRepository: groupRepo}
}

// RegisterGroupRoutes registers the authenticated group routes
func (h *GroupHandler) RegisterGroupRoutes(g *echo.Group) {
	g.POST("/groups", h.CreateGroup)
}

// RegisterPublicGroupRoutes registers the anonymous-readable group routes
func (h *GroupHandler) RegisterPublicGroupRoutes(g *echo.Group) {
	g.GET("/groups", h.GetGroups)
}

// CreateGroup creates a new topic group
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.groupRepository.GetGroupBySlug(req.Slug); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Group slug already taken")
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := h.groupRepository.CreateGroup(group); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, group)
}

// GetGroups lists all groups
func (h *GroupHandler) GetGroups(c echo.Context) error {
	groups, err := h.groupRepository.GetGroups()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, groups)
}
