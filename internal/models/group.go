package models

// Group is a named topic that posts can optionally be published into.
// Groups are not owned by any user.
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100"`
	Description string `json:"description"`
}

// CreateGroupRequest defines the request body for creating a new group
type CreateGroupRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" form:"slug" validate:"required,min=1,max=100"`
	Description string `json:"description" form:"description"`
}
