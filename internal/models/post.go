package models

import (
	"time"
	"unicode/utf8"
)

// Post represents a publication by an author, optionally attached to a group.
// Author and creation time are immutable after creation; only the author may
// change the remaining fields.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	GroupID   *uint     `json:"group_id" gorm:"index"` // nullable: posts may live outside any group
	Group     *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Text      string    `json:"text" gorm:"not null"`
	Image     string    `json:"image,omitempty"` // stored file name under the media root
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// Preview returns the first n runes of the post text, used as its short
// textual representation in listings.
func (p *Post) Preview(n int) string {
	if n <= 0 || utf8.RuneCountInString(p.Text) <= n {
		return p.Text
	}
	runes := []rune(p.Text)
	return string(runes[:n])
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text    string `json:"text" form:"text" validate:"required,min=1"`
	GroupID *uint  `json:"group_id,omitempty" form:"group_id"`
}

// UpdatePostRequest defines the request body for editing an existing post.
// Edits are full-field: text and group are replaced wholesale.
type UpdatePostRequest struct {
	Text    string `json:"text" form:"text" validate:"required,min=1"`
	GroupID *uint  `json:"group_id,omitempty" form:"group_id"`
}
