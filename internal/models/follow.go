package models

import "time"

// Follow represents a directed follower→author edge: the user receives the
// author's posts in their personalized feed. The composite unique index is
// the store-level guard against duplicate edges.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `json:"created_at"`
}
