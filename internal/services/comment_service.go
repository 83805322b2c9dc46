package services

import (
	"github.com/pkg/errors"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
)

// CommentService guards comment creation and serves per-post comment lists.
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{comments: commentRepo, posts: postRepo}
}

// Add appends a comment to an existing post. Authentication is checked
// before the post lookup, so an anonymous caller is rejected without any
// row being created even when the post exists.
func (s *CommentService) Add(actorID, postID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}

	if _, err := s.posts.GetPostByID(postID); err != nil {
		return nil, notFound(err)
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: actorID,
		Text:     req.Text,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, errors.Wrap(err, "create comment")
	}
	return comment, nil
}

// ListForPost returns a post's comments, oldest first.
func (s *CommentService) ListForPost(postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		return nil, notFound(err)
	}
	return s.comments.GetCommentsByPostID(postID)
}
