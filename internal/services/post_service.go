package services

import (
	"github.com/pkg/errors"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
)

// PostService guards and executes the post lifecycle: authenticated creation,
// author-only full-field edits. Posts are never deleted.
type PostService struct {
	posts  repositories.PostRepository
	groups repositories.GroupRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, groupRepo repositories.GroupRepository) *PostService {
	return &PostService{posts: postRepo, groups: groupRepo}
}

// resolveGroup validates an optional group reference. A nil id is fine; a
// non-nil id must resolve or the whole payload is rejected.
func (s *PostService) resolveGroup(groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groups.GetGroupByID(*groupID); err != nil {
		if errors.Is(notFound(err), ErrNotFound) {
			return errors.Wrap(ErrValidation, "group does not exist")
		}
		return err
	}
	return nil
}

// Create creates a post authored by the acting user.
func (s *PostService) Create(actorID uint, req models.CreatePostRequest, image string) (*models.Post, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	if err := s.resolveGroup(req.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: actorID,
		GroupID:  req.GroupID,
		Text:     req.Text,
		Image:    image,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return s.posts.GetPostByID(post.ID)
}

// Get fetches a post by id.
func (s *PostService) Get(postID uint) (*models.Post, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, notFound(err)
	}
	return post, nil
}

// Update replaces the mutable fields of a post. Only the author may edit;
// anyone else gets ErrForbidden and the stored fields stay untouched. An
// empty image keeps the current attachment.
func (s *PostService) Update(actorID, postID uint, req models.UpdatePostRequest, image string) (*models.Post, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}

	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, notFound(err)
	}
	if post.AuthorID != actorID {
		return nil, ErrForbidden
	}
	if err := s.resolveGroup(req.GroupID); err != nil {
		return nil, err
	}

	post.Text = req.Text
	post.GroupID = req.GroupID
	if image != "" {
		post.Image = image
	}
	if err := s.posts.UpdatePost(post); err != nil {
		return nil, errors.Wrap(err, "update post")
	}
	return s.posts.GetPostByID(post.ID)
}

// AuthorPostCount returns how many posts a user has published, shown on the
// post detail and profile views.
func (s *PostService) AuthorPostCount(authorID uint) (int64, error) {
	return s.posts.CountPostsByAuthorID(authorID)
}
